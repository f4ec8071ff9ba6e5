package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadLineStripsTerminatorsAndEchoesPrompt(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(Options{In: strings.NewReader("first\r\nsecond"), Out: &out})

	got, err := c.ReadLine("> ")
	if err != nil || got != "first" {
		t.Fatalf("expected first line, got %q err=%v", got, err)
	}
	got, err = c.ReadLine("> ")
	if err != nil || got != "second" {
		t.Fatalf("expected unterminated last line, got %q err=%v", got, err)
	}
	if _, err := c.ReadLine("> "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if out.String() != "> > > " {
		t.Fatalf("unexpected prompt echo %q", out.String())
	}
}

func TestPlainThemeLeavesTextUntouched(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(Options{Out: &out, Theme: PlainTheme()})
	c.Header("--- H ---")
	c.Warn("bad")
	c.Success("ok")
	c.Note("note")
	if out.String() != "--- H ---\nbad\nok\nnote\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestForcedThemeStyles(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(Options{Out: &out, Theme: ThemeForVariant(&out, "retro_terminal", true)})
	c.Warn("bad")
	if !strings.Contains(out.String(), "\x1b[") || !strings.Contains(out.String(), "bad") {
		t.Fatalf("expected ANSI-styled warning, got %q", out.String())
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	if ColorEnabled("auto", &buf) {
		t.Fatalf("expected auto to disable color for non-file writers")
	}
	if !ColorEnabled("always", &buf) {
		t.Fatalf("expected always to enable color")
	}
	if ColorEnabled("never", &buf) {
		t.Fatalf("expected never to disable color")
	}
}
