// Package ui is the line-oriented console the session loop talks through.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type Options struct {
	In    io.Reader
	Out   io.Writer
	Theme Theme
}

type Console struct {
	in    *bufio.Reader
	out   io.Writer
	theme Theme
}

func NewConsole(opts Options) *Console {
	in := opts.In
	if in == nil {
		in = strings.NewReader("")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &Console{in: bufio.NewReader(in), out: out, theme: opts.Theme}
}

// ReadLine writes prompt without a newline and returns the next input line with
// its line terminator removed. io.EOF is returned only when nothing was read.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func (c *Console) Println(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(c.out, l)
	}
}

func (c *Console) Header(s string)  { fmt.Fprintln(c.out, c.theme.render(c.theme.Header, s)) }
func (c *Console) Success(s string) { fmt.Fprintln(c.out, c.theme.render(c.theme.Pass, s)) }
func (c *Console) Warn(s string)    { fmt.Fprintln(c.out, c.theme.render(c.theme.Fail, s)) }
func (c *Console) Note(s string)    { fmt.Fprintln(c.out, c.theme.render(c.theme.Muted, s)) }

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
