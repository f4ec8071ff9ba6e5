package app

import "strings"

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func normalizeColorMode(raw string) (ColorMode, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(ColorAuto):
		return ColorAuto, true
	case string(ColorAlways), "on", "true":
		return ColorAlways, true
	case string(ColorNever), "off", "false", "none":
		return ColorNever, true
	default:
		return "", false
	}
}
