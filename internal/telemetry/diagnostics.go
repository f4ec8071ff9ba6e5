package telemetry

import (
	"fmt"
	"io"
	"strings"

	clog "github.com/charmbracelet/log"
)

const DefaultLevel = "warn"

// NewDiagnostics returns the stderr logger. Console output the user reads never
// goes through it.
func NewDiagnostics(w io.Writer, level string) (*clog.Logger, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return clog.NewWithOptions(w, clog.Options{Prefix: "gradebook", Level: lvl}), nil
}
