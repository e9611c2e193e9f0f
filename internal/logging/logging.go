// Package logging builds the CLI's structured logger.
package logging

import (
	"io"
	"log/slog"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
)

// New returns a colored slog logger writing to w. Debug records are emitted
// only when verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	opts := *slogcolor.DefaultOptions
	opts.Level = slog.LevelInfo
	if verbose {
		opts.Level = slog.LevelDebug
	}
	opts.MsgColor = color.New(color.FgMagenta)
	opts.SrcFileMode = slogcolor.Nop
	return slog.New(slogcolor.NewHandler(w, &opts))
}
