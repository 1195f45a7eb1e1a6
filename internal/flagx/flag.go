// Package flagx contains command-line helpers that run before the main flag
// set is built.
package flagx

import (
	"io"

	"github.com/spf13/pflag"
)

// ConfigFileFlag returns the value of -c/--config from args (usually
// os.Args[1:]) or "" if absent. Every other flag is ignored, so this is safe
// to call before the full flag set exists.
func ConfigFileFlag(args []string) string {
	var path string

	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.StringVarP(&path, "config", "c", "", "path to config file")

	if err := fs.Parse(args); err != nil {
		return ""
	}
	return path
}
