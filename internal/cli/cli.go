package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// version is overridden at build time with -ldflags "-X nyxventure/internal/cli.version=...".
var version = "dev"

// Options carries the persistent flags shared by every command.
type Options struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// MainWithArgs runs the CLI with args and returns the process exit code:
// 0 on success, 1 when a command fails and 2 when no command was given.
func MainWithArgs(args []string) int { return execute(args, os.Stdout, os.Stderr) }

// Main returns an exit code for use by cmd/nyxd.
func Main() int { return MainWithArgs(os.Args[1:]) }

func execute(args []string, stdout, stderr io.Writer) int {
	root := buildRootCmd(&Options{})
	root.SetOut(stdout)
	root.SetErr(stderr)
	if len(args) == 0 {
		_ = root.Usage()
		return 2
	}
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}

// splitCSV splits a comma-separated flag value and drops empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
