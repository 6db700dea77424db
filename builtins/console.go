package builtins

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-jsgo/jsgo/runtime"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// newConsole builds the `console` global: log/info/debug to stdout,
// warn/error to stderr, each joining its arguments' to_string with a
// single space (spec.md §6's named-contract style for built-ins).
func newConsole() *runtime.Value {
	console := runtime.NewObject()
	setMethod(console, "log", consoleLog)
	setMethod(console, "info", consoleLog)
	setMethod(console, "debug", consoleLog)
	setMethod(console, "error", consoleError)
	setMethod(console, "warn", consoleError)
	return runtime.NewObjectValue(console)
}

func formatArgs(args []*runtime.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = runtime.ToString(a)
	}
	return strings.Join(parts, " ")
}

func consoleLog(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	fmt.Fprintln(stdout, formatArgs(args))
	return runtime.Undefined(), nil
}

func consoleError(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	fmt.Fprintln(stderr, formatArgs(args))
	return runtime.Undefined(), nil
}
