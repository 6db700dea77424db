package builtins

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-jsgo/jsgo/runtime"
)

func TestConsoleLog(t *testing.T) {
	var buf bytes.Buffer
	oldStdout := stdout
	stdout = &buf
	defer func() { stdout = oldStdout }()

	consoleLog(runtime.Undefined(), []*runtime.Value{runtime.NewString("hello"), runtime.NewNumber(42)})
	assert.Equal(t, "hello 42", strings.TrimSpace(buf.String()))
}

func TestConsoleError(t *testing.T) {
	var buf bytes.Buffer
	oldStderr := stderr
	stderr = &buf
	defer func() { stderr = oldStderr }()

	consoleError(runtime.Undefined(), []*runtime.Value{runtime.NewString("error!")})
	assert.Equal(t, "error!", strings.TrimSpace(buf.String()))
}

func TestConsoleLogMultipleArgsJoinedBySpace(t *testing.T) {
	var buf bytes.Buffer
	oldStdout := stdout
	stdout = &buf
	defer func() { stdout = oldStdout }()

	consoleLog(runtime.Undefined(), []*runtime.Value{runtime.NewString("a"), runtime.NewBool(true), runtime.Null()})
	assert.Equal(t, "a true null", strings.TrimSpace(buf.String()))
}
