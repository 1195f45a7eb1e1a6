package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

// withTerminal makes GetPassword take the no-echo path and return pw/err.
func withTerminal(t *testing.T, pw []byte, err error) {
	t.Helper()
	oldRead, oldIsTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = oldRead, oldIsTerm })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return pw, err }
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetTextWithDefault(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		current string
		want    string
		prompt  string
	}{
		{name: "keeps current on empty", input: "\n", current: "John", want: "John", prompt: "Username [John]\n> "},
		{name: "replaces current", input: "Jane\n", current: "John", want: "Jane", prompt: "Username [John]\n> "},
		{name: "no current", input: "Jane\n", want: "Jane", prompt: "Username\n> "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetTextWithDefault(rdr(tt.input), "Username", tt.current, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.prompt, out.String())
		})
	}
}

func TestGetPassword_Terminal(t *testing.T) {
	withTerminal(t, []byte("s3cret"), nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr(""), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	withTerminal(t, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	old := isTerminal
	t.Cleanup(func() { isTerminal = old })
	isTerminal = func(int) bool { return false }

	var out bytes.Buffer
	pw, err := GetPassword(rdr("piped\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("piped"), pw)
}

func TestGetConfirmation(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetConfirmation(rdr(tt.input), "Delete?", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
