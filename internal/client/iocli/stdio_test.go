package iocli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestStreams_Output(t *testing.T) {
	var out bytes.Buffer
	io := NewStreams(strings.NewReader(""), &out)

	io.Println("hello", "world")
	io.Printf("test %d %s\n", 1, "abc")
	_, err := io.Write([]byte("raw"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

func TestStreams_ReadInput(t *testing.T) {
	var out bytes.Buffer
	io := NewStreams(strings.NewReader("user input\nsecond"), &out)

	first, err := io.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", first)

	// последняя строка без перевода строки тоже читается
	second, err := io.ReadInput("> ")
	require.NoError(t, err)
	assert.Equal(t, "second", second)

	_, err = io.ReadInput("> ")
	assert.Error(t, err)

	assert.Equal(t, "Prompt: > > ", out.String())
}

func TestStreams_ReadPasswordFallsBackToLine(t *testing.T) {
	io := NewStreams(strings.NewReader("s3cret\n"), &bytes.Buffer{})

	pw, err := io.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
}
