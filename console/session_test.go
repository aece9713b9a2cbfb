package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Run(t *testing.T) {
	assert := assert.New(t)

	input := strings.Join([]string{
		"2 3 000 0",
		"",
		"1 2",
		"16 0 000",
		"1 2 999",
		"x 2 000",
		"8 0 sll",
		"quit",
		"1 1 000",
	}, "\n")

	out := &bytes.Buffer{}
	s := NewSession(strings.NewReader(input), out)
	assert.False(s.Interactive)

	err := s.Run(context.Background())
	assert.NoError(err)

	text := out.String()
	assert.True(strings.HasPrefix(text, "Interactive ALU Testing Mode\n"))
	assert.NotContains(text, "Enter operation:")
	assert.Contains(text, "Operation: ADD\n")
	assert.Contains(text, "Result: 0101")
	assert.Contains(text, "Error: Need at least 3 values (a b opcode)\n")
	assert.Contains(text, "Error: Values must be 0-15\n")
	assert.Contains(text, "Error: Invalid opcode\n")
	assert.Contains(text, "Error: 'x' is not a number\n")
	assert.Contains(text, "Operation: SLL\n")

	// Nothing after quit is evaluated.
	assert.Equal(2, strings.Count(text, "Operation: "))
}

func TestSession_Prompt(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	s := NewSession(strings.NewReader("1 1 010\n"), out)
	s.Interactive = true

	err := s.Run(context.Background())
	assert.NoError(err)

	// One prompt per line, plus one before end of input.
	assert.Equal(2, strings.Count(out.String(), "Enter operation: "))
}

func TestSession_EOF(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	s := NewSession(strings.NewReader("1 1 010"), out)

	err := s.Run(context.Background())
	assert.NoError(err)
	assert.Contains(out.String(), "Operation: AND\n")
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestSession_ReadError(t *testing.T) {
	assert := assert.New(t)

	s := NewSession(failReader{}, io.Discard)

	err := s.Run(context.Background())
	assert.True(errors.Is(err, io.ErrUnexpectedEOF))
}

func TestSession_Cancel(t *testing.T) {
	assert := assert.New(t)

	pr, pw := io.Pipe()
	defer pw.Close()

	out := &bytes.Buffer{}
	s := NewSession(pr, out)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := s.Run(ctx)
	assert.NoError(err)
	assert.True(strings.HasSuffix(out.String(), "\nExiting...\n"))
}

func TestSession_Handle(t *testing.T) {
	assert := assert.New(t)

	s := NewSession(strings.NewReader(""), io.Discard)

	assert.True(s.Handle("quit"))
	assert.True(s.Handle("  QUIT  "))
	assert.True(s.Handle("exit"))
	assert.False(s.Handle(""))
	assert.False(s.Handle("1 2 000"))
	assert.False(s.Handle("garbage"))
}

func TestIsTerminal(t *testing.T) {
	assert := assert.New(t)

	assert.False(IsTerminal(strings.NewReader("")))
	assert.False(IsTerminal(&bytes.Buffer{}))
}
