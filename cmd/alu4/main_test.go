package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/alu4/alu"
)

func doRun(t *testing.T, stdin string, args ...string) (output string, err error) {
	cmd := newRootCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err = cmd.Execute()
	output = out.String()
	return
}

func TestRoot(t *testing.T) {
	assert := assert.New(t)

	output, err := doRun(t, "")
	assert.NoError(err)
	assert.True(strings.HasPrefix(output, "ALU Visualizer\n"))
	assert.Contains(output, "ALU Operation Codes:")
	assert.Contains(output, "110      SLT          Set if Less Than")
	assert.Contains(output, "Run with 'test' for comprehensive tests\n")
	assert.Contains(output, "Run with 'interactive' for interactive mode\n")
}

func TestRoot_Unknown(t *testing.T) {
	assert := assert.New(t)

	output, err := doRun(t, "", "bogus")
	assert.Error(err)
	assert.Contains(output, "unknown command \"bogus\"")
}

func TestTable(t *testing.T) {
	assert := assert.New(t)

	output, err := doRun(t, "", "table")
	assert.NoError(err)
	assert.True(strings.HasPrefix(output, "ALU Operation Codes:\n"))
	assert.Contains(output, "101      NOT          Logical NOT")
	assert.NotContains(output, "ALU Visualizer")
}

func TestTest(t *testing.T) {
	assert := assert.New(t)

	output, err := doRun(t, "", "test")
	assert.NoError(err)
	assert.True(strings.HasPrefix(output, "Comprehensive ALU Test Suite\n"))
	assert.Contains(output, "Test Case 1:\n")
	assert.Contains(output, "Test Case 20:\n")
	assert.NotContains(output, "Test Case 21:\n")
}

func TestTest_Script(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	script := filepath.Join(dir, "extra.star")
	err := os.WriteFile(script, []byte(`vectors = [(3, 5, XOR), (7, 7, "000", 1)]`+"\n"), 0o644)
	assert.NoError(err)

	output, err := doRun(t, "", "test", "--script", script)
	assert.NoError(err)
	assert.Contains(output, "Test Case 22:\nOperation: ADD\n")
	assert.NotContains(output, "Test Case 23:\n")
}

func TestTest_ScriptError(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	script := filepath.Join(dir, "bad.star")
	err := os.WriteFile(script, []byte(`vectors = [(3, 99, XOR)]`+"\n"), 0o644)
	assert.NoError(err)

	_, err = doRun(t, "", "test", "-s", script)
	assert.ErrorIs(err, alu.ErrOperandRange)

	_, err = doRun(t, "", "test", "-s", filepath.Join(dir, "missing.star"))
	assert.Error(err)
}

func TestInteractive(t *testing.T) {
	assert := assert.New(t)

	output, err := doRun(t, "0 1 001\n2 4 slt\nquit\n", "interactive")
	assert.NoError(err)
	assert.True(strings.HasPrefix(output, "Interactive ALU Testing Mode\n"))
	assert.Contains(output, "Operation: SUB\n")
	assert.Contains(output, "Result: 1111")
	assert.Contains(output, "Operation: SLT\n")
	assert.Contains(output, "Result: 0001")
}

func TestTruth(t *testing.T) {
	assert := assert.New(t)

	output, err := doRun(t, "", "truth", "sll")
	assert.NoError(err)
	assert.Contains(output, "Truth table: 111 SLL")
	assert.Equal(alu.TRUTH_ROWS+4, strings.Count(output, "\n"))

	output, err = doRun(t, "", "truth", "000", "--cin", "1")
	assert.NoError(err)
	assert.Equal(alu.TRUTH_ROWS/2+4, strings.Count(output, "\n"))
	assert.NotContains(output, "\n0   ")

	_, err = doRun(t, "", "truth", "000", "--cin", "2")
	assert.ErrorIs(err, ErrCarryFlag)

	_, err = doRun(t, "", "truth", "1000")
	assert.ErrorIs(err, alu.ErrOpcodeInvalid)

	_, err = doRun(t, "", "truth")
	assert.Error(err)
}
