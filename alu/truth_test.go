package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruth(t *testing.T) {
	assert := assert.New(t)

	var rows []Input
	for in, out := range Truth(OP_XOR) {
		assert.Equal(Evaluate(in.A, in.B, in.Op, in.CarryIn), out)
		rows = append(rows, in)
	}

	assert.Equal(TRUTH_ROWS, len(rows))
	assert.Equal(Input{A: 0, B: 0, Op: OP_XOR, CarryIn: 0}, rows[0])
	assert.Equal(Input{A: 0, B: 1, Op: OP_XOR, CarryIn: 0}, rows[1])
	assert.Equal(Input{A: 1, B: 0, Op: OP_XOR, CarryIn: 0}, rows[16])
	assert.Equal(Input{A: 0, B: 0, Op: OP_XOR, CarryIn: 1}, rows[256])
	assert.Equal(Input{A: 15, B: 15, Op: OP_XOR, CarryIn: 1}, rows[TRUTH_ROWS-1])
}

func TestTruth_Stop(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range Truth(OP_ADD) {
		count++
		if count == 20 {
			break
		}
	}
	assert.Equal(20, count)
}

func TestTruth_Unknown(t *testing.T) {
	assert := assert.New(t)

	for _, out := range Truth(Opcode(8)) {
		assert.Equal(Outcome{Zero: true}, out)
	}
}
