package console

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/alu4/alu"
	"github.com/ezrec/alu4/internal"
	"github.com/ezrec/alu4/translate"
)

// Binary renders a nibble as four binary digits.
func Binary(n alu.Nibble) string {
	return fmt.Sprintf("%0*b", alu.NIBBLE_BITS, uint8(n&alu.NIBBLE_MASK))
}

// Presenter formats ALU tables and outcomes as text.
type Presenter struct {
	Out io.Writer
}

func (p *Presenter) printf(format string, args ...any) {
	translate.Fprintf(p.Out, format, args...)
}

func (p *Presenter) rule(ch string, width int) {
	fmt.Fprintln(p.Out, strings.Repeat(ch, width))
}

// Table prints the operation catalog.
func (p *Presenter) Table() {
	p.printf("ALU Operation Codes:\n")
	p.rule("=", 50)
	p.printf("%-8s %-12s %s\n", f("Opcode"), f("Operation"), f("Description"))
	p.rule("-", 50)
	for entry := range alu.Catalog() {
		p.printf("%-8s %-12s %s\n", entry.Opcode.Code(), entry.Name, f(entry.Description))
	}
	fmt.Fprintln(p.Out)
}

// Outcome prints the inputs and outcome of a single operation.
func (p *Presenter) Outcome(in alu.Input, out alu.Outcome) {
	p.printf("Operation: %v\n", in.Op)
	p.printf("Inputs: A=%s (%2d), B=%s (%2d), Cin=%d\n",
		Binary(in.A), in.A.Signed(), Binary(in.B), in.B.Signed(), in.CarryIn)
	p.printf("Result: %s (%2d)\n", Binary(out.Result), out.Result.Signed())
	p.printf("Flags: Cout=%d, Zero=%v, Neg=%v, Ovr=%v\n",
		out.CarryOut, out.Zero, out.Negative, out.Overflow)
	p.rule("-", 50)
}

// Suite evaluates and prints each test vector.
func (p *Presenter) Suite(vectors iter.Seq[alu.Input]) (count int) {
	p.printf("Comprehensive ALU Test Suite\n")
	p.rule("=", 60)

	for n, in := range internal.SeqCount(vectors) {
		p.printf("Test Case %d:\n", n)
		p.Outcome(in, in.Evaluate())
		count = n
	}

	return
}

// Truth prints the truth table rows of one operation.
func (p *Presenter) Truth(op alu.Opcode, rows iter.Seq2[alu.Input, alu.Outcome]) {
	name, desc, _ := alu.Describe(op)
	p.printf("Truth table: %s %s (%s)\n", op.Code(), name, f(desc))
	p.rule("=", 40)
	p.printf("%-3s %-4s %-4s  %-6s %-4s %s\n", "Cin", "A", "B", f("Result"), "NZVC", "ROM")
	p.rule("-", 40)
	for in, out := range rows {
		fmt.Fprintf(p.Out, "%-3d %-4s %-4s  %-6s %-4s %02X\n",
			in.CarryIn, Binary(in.A), Binary(in.B), Binary(out.Result), out.Flags(), out.Pack())
	}
}

// Error prints a user input error.
func (p *Presenter) Error(err error) {
	p.printf("Error: %v\n", err)
}
