package console

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

// Session is an interactive read-evaluate-print loop over ALU operations.
type Session struct {
	Verbose     bool      // If set, logs each evaluated line.
	Interactive bool      // If set, prompts before each line.
	In          io.Reader // Line input.
	Presenter             // Output formatting.

	readErr error
}

// NewSession creates a session reading from in and writing to out. Prompts
// are enabled when in is a terminal.
func NewSession(in io.Reader, out io.Writer) (s *Session) {
	s = &Session{
		In:          in,
		Interactive: IsTerminal(in),
		Presenter:   Presenter{Out: out},
	}

	return
}

// IsTerminal returns true if r is a terminal file.
func IsTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

// Banner prints the usage summary for the session.
func (s *Session) Banner() {
	s.printf("Interactive ALU Testing Mode\n")
	s.printf("Enter 'quit' to exit\n")
	s.printf("Format: a b opcode [cin]\n")
	s.printf("Example: 2 3 000 0\n")
	s.rule("-", 40)
}

// reader sends each input line to lines until input ends or ctx is done.
func (s *Session) reader(ctx context.Context, lines chan<- string) {
	defer close(lines)

	scanner := bufio.NewScanner(s.In)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}

	s.readErr = scanner.Err()
}

// Run reads and evaluates lines until 'quit', end of input, or ctx is
// cancelled. Input errors are reported and the loop continues. Only a
// failure to read input is returned.
func (s *Session) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.Banner()

	lines := make(chan string)
	go s.reader(ctx, lines)

	for {
		if s.Interactive {
			s.printf("Enter operation: ")
		}

		select {
		case <-ctx.Done():
			s.printf("\nExiting...\n")
			return
		case line, ok := <-lines:
			if !ok {
				err = s.readErr
				if err != nil {
					log.Printf("console: reading input: %v", err)
				}
				return
			}
			if s.Handle(line) {
				return
			}
		}
	}
}

// Handle evaluates one line of input. It returns true if the line asks to
// end the session.
func (s *Session) Handle(line string) (done bool) {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "quit", "exit":
		return true
	case "":
		return false
	}

	in, err := ParseLine(line)
	if err != nil {
		if s.Verbose {
			log.Printf("console: %q: %v", line, err)
		}
		s.Error(err)
		return false
	}

	out := in.Evaluate()
	if s.Verbose {
		log.Printf("console: %v => %02x", in, out.Pack())
	}
	s.Outcome(in, out)

	return false
}
