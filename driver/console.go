package driver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// ConsoleTransport is a line-oriented Transport over an io.Reader and
// io.Writer pair, used by the interactive chat command.
type ConsoleTransport struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// NewConsoleTransport builds a console transport. The prompt is printed
// before each input read.
func NewConsoleTransport(in io.Reader, out io.Writer, prompt string) *ConsoleTransport {
	return &ConsoleTransport{
		scanner: bufio.NewScanner(in),
		out:     out,
		prompt:  prompt,
	}
}

// Banner prints the session header.
func (t *ConsoleTransport) Banner() {
	line := strings.Repeat("=", 70)
	fmt.Fprintf(t.out, "\n%s\nDETTY-DECEMBER LAGOS TOURISM ADVISOR\n%s\n", line, line)
	fmt.Fprintln(t.out, "This assistant helps tourists explore Lagos safely this December.")
}

// NextInput implements Transport. Console reads are blocking; the
// context is checked before each read.
func (t *ConsoleTransport) NextInput(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(t.out, t.prompt)
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.scanner.Text(), nil
}

// Send implements Transport.
func (t *ConsoleTransport) Send(text string) error {
	_, err := fmt.Fprintf(t.out, "\nTourism Advisor:\n%s\n\n", text)
	return err
}

// Notice implements Transport.
func (t *ConsoleTransport) Notice(text string) error {
	_, err := fmt.Fprintf(t.out, "\n%s\n\n", text)
	return err
}
