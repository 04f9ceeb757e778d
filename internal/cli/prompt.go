package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/toyz/srvgen/internal/errors"
)

// OverwritePrompt is asked before replacing an existing route output file
const OverwritePrompt = "Output file is exist already. Overwrite? (y/N)"

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(prompt string) (bool, error)

// Confirm calls f
func (f ConfirmFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

// TerminalConfirmer prompts on an interactive terminal. When its input is
// not a terminal every question is answered no.
type TerminalConfirmer struct {
	in  *os.File
	out io.Writer
}

// NewTerminalConfirmer prompts on stdout and reads the answer from stdin
func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{in: os.Stdin, out: os.Stdout}
}

var _ Confirmer = (*TerminalConfirmer)(nil)

// Confirm accepts "y" or "Y"
func (c *TerminalConfirmer) Confirm(prompt string) (bool, error) {
	if !term.IsTerminal(int(c.in.Fd())) {
		return false, nil
	}

	fmt.Fprintf(c.out, "%s ", prompt)
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.WrapIOError("read", c.in.Name(), err)
	}

	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y", nil
}
