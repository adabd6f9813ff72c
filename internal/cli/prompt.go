package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/wordguess/internal/model"
)

// Prompter asks questions on out and reads line answers from in
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a Prompter over the given streams
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Ask prints prompt and returns the next line with surrounding whitespace
// removed. It returns model.ErrInputClosed once input is exhausted.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", model.ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Confirm asks a yes/no question; any answer starting with "y" or "Y" is yes
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.Ask(prompt)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}
