package twitteroauth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when input ends before a non-empty answer was given.
var ErrNoInput = errors.New("no input provided")

// Prompter asks the operator for single-line answers.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(in), out: out}
}

// Ask writes label and blocks until the operator enters a non-empty line,
// asking again after blank ones. The answer is trimmed of surrounding whitespace.
func (p *Prompter) Ask(label string) (string, error) {
	for {
		if _, err := fmt.Fprint(p.out, label); err != nil {
			return "", err
		}
		line, err := p.reader.ReadString('\n')
		answer := strings.TrimSpace(line)
		if answer != "" {
			return answer, nil
		}
		if err == io.EOF {
			fmt.Fprintln(p.out)
			return "", ErrNoInput
		}
		if err != nil {
			return "", err
		}
	}
}
