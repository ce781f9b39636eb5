package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Other is the label of the free-text menu entry.
const Other = "other"

// maxAttempts bounds re-prompting on invalid input.
const maxAttempts = 5

// ErrNoInput is returned when input ends before an answer is given.
var ErrNoInput = errors.New("no input: stdin closed before an answer was given")

// Prompter asks numbered-menu and yes/no questions.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// IsInteractive reports whether stdin is a terminal.
var IsInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Choose prints a 1-based menu and returns the chosen index.
func (p *Prompter) Choose(question string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("%s: no options available", question)
	}

	fmt.Fprintln(p.out, question)
	for i, o := range options {
		fmt.Fprintf(p.out, "%d : %s\n", i+1, o)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		answer, err := p.readLine("> ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintln(p.out, color.YellowString("! Please enter a number between 1 and %d.", len(options)))
	}
	return 0, fmt.Errorf("%s: too many invalid answers", question)
}

// ChooseOrOther offers options plus an "other" entry that reads a free-text value.
func (p *Prompter) ChooseOrOther(question string, options []string) (string, error) {
	menu := append(append([]string(nil), options...), Other)
	i, err := p.Choose(question, menu)
	if err != nil {
		return "", err
	}
	if i < len(options) {
		return options[i], nil
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		answer, err := p.readLine("> ")
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintln(p.out, color.YellowString("! Please enter a value."))
	}
	return "", fmt.Errorf("%s: too many empty answers", question)
}

// Confirm asks a yes/no question. Anything other than y or yes is a no.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.readLine(question + " [y/N] ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) readLine(promptText string) (string, error) {
	fmt.Fprint(p.out, promptText)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
