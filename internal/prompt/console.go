// Package prompt collects validated answers from a line-based console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bsatish290/pdsnd-github/internal/style"
)

// ErrInputClosed is returned when the input ends before a valid answer is read.
var ErrInputClosed = errors.New("input closed")

// Console reads answers line by line from in and writes prompts to out.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	styles  style.Styles
}

// NewConsole wraps the given reader and writer.
func NewConsole(in io.Reader, out io.Writer, styles style.Styles) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  styles,
	}
}

// Out returns the writer prompts are written to.
func (c *Console) Out() io.Writer {
	return c.out
}

// Ask prompts until the answer, in title case, is one of valid. It returns
// the answer as typed, minus surrounding space. There is no retry limit.
func (c *Console) Ask(message, kind string, valid []string) (string, error) {
	allowed := make(map[string]struct{}, len(valid))
	for _, v := range valid {
		allowed[v] = struct{}{}
	}
	for {
		answer, err := c.readLine(message)
		if err != nil {
			return "", err
		}
		if _, ok := allowed[TitleCase(answer)]; ok {
			if _, err := fmt.Fprintln(c.out); err != nil {
				return "", err
			}
			return answer, nil
		}
		msg := fmt.Sprintf("Sorry, that was an incorrect %s. Try again.", kind)
		if _, err := fmt.Fprintf(c.out, "%s\n\n", c.styles.Error.Render(msg)); err != nil {
			return "", err
		}
	}
}

// Confirm prompts once and reports whether the answer was "yes", ignoring
// case. End of input counts as no.
func (c *Console) Confirm(message string) (bool, error) {
	answer, err := c.readLine(message)
	if errors.Is(err, ErrInputClosed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

func (c *Console) readLine(message string) (string, error) {
	if _, err := fmt.Fprint(c.out, message); err != nil {
		return "", err
	}
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

// TitleCase upper-cases the first letter of each word and lower-cases the rest.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
