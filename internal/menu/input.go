package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	internalstrings "github.com/amonks/td/internal/strings"
	"github.com/amonks/td/todo"
)

const (
	maxIntAttempts      = 10
	maxPriorityAttempts = 5
	maxStringAttempts   = 5

	// DefaultString replaces required text the user never supplied.
	DefaultString = "Default"
)

// errEndOfInput reports that the input stream is exhausted.
var errEndOfInput = errors.New("end of input")

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// readLine returns the next line without its terminator. A final line
// without a newline is still returned. errEndOfInput is returned only when
// nothing could be read.
func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return internalstrings.NormalizeInputLine(line), nil
		}
		return "", errEndOfInput
	}
	return internalstrings.NormalizeInputLine(line), nil
}

// promptLine prints prompt and reads one line.
func (p *prompter) promptLine(prompt string) (string, error) {
	p.printf("%s", prompt)
	return p.readLine()
}

// confirm asks a y/n question. Only answers starting with y or Y count as yes.
func (p *prompter) confirm(prompt string) bool {
	answer, err := p.promptLine(prompt + " (y/n): ")
	if err != nil {
		return false
	}
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "Y")
}

// readInt prompts for an integer. After maxIntAttempts invalid answers it
// gives up and returns 0. errEndOfInput is returned if the stream ends.
func (p *prompter) readInt(prompt string) (int, error) {
	for range maxIntAttempts {
		p.printf("%s: ", prompt)
		line, err := p.readLine()
		if err != nil {
			p.printf("\nEnd of input reached or error occurred.\n")
			return 0, errEndOfInput
		}
		if value, err := strconv.Atoi(strings.TrimLeft(line, " \t")); err == nil {
			return value, nil
		}
		p.printf("Invalid input. Please enter a valid number.\n")
	}

	p.printf("Too many invalid attempts. Using default value 0.\n")
	return 0, nil
}

// readPriority offers the three priority levels. End of input and repeated
// invalid answers both fall back to medium.
func (p *prompter) readPriority() todo.Priority {
	p.printf("\nPriority levels:\n")
	for _, priority := range todo.ValidPriorities() {
		p.printf("%d. %s\n", int(priority), priority)
	}

	for range maxPriorityAttempts {
		choice, err := p.readInt("Enter priority")
		if err != nil {
			p.printf("Using default priority: %s\n", todo.PriorityMedium)
			return todo.PriorityMedium
		}
		if priority := todo.Priority(choice); priority.IsValid() {
			return priority
		}
		p.printf("Invalid priority. Please enter 1, 2, or 3.\n")
	}

	p.printf("Too many invalid attempts. Using default priority: %s\n", todo.PriorityMedium)
	return todo.PriorityMedium
}

// readString prompts until a non-empty answer is given. End of input and
// repeated empty answers both fall back to DefaultString.
func (p *prompter) readString(prompt string) string {
	for range maxStringAttempts {
		p.printf("%s: ", prompt)
		line, err := p.readLine()
		if err != nil {
			p.printf("\nEnd of input reached. Using default value.\n")
			return DefaultString
		}
		if line != "" {
			return line
		}
		p.printf("Input cannot be empty. Please try again.\n")
	}

	p.printf("Too many invalid attempts. Using default value.\n")
	return DefaultString
}
