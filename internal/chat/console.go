package chat

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Console is the line-oriented user interaction the conversation bridges to.
// Tests substitute scripted implementations.
type Console interface {
	// ReadLine blocks until the user enters a line. io.EOF ends the chat.
	ReadLine(prompt string) (string, error)
	// WriteLine shows a line to the user.
	WriteLine(text string)
}

// Terminal is the stdin/stdout console used by the CLI.
type Terminal struct {
	scanner *bufio.Scanner
}

// NewTerminal creates a console over os.Stdin.
func NewTerminal() *Terminal {
	return &Terminal{scanner: bufio.NewScanner(os.Stdin)}
}

// ReadLine prints the prompt and blocks for one line of input.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Print(pterm.FgCyan.Sprint(prompt))
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.scanner.Text(), nil
}

// WriteLine prints one line of peer output.
func (t *Terminal) WriteLine(text string) {
	pterm.Println(text)
}
