package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	passwordPrompt = "Contraseña: "
	confirmPrompt  = "Confirme la contraseña: "
)

// readPassword reads from the terminal without echo. Replaced in tests.
var readPassword = term.ReadPassword

// GetSimpleText shows label, then "> " on the next line, and returns the
// trimmed answer. A last line without a newline still counts as an answer.
func GetSimpleText(reader *bufio.Reader, label string, w io.Writer) (string, error) {
	fmt.Fprintf(w, "%s\n> ", label)

	line, err := reader.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	default:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword shows prompt and reads a hidden line from stdin. Callers wipe
// the result with common.WipeByteArray once done.
func GetPassword(w io.Writer, prompt string) ([]byte, error) {
	fmt.Fprint(w, prompt)
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	return pw, err
}
