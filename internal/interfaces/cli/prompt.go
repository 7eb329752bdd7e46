package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoTerminal se devuelve cuando hay que pedir credenciales y stdin no es una terminal.
var ErrNoTerminal = errors.New("cli: se requiere una terminal para pedir credenciales (usar --email y --password)")

// Prompter pide email y contraseña al usuario.
type Prompter interface {
	Credentials() (email, password string, err error)
}

// TerminalPrompter lee el email como línea y la contraseña sin eco.
type TerminalPrompter struct {
	In  *os.File
	Out io.Writer
}

// NewTerminalPrompter usa stdin y stderr (stdout queda para la tabla o el JSON).
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{In: os.Stdin, Out: os.Stderr}
}

// Credentials implementa Prompter.
func (p *TerminalPrompter) Credentials() (string, string, error) {
	fd := int(p.In.Fd())
	if !term.IsTerminal(fd) {
		return "", "", ErrNoTerminal
	}

	fmt.Fprint(p.Out, "Email: ")
	line, err := readLine(p.In)
	if err != nil {
		return "", "", fmt.Errorf("cli: leer email: %w", err)
	}

	fmt.Fprint(p.Out, "Contraseña: ")
	pass, err := term.ReadPassword(fd)
	fmt.Fprintln(p.Out)
	if err != nil {
		return "", "", fmt.Errorf("cli: leer contraseña: %w", err)
	}
	return strings.TrimSpace(line), string(pass), nil
}

// readLine lee hasta '\n' de a un byte: lo que sigue (la contraseña pegada junto con el
// email) queda en el descriptor para term.ReadPassword.
func readLine(r io.Reader) (string, error) {
	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				break
			}
			b.WriteByte(buf[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.TrimRight(b.String(), "\r"), nil
}
