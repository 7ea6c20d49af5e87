package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-master-password/internal/secret"
	"golang.org/x/term"
)

// TerminalPrompter reads from in and writes prompts to out. When in is a
// terminal secrets are read with echo disabled.
type TerminalPrompter struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

func NewTerminalPrompter(in *os.File, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: in, out: out, reader: bufio.NewReader(in)}
}

func (p *TerminalPrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %q: %w", strings.TrimSpace(prompt), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *TerminalPrompter) ReadSecret(prompt string) (*secret.Bytes, error) {
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return nil, err
		}
		return secret.FromString(line), nil
	}

	fmt.Fprint(p.out, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		secret.Wipe(raw)
		return nil, fmt.Errorf("read %q: %w", strings.TrimSpace(prompt), err)
	}
	return secret.New(raw), nil
}
