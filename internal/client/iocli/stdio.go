package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal
const DefaultWidth = 80

type Stdio struct {
	in    *bufio.Reader
	out   io.Writer
	outFd int // -1 если вывод не файл
}

func NewStdio() IO {
	return &Stdio{
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
		outFd: int(os.Stdout.Fd()),
	}
}

// New creates IO over arbitrary streams, e.g. for scripted input
func New(in io.Reader, out io.Writer) IO {
	s := &Stdio{
		in:    bufio.NewReader(in),
		out:   out,
		outFd: -1,
	}
	if f, ok := out.(*os.File); ok {
		s.outFd = int(f.Fd())
	}
	return s
}

func (s *Stdio) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && !(err == io.EOF && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// Confirm asks a yes/no question, anything but "y" or "yes" means no
func (s *Stdio) Confirm(prompt string) (bool, error) {
	answer, err := s.ReadInput(prompt + " (yes/no): ")
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

func (s *Stdio) IsTerminal() bool {
	return s.outFd >= 0 && term.IsTerminal(s.outFd)
}

// Width returns the terminal width or DefaultWidth
func (s *Stdio) Width() int {
	if !s.IsTerminal() {
		return DefaultWidth
	}
	width, _, err := term.GetSize(s.outFd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
