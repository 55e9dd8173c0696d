package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads interactive answers line by line. On EOF every method
// returns its default so a truncated stdin can't spin forever.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) read() (string, bool) {
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// Line asks once and returns the answer, which may be empty.
func (p *Prompter) Line(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	s, _ := p.read()
	return s
}

// Required re-asks until the answer is non-empty (or stdin ends).
func (p *Prompter) Required(label string) string {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		s, ok := p.read()
		if s != "" || !ok {
			return s
		}
		fmt.Fprintln(p.out, "This field cannot be empty.")
	}
}

// Int asks for a number; empty keeps def, junk re-asks.
func (p *Prompter) Int(label string, def int) int {
	for {
		fmt.Fprintf(p.out, "%s [%d]: ", label, def)
		s, ok := p.read()
		if s == "" || !ok {
			return def
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a whole number.")
			continue
		}
		return n
	}
}

// YesNo asks for y/n; empty keeps def.
func (p *Prompter) YesNo(label string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "%s [%s]: ", label, hint)
		s, ok := p.read()
		if s == "" || !ok {
			return def
		}
		switch strings.ToLower(s) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// Choice prints a numbered menu and returns the 1-based selection; empty
// keeps def.
func (p *Prompter) Choice(label string, options []string, def int) int {
	fmt.Fprintf(p.out, "%s:\n", label)
	for i, opt := range options {
		marker := ""
		if i+1 == def {
			marker = " (default)"
		}
		fmt.Fprintf(p.out, "  %d. %s%s\n", i+1, opt, marker)
	}
	for {
		fmt.Fprintf(p.out, "Select 1-%d [%d]: ", len(options), def)
		s, ok := p.read()
		if s == "" || !ok {
			return def
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= 1 && n <= len(options) {
			return n
		}
		fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(options))
	}
}
