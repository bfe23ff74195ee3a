package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/midbel/cli"
	"github.com/midbel/taut/logic"
	"github.com/midbel/taut/table"
)

const (
	replPrompt = "Enter proposition: "
	replQuit   = "quit"
)

type ReplCommand struct {
	Legacy bool
}

func (c ReplCommand) Run(args []string) error {
	set := cli.NewFlagSet("repl")
	set.BoolVar(&c.Legacy, "l", false, "drop dangling operators silently")
	if err := set.Parse(args); err != nil {
		return err
	}
	return c.loop(os.Stdin, os.Stdout)
}

// loop reads one expression per line and prints its table. A blank
// line gives the prompt back, an invalid expression is reported and
// evaluation resumes with the next line.
func (c ReplCommand) loop(r io.Reader, w io.Writer) error {
	lines := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, replPrompt)
		if !lines.Scan() {
			break
		}
		line := strings.TrimSpace(lines.Text())
		if line == replQuit {
			break
		}
		if line == "" {
			continue
		}
		tab, err := table.Generate(line, scanMode(c.Legacy))
		if err != nil {
			if !errors.Is(err, logic.ErrInvalid) {
				return err
			}
			fmt.Fprintln(w, "Invalid expression!")
			continue
		}
		if err := table.EncodeText(w).EncodeTable(tab); err != nil {
			return err
		}
	}
	return lines.Err()
}
