package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	historyFile = ".meval_history"
	promptEval  = "eval >> "
	promptVars  = "vars >> "
)

// repl reads expressions interactively until EOF or "exit". The line "vars"
// toggles a second prompt after each expression for definitions like
// "a=1 b=2" which apply to that expression only.
func (s *session) repl() error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	r := replState{s: s}
	for {
		line, err := ln.Prompt(r.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if !r.line(os.Stdout, line) {
			return nil
		}
	}
}

// replState is the state of an interactive session between lines.
type replState struct {
	s *session
	// vars is whether to prompt for definitions after each expression.
	vars bool
	// pending is an expression waiting for its definitions.
	pending string
	waiting bool
}

func (r *replState) prompt() string {
	if r.waiting {
		return promptVars
	}
	return promptEval
}

// line handles one input line. Reports false when the session should end.
func (r *replState) line(w io.Writer, line string) bool {
	if r.waiting {
		r.waiting = false
		b, err := parseBindings(line)
		if err != nil {
			fmt.Fprintln(w, err)
			return true
		}
		r.s.eval(w, r.pending, b)
		return true
	}
	switch strings.TrimSpace(line) {
	case "":
		return true
	case "exit":
		return false
	case "vars":
		r.vars = !r.vars
		if r.vars {
			fmt.Fprintln(w, "vars enabled")
		} else {
			fmt.Fprintln(w, "vars disabled")
		}
		return true
	}
	if r.vars {
		r.pending = line
		r.waiting = true
		return true
	}
	r.s.eval(w, line, nil)
	return true
}
