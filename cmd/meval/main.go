package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zephyrtronium/meval"
)

func main() {
	log.SetFlags(0)
	var (
		verb, varsfile, lang string
		given                []binding
	)
	addgiven := func(s string) error {
		b, err := parseBinding(s)
		if err != nil {
			return err
		}
		given = append(given, b)
		return nil
	}
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [expr]...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.StringVar(&varsfile, "vars", "", "YAML file mapping variable names to values")
	flag.StringVar(&lang, "lang", "", "language tag for formatting results, e.g. de-CH")
	flag.Parse()

	if varsfile != "" {
		b, err := loadBindings(varsfile)
		if err != nil {
			log.Fatalf("reading %s: %v", varsfile, err)
		}
		// Definitions from flags take precedence over the file.
		given = append(given, b...)
	}
	s := &session{
		verb:  verb + "\n",
		given: given,
		cache: meval.NewCache(0),
	}
	if lang != "" {
		tag, err := language.Parse(lang)
		if err != nil {
			log.Fatalf("invalid language %q: %v", lang, err)
		}
		s.p = message.NewPrinter(tag)
	}

	if flag.NArg() > 0 {
		failed := 0
		for _, arg := range flag.Args() {
			if !s.eval(os.Stdout, arg, nil) {
				failed++
			}
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		if err := s.repl(); err != nil {
			log.Fatal(err)
		}
		return
	}
	if !s.lines(os.Stdout, os.Stdin) {
		os.Exit(1)
	}
}

// session holds the settings shared by every expression the command
// evaluates.
type session struct {
	verb  string
	p     *message.Printer
	given []binding
	// cache holds compiled expressions for evaluations with variables.
	cache *meval.Cache
}

// eval evaluates src and writes the result or the error to w. extra holds
// bindings that take precedence over the session's. If both are nil, src
// may not use variables. Reports whether evaluation succeeded.
func (s *session) eval(w io.Writer, src string, extra []binding) bool {
	r, err := s.calc(src, extra)
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", strings.TrimSpace(src), err)
		return false
	}
	if s.p != nil {
		s.p.Fprintf(w, s.verb, r)
	} else {
		fmt.Fprintf(w, s.verb, r)
	}
	return true
}

func (s *session) calc(src string, extra []binding) (float64, error) {
	if len(s.given) == 0 && extra == nil {
		return meval.Eval(src)
	}
	vars, err := bind(extra, s.given)
	if err != nil {
		return 0, err
	}
	return s.cache.Eval(src, vars)
}

// lines evaluates each non-blank line of r as a separate expression. Reports
// whether every line succeeded.
func (s *session) lines(w io.Writer, r io.Reader) bool {
	ok := true
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !s.eval(w, line, nil) {
			ok = false
		}
	}
	if err := sc.Err(); err != nil {
		log.Print(err)
		return false
	}
	return ok
}
