package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/meval"
)

// binding is a variable definition given on the command line, in a file, or
// at the REPL's vars prompt.
type binding struct {
	name  string
	value float64
}

// parseBinding parses a "name=value" definition. The value may be any
// expression without variables.
func parseBinding(s string) (binding, error) {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return binding{}, fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	name := strings.TrimSpace(d[0])
	if name == "" {
		return binding{}, fmt.Errorf("missing variable name in %q", s)
	}
	r, err := meval.Eval(strings.TrimSpace(d[1]))
	if err != nil {
		return binding{}, fmt.Errorf("setting %s: %w", name, err)
	}
	return binding{name: name, value: r}, nil
}

// parseBindings parses whitespace-separated definitions like "a=1 b=2". The
// result is non-nil even if there are none.
func parseBindings(line string) ([]binding, error) {
	r := []binding{}
	for _, f := range strings.Fields(line) {
		b, err := parseBinding(f)
		if err != nil {
			return nil, err
		}
		r = append(r, b)
	}
	return r, nil
}

// loadBindings reads variable definitions from a YAML mapping of names to
// values. Values may be numbers or expression strings.
func loadBindings(path string) ([]binding, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeBindings(b)
}

func decodeBindings(b []byte) ([]binding, error) {
	var m map[string]interface{}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	r := make([]binding, 0, len(names))
	for _, name := range names {
		var v float64
		switch x := m[name].(type) {
		case int:
			v = float64(x)
		case float64:
			v = x
		case string:
			e, err := meval.Eval(x)
			if err != nil {
				return nil, fmt.Errorf("setting %s: %w", name, err)
			}
			v = e
		default:
			return nil, fmt.Errorf("value of %s must be a number or expression, not %T", name, x)
		}
		r = append(r, binding{name: name, value: v})
	}
	return r, nil
}

// bind creates a variable list from groups of bindings. Earlier groups take
// precedence over later ones.
func bind(groups ...[]binding) (*meval.Vars, error) {
	var vars meval.Vars
	for _, g := range groups {
		for _, b := range g {
			if err := vars.Append(b.name, b.value); err != nil {
				return nil, err
			}
		}
	}
	return &vars, nil
}
