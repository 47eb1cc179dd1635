package meval

// MaxVarName is the maximum length in bytes of a variable name. Longer names
// are truncated, both in expressions and in Vars.
const MaxVarName = 31

// MaxVars is the maximum number of bindings a Vars can hold.
const MaxVars = 1 << 16

// Var is a variable binding.
type Var struct {
	Name  string
	Value float64
}

// Vars is an ordered list of variable bindings. The zero value is an empty
// list ready to use. A Vars may be read by any number of concurrent
// evaluations as long as nothing appends to it at the same time.
type Vars struct {
	list []Var
}

// Append adds a binding to the end of the list. Names do not need to be
// unique; lookups use the first binding with a given name. The only error is
// ErrTooManyVars if the list already holds MaxVars bindings.
func (v *Vars) Append(name string, value float64) error {
	list, ok := grow(v.list, Var{Name: truncName(name), Value: value}, MaxVars)
	if !ok {
		return ErrTooManyVars.at(0, name)
	}
	v.list = list
	return nil
}

// Lookup returns the value of the first binding for name. A nil Vars has no
// bindings.
func (v *Vars) Lookup(name string) (float64, bool) {
	if v == nil {
		return 0, false
	}
	name = truncName(name)
	for _, x := range v.list {
		if x.Name == name {
			return x.Value, true
		}
	}
	return 0, false
}

// Len returns the number of bindings.
func (v *Vars) Len() int {
	if v == nil {
		return 0
	}
	return len(v.list)
}

// List returns a copy of the bindings in order.
func (v *Vars) List() []Var {
	if v == nil {
		return nil
	}
	return append([]Var(nil), v.list...)
}

// Release drops all bindings and their storage. The list may be reused
// afterward.
func (v *Vars) Release() {
	v.list = nil
}

func truncName(name string) string {
	if len(name) > MaxVarName {
		return name[:MaxVarName]
	}
	return name
}
