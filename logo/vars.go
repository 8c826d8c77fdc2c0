package logo

import (
	"maps"
	"slices"
	"strconv"
	"sync"
)

// Value is a variable value: a Number or a Word.
type Value interface {
	String() string
	isValue()
}

// Number is a numeric value.
type Number float64

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (Number) isValue()         {}

// Word is a string value.
type Word string

func (w Word) String() string { return string(w) }
func (Word) isValue()         {}

// valueOf infers the type of a MAKE value: anything that starts with a
// number is a Number, everything else a Word.
func valueOf(s string) Value {
	if v, ok := parseNumber(s); ok {
		return Number(v)
	}
	return Word(s)
}

// Vars is the variable store. There is a single flat scope; the last
// write wins and nothing is ever deleted.
type Vars struct {
	mu sync.RWMutex
	m  map[string]Value
}

// NewVars returns an empty store.
func NewVars() *Vars {
	return &Vars{m: make(map[string]Value)}
}

// Set binds name to v.
func (vs *Vars) Set(name string, v Value) {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.m[name] = v
}

// Get returns the value bound to name.
func (vs *Vars) Get(name string) (Value, bool) {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	v, ok := vs.m[name]
	return v, ok
}

// Names returns the bound names in sorted order.
func (vs *Vars) Names() []string {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return slices.Sorted(maps.Keys(vs.m))
}

// Len returns the number of bound names.
func (vs *Vars) Len() int {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return len(vs.m)
}
