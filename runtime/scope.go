package runtime

import "fmt"

// Binding is a single name binding within a Scope: a value and whether
// later assignment may overwrite it (spec §3's "{value, mutable?}").
type Binding struct {
	Value   *Value
	Mutable bool
}

// Scope is one frame of the lexical scope chain (spec §3). The
// evaluator holds an ordered stack of these; a function call pushes a
// fresh Scope onto its captured chain, not onto the caller's live stack
// (spec §9 "Closures and scope chains").
type Scope struct {
	bindings map[string]*Binding
}

// NewScope creates an empty scope frame.
func NewScope() *Scope {
	return &Scope{bindings: make(map[string]*Binding)}
}

// Define introduces (or overwrites) a binding in this scope frame.
func (s *Scope) Define(name string, v *Value, mutable bool) {
	s.bindings[name] = &Binding{Value: v, Mutable: mutable}
}

// Get looks up name in this frame only.
func (s *Scope) Get(name string) (*Value, bool) {
	b, ok := s.bindings[name]
	if !ok {
		return nil, false
	}
	return b.Value, true
}

// Set overwrites an existing binding in this frame and reports whether
// one existed. It does not create a new binding. Assigning to a
// binding with Mutable false (e.g. a call's bound "this") reports found
// alongside an error instead of writing through it, mirroring the
// teacher's Environment.Set check for its const bindings.
func (s *Scope) Set(name string, v *Value) (found bool, err error) {
	b, ok := s.bindings[name]
	if !ok {
		return false, nil
	}
	if !b.Mutable {
		return true, fmt.Errorf("TypeError: Assignment to constant variable '%s'", name)
	}
	b.Value = v
	return true, nil
}

// Has reports whether name is bound in this frame.
func (s *Scope) Has(name string) bool {
	_, ok := s.bindings[name]
	return ok
}
