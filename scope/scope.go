/*
File    : eta/scope/scope.go

Package scope implements eta's lexical scope chain: a mapping from
identifier to runtime Object plus a pointer to an optional outer Scope.
*/
package scope

import "eta/object"

// Scope is one frame of the scope chain. A nil Parent marks the global
// scope.
type Scope struct {
	Variables map[string]object.Object
	Parent    *Scope
}

// New creates a Scope nested inside parent. Pass nil to create the global
// scope.
func New(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]object.Object),
		Parent:    parent,
	}
}

// LookUp walks outward from s looking for name, returning the bound Object
// and whether it was found anywhere on the chain.
func (s *Scope) LookUp(name string) (object.Object, bool) {
	if obj, ok := s.Variables[name]; ok {
		return obj, true
	}
	if s.Parent != nil {
		return s.Parent.LookUp(name)
	}
	return nil, false
}

// ExistsHere reports whether name is bound in this frame specifically,
// ignoring outer scopes. Used by `let` to detect redefinition within the
// same block.
func (s *Scope) ExistsHere(name string) bool {
	_, ok := s.Variables[name]
	return ok
}

// Bind adds name to the current scope only, returning whether it was
// already bound here (a redefinition the caller may choose to reject).
func (s *Scope) Bind(name string, obj object.Object) bool {
	_, existed := s.Variables[name]
	s.Variables[name] = obj
	return existed
}

// Assign walks outward from s until it finds the frame that already binds
// name, updates the binding there, and returns that frame. It returns
// (nil, false) if name is not bound anywhere on the chain.
func (s *Scope) Assign(name string, obj object.Object) (*Scope, bool) {
	if _, ok := s.Variables[name]; ok {
		s.Variables[name] = obj
		return s, true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, obj)
	}
	return nil, false
}

// Copy returns a new Scope with the same Parent and a shallow copy of this
// frame's bindings. A function literal calls this on its defining scope at
// the moment of declaration, so later bindings added to that scope are not
// retroactively visible inside the closure, matching the teacher's
// capture-by-copy semantics.
func (s *Scope) Copy() *Scope {
	cp := New(s.Parent)
	for k, v := range s.Variables {
		cp.Variables[k] = v
	}
	return cp
}
