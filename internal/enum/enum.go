// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enum models closed sets of request parameter choices. Each variant
// of an enumeration maps to exactly one command-line name and exactly one
// upstream wire literal, so an invalid literal can never reach a request.
package enum

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Choice binds one variant to its CLI name and its upstream literal.
type Choice[T ~int] struct {
	Value   T
	Name    string
	Literal string
}

// Set is the mapping table for one enumeration. Variants must be declared
// with iota starting at zero; Choice i describes variant i.
type Set[T ~int] struct {
	kind    string
	choices []Choice[T]
}

// New builds a Set. It panics when the table is not total: every variant
// from 0 to len(choices)-1 must appear in order with a name and a literal,
// and no two variants may share a name or a literal.
func New[T ~int](kind string, choices ...Choice[T]) *Set[T] {
	names := make(map[string]bool, len(choices))
	literals := make(map[string]bool, len(choices))
	for i, c := range choices {
		if int(c.Value) != i {
			panic(fmt.Sprintf("enum %s: choice %d declares value %d", kind, i, c.Value))
		}
		if c.Name == "" || c.Literal == "" {
			panic(fmt.Sprintf("enum %s: choice %d has an empty name or literal", kind, i))
		}
		if names[c.Name] || literals[c.Literal] {
			panic(fmt.Sprintf("enum %s: duplicate entry for %q", kind, c.Name))
		}
		names[c.Name] = true
		literals[c.Literal] = true
	}
	return &Set[T]{kind: kind, choices: choices}
}

// Kind returns the enumeration name used in flag help and errors.
func (s *Set[T]) Kind() string { return s.kind }

// Literal returns the upstream wire literal for v.
func (s *Set[T]) Literal(v T) string {
	if c, ok := s.lookup(v); ok {
		return c.Literal
	}
	return fmt.Sprintf("%s(%d)", s.kind, int(v))
}

// Name returns the command-line name for v.
func (s *Set[T]) Name(v T) string {
	if c, ok := s.lookup(v); ok {
		return c.Name
	}
	return fmt.Sprintf("%s(%d)", s.kind, int(v))
}

// Valid reports whether v is a declared variant.
func (s *Set[T]) Valid(v T) bool {
	_, ok := s.lookup(v)
	return ok
}

// Parse resolves a command-line name or an upstream literal to its variant.
// Names match case-insensitively; literals match exactly.
func (s *Set[T]) Parse(text string) (T, error) {
	for _, c := range s.choices {
		if strings.EqualFold(c.Name, text) {
			return c.Value, nil
		}
	}
	if v, ok := s.FromLiteral(text); ok {
		return v, nil
	}
	return 0, fmt.Errorf("invalid %s %q: must be one of %s", s.kind, text, strings.Join(s.Names(), ", "))
}

// FromLiteral resolves an upstream literal to its variant.
func (s *Set[T]) FromLiteral(literal string) (T, bool) {
	for _, c := range s.choices {
		if c.Literal == literal {
			return c.Value, true
		}
	}
	return 0, false
}

// Values lists every variant in declaration order.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.choices))
	for i, c := range s.choices {
		out[i] = c.Value
	}
	return out
}

// Names lists every command-line name in declaration order.
func (s *Set[T]) Names() []string {
	out := make([]string, len(s.choices))
	for i, c := range s.choices {
		out[i] = c.Name
	}
	return out
}

// Var returns a pflag.Value that stores the parsed variant in *target. The
// target stays nil until the flag is given, so absent flags remain absent.
func (s *Set[T]) Var(target **T) pflag.Value {
	return &flagValue[T]{set: s, target: target}
}

func (s *Set[T]) lookup(v T) (Choice[T], bool) {
	i := int(v)
	if i < 0 || i >= len(s.choices) {
		return Choice[T]{}, false
	}
	return s.choices[i], true
}

type flagValue[T ~int] struct {
	set    *Set[T]
	target **T
}

func (f *flagValue[T]) String() string {
	if f.target == nil || *f.target == nil {
		return ""
	}
	return f.set.Name(**f.target)
}

func (f *flagValue[T]) Set(text string) error {
	v, err := f.set.Parse(text)
	if err != nil {
		return err
	}
	*f.target = &v
	return nil
}

func (f *flagValue[T]) Type() string { return f.set.kind }
