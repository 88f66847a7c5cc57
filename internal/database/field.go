package database

import (
	"fmt"
	"strings"
)

// Field is a tri-state optional column value for partial updates. A zero
// Field is absent and is never written; Null writes SQL NULL; Set writes the
// given value. Pointer fields alone cannot express the difference between
// "not supplied" and "supplied as null", and losing that difference would
// silently turn partial updates into full overwrites.
type Field[T any] struct {
	value   T
	set     bool
	present bool
}

// Set returns a Field carrying the given value.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, set: true, present: true}
}

// Null returns a Field that writes SQL NULL.
func Null[T any]() Field[T] {
	return Field[T]{set: true}
}

// IsSet reports whether the field was supplied at all (value or null).
func (f Field[T]) IsSet() bool { return f.set }

// Value returns the carried value and whether it is non-null.
func (f Field[T]) Value() (T, bool) { return f.value, f.present }

// Arg returns the value to bind as a statement argument: the carried value,
// or nil for a null field.
func (f Field[T]) Arg() any {
	if !f.present {
		return nil
	}
	return f.value
}

// UpdateBuilder assembles the SET clause of a partial UPDATE from supplied
// fields only. Positional placeholders continue from the initial index so
// where-clause arguments can follow.
type UpdateBuilder struct {
	clauses []string
	args    []any
	argIdx  int
}

// NewUpdateBuilder returns a builder whose first placeholder is $1.
func NewUpdateBuilder() *UpdateBuilder {
	return &UpdateBuilder{argIdx: 1}
}

// supplied is satisfied by Field of any type parameter.
type supplied interface {
	isSupplied() (any, bool)
}

// Add appends "column = $n" for a supplied field and is a no-op for an
// absent one.
func (b *UpdateBuilder) Add(column string, f supplied) *UpdateBuilder {
	arg, supplied := f.isSupplied()
	if !supplied {
		return b
	}
	b.clauses = append(b.clauses, fmt.Sprintf("%s = $%d", column, b.argIdx))
	b.args = append(b.args, arg)
	b.argIdx++
	return b
}

func (f Field[T]) isSupplied() (any, bool) {
	if !f.set {
		return nil, false
	}
	return f.Arg(), true
}

// AddRaw appends a clause that does not bind an argument, e.g.
// "updated_at = now()".
func (b *UpdateBuilder) AddRaw(clause string) *UpdateBuilder {
	b.clauses = append(b.clauses, clause)
	return b
}

// Empty reports whether no field was supplied.
func (b *UpdateBuilder) Empty() bool { return len(b.clauses) == 0 }

// SetClause joins the accumulated clauses for interpolation into an UPDATE.
func (b *UpdateBuilder) SetClause() string { return strings.Join(b.clauses, ", ") }

// NextIdx returns the next free placeholder index for where-clause arguments.
func (b *UpdateBuilder) NextIdx() int { return b.argIdx }

// Args returns the accumulated arguments in placeholder order. Extra
// where-clause arguments are appended by the caller.
func (b *UpdateBuilder) Args(extra ...any) []any {
	return append(b.args, extra...)
}
