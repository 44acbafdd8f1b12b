// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package variable implements typed columns of chart data.
//
// A variable is either a vector of values or a constant. Each element
// of a vector carries its own "missing" flag. A constant holds a single
// value (possibly missing) that is broadcast to whatever length the
// context requires: ValueAt and MissingAt return that value for any
// index.
//
// Variables are immutable as far as operators are concerned. Every
// operator (Alternate, Filter, Relation, Format, Concatenate, ...)
// returns a new Var with freshly allocated buffers and never modifies
// its operands. Only Add, AddMany, AddMissing, and Clear mutate a
// Var, and callers must not run them concurrently with any other
// method on the same Var. Read-only methods may run concurrently.
//
// Operators follow a common length rule. Constant operands broadcast.
// All non-constant operands must have the same length M, which is the
// length of the result. If every operand is constant, the result is
// constant.
package variable

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/aclements/go-chartdata/dimension"
)

// A Kind identifies the type of a variable's values.
type Kind int

const (
	KindNumeric Kind = iota
	KindString
	KindBool
	KindColor
	KindTime
)

var kindNames = []string{"numeric", "string", "bool", "color", "time"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind whose String is s, ignoring case.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown variable kind %q", s)
}

// Value is the set of Go types a Var can hold.
type Value interface {
	float64 | string | bool | color.NRGBA | time.Time
}

// Variable is the type-erased read interface of a Var. It is
// implemented by every *Var[T] and satisfies dimension.Source.
type Variable interface {
	Name() string
	Kind() Kind

	// Len returns the physical number of elements: 1 for a
	// constant.
	Len() int
	IsConstant() bool
	MissingAt(i int) bool

	// ItemAt returns element i as an interface value.
	ItemAt(i int) interface{}

	// CreateDimension returns a dimension describing the
	// variable's non-missing values.
	CreateDimension() dimension.Dimension
}

// Var is a column of values of type T.
type Var[T Value] struct {
	name     string
	constant bool
	values   []T
	missing  []bool
}

type (
	Numeric = Var[float64]
	String  = Var[string]
	Bool    = Var[bool]
	Color   = Var[color.NRGBA]
	Time    = Var[time.Time]
)

// New returns a non-constant Var holding a copy of values. If missing
// is nil, no element is missing; otherwise it must have the same
// length as values.
func New[T Value](name string, values []T, missing []bool) *Var[T] {
	if missing != nil && len(missing) != len(values) {
		panic(fmt.Sprintf("variable %q: %d missing flags for %d values", name, len(missing), len(values)))
	}
	v := &Var[T]{
		name:    name,
		values:  append([]T(nil), values...),
		missing: make([]bool, len(values)),
	}
	copy(v.missing, missing)
	return v
}

// Empty returns a non-constant Var with no elements.
func Empty[T Value](name string) *Var[T] {
	return &Var[T]{name: name}
}

// Const returns a constant Var whose value is x.
func Const[T Value](name string, x T) *Var[T] {
	return &Var[T]{name: name, constant: true, values: []T{x}, missing: []bool{false}}
}

// ConstMissing returns a constant Var whose value is missing.
func ConstMissing[T Value](name string) *Var[T] {
	var zero T
	return &Var[T]{name: name, constant: true, values: []T{zero}, missing: []bool{true}}
}

func (v *Var[T]) String() string {
	if v.constant {
		if v.missing[0] {
			return fmt.Sprintf("%s = const <missing>", v.name)
		}
		return fmt.Sprintf("%s = const %v", v.name, v.values[0])
	}
	return fmt.Sprintf("%s [%d]%s", v.name, len(v.values), v.Kind())
}

func (v *Var[T]) Name() string {
	return v.name
}

func (v *Var[T]) Kind() Kind {
	return kindOf[T]()
}

func (v *Var[T]) Len() int {
	return len(v.values)
}

func (v *Var[T]) IsConstant() bool {
	return v.constant
}

// index maps a logical index to a physical one. It panics if v is not
// constant and i is out of range.
func (v *Var[T]) index(i int) int {
	if v.constant {
		return 0
	}
	if i < 0 || i >= len(v.values) {
		panic(fmt.Sprintf("variable %q: index %d out of range [0,%d)", v.name, i, len(v.values)))
	}
	return i
}

// ValueAt returns element i. A constant returns its value for every i.
func (v *Var[T]) ValueAt(i int) T {
	return v.values[v.index(i)]
}

// MissingAt reports whether element i is missing.
func (v *Var[T]) MissingAt(i int) bool {
	return v.missing[v.index(i)]
}

func (v *Var[T]) ItemAt(i int) interface{} {
	return v.ValueAt(i)
}

// Values returns a copy of v's physical values.
func (v *Var[T]) Values() []T {
	return append([]T(nil), v.values...)
}

// Missing returns a copy of v's physical missing flags.
func (v *Var[T]) Missing() []bool {
	return append([]bool(nil), v.missing...)
}

// present returns v's non-missing physical values.
func (v *Var[T]) present() []T {
	out := make([]T, 0, len(v.values))
	for i, x := range v.values {
		if !v.missing[i] {
			out = append(out, x)
		}
	}
	return out
}

func (v *Var[T]) mustMutate(op string) {
	if v.constant {
		panic(fmt.Sprintf("variable %q: %s on constant variable", v.name, op))
	}
}

// Add appends x to v. It panics if v is constant.
func (v *Var[T]) Add(x T) {
	v.mustMutate("Add")
	v.values = append(v.values, x)
	v.missing = append(v.missing, false)
}

// AddMissing appends a missing element to v. It panics if v is
// constant.
func (v *Var[T]) AddMissing() {
	v.mustMutate("AddMissing")
	var zero T
	v.values = append(v.values, zero)
	v.missing = append(v.missing, true)
}

// AddMany appends xs to v. If missing is nil, the new elements are not
// missing; otherwise it must have the same length as xs. It panics if
// v is constant.
func (v *Var[T]) AddMany(xs []T, missing []bool) {
	v.mustMutate("AddMany")
	if missing != nil && len(missing) != len(xs) {
		panic(fmt.Sprintf("variable %q: %d missing flags for %d values", v.name, len(missing), len(xs)))
	}
	v.values = append(v.values, xs...)
	if missing == nil {
		v.missing = append(v.missing, make([]bool, len(xs))...)
	} else {
		v.missing = append(v.missing, missing...)
	}
}

// Clear releases v's elements, leaving it empty. It panics if v is
// constant.
func (v *Var[T]) Clear() {
	v.mustMutate("Clear")
	v.values, v.missing = nil, nil
}
