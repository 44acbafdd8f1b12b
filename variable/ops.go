// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variable

import (
	"errors"
	"fmt"
)

var (
	// ErrLength is returned when the operands of an operator do
	// not have compatible lengths.
	ErrLength = errors.New("operand lengths differ")

	// ErrUnsupportedOp is returned when a relational operator is
	// applied to a kind that does not support it.
	ErrUnsupportedOp = errors.New("operator not supported for kind")
)

// An Op is a relational operator.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Ge
	Gt
)

var opNames = []string{"==", "!=", "<", "<=", ">=", ">"}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// shape computes the result shape of an operator over vs. An operand
// broadcasts if bcast reports true for it; the other operands must
// all have the same length, which is the result length. If every
// operand broadcasts, the result length is the largest operand length.
// constant reports whether every operand is constant.
func shape(op string, bcast func(Variable) bool, vs ...Variable) (n int, constant bool, err error) {
	constant = true
	n = -1
	for _, v := range vs {
		constant = constant && v.IsConstant()
		if !bcast(v) && v.Len() > n {
			n = v.Len()
		}
	}
	if n < 0 {
		for _, v := range vs {
			if v.Len() > n {
				n = v.Len()
			}
		}
		return n, constant, nil
	}
	for _, v := range vs {
		if !bcast(v) && v.Len() != n {
			return 0, false, fmt.Errorf("%s: %q has length %d, want %d: %w", op, v.Name(), v.Len(), n, ErrLength)
		}
	}
	return n, constant, nil
}

func isConstant(v Variable) bool {
	return v.IsConstant()
}

// scalarLike reports whether v broadcasts in Concatenate.
func scalarLike(v Variable) bool {
	return v.IsConstant() || v.Len() == 1
}

// result allocates the result of an operator with shape (n, constant).
func result[T Value](name string, n int, constant bool) *Var[T] {
	if constant {
		n = 1
	}
	return &Var[T]{
		name:     name,
		constant: constant,
		values:   make([]T, n),
		missing:  make([]bool, n),
	}
}

// Alternate returns a Var whose i'th element is v's if sel[i] is true,
// and other's otherwise. The missing flag comes from the chosen side.
// The selector's own missing flags are not consulted.
func (v *Var[T]) Alternate(sel *Bool, other *Var[T]) (*Var[T], error) {
	n, constant, err := shape("Alternate", isConstant, v, sel, other)
	if err != nil {
		return nil, err
	}
	r := result[T](v.name, n, constant)
	for i := range r.values {
		src := other
		if sel.ValueAt(i) {
			src = v
		}
		r.values[i], r.missing[i] = src.ValueAt(i), src.MissingAt(i)
	}
	return r, nil
}

// Filter returns the elements of v for which sel is true, in order.
// The selector's own missing flags are not consulted, so a missing
// element whose stored value is true is kept. This differs from Count.
//
// If both v and sel are constant, the result is a copy of v if sel is
// true and an empty non-constant Var otherwise.
func (v *Var[T]) Filter(sel *Bool) (*Var[T], error) {
	n, constant, err := shape("Filter", isConstant, v, sel)
	if err != nil {
		return nil, err
	}
	if constant {
		if !sel.values[0] {
			return Empty[T](v.name), nil
		}
		r := result[T](v.name, 1, true)
		r.values[0], r.missing[0] = v.values[0], v.missing[0]
		return r, nil
	}

	keep := 0
	for i := 0; i < n; i++ {
		if sel.ValueAt(i) {
			keep++
		}
	}
	r := result[T](v.name, keep, false)
	j := 0
	for i := 0; i < n; i++ {
		if sel.ValueAt(i) {
			r.values[j], r.missing[j] = v.ValueAt(i), v.MissingAt(i)
			j++
		}
	}
	return r, nil
}

// Relation compares v and other element-wise. An element of the
// result is missing if either operand's element is missing. Kinds
// without a total order (colors) support only Eq and Ne.
func (v *Var[T]) Relation(op Op, other *Var[T]) (*Bool, error) {
	tr := traitsOf[T]()
	var f func(a, b T) bool
	switch op {
	case Eq:
		f = tr.equal
	case Ne:
		f = func(a, b T) bool { return !tr.equal(a, b) }
	case Lt:
		f = tr.less
	case Le:
		if tr.less != nil {
			f = func(a, b T) bool { return tr.less(a, b) || tr.equal(a, b) }
		}
	case Ge:
		if tr.less != nil {
			f = func(a, b T) bool { return tr.less(b, a) || tr.equal(a, b) }
		}
	case Gt:
		if tr.less != nil {
			f = func(a, b T) bool { return tr.less(b, a) }
		}
	}
	if f == nil {
		return nil, fmt.Errorf("%v on %v: %w", op, tr.kind, ErrUnsupportedOp)
	}

	n, constant, err := shape("Relation", isConstant, v, other)
	if err != nil {
		return nil, err
	}
	r := result[bool](fmt.Sprintf("%s %v %s", v.name, op, other.name), n, constant)
	for i := range r.values {
		r.values[i] = f(v.ValueAt(i), other.ValueAt(i))
		r.missing[i] = v.MissingAt(i) || other.MissingAt(i)
	}
	return r, nil
}

// Format renders each element of v as text using the format spec in
// the corresponding element of spec. An empty spec selects the
// canonical form: shortest decimal for numbers, "true"/"false",
// "#AARRGGBB" for colors, and RFC 3339 for times. Otherwise numbers,
// strings, and bools accept a fmt format with or without the leading
// '%', bools also accept "yes|no" word pairs, colors accept "rgb", and
// times accept a fmt format or a time layout.
//
// Missing flags pass through unchanged.
func (v *Var[T]) Format(spec *String) (*String, error) {
	n, constant, err := shape("Format", isConstant, v, spec)
	if err != nil {
		return nil, err
	}
	format := traitsOf[T]().format
	r := result[string](v.name, n, constant)
	for i := range r.values {
		r.values[i] = format(v.ValueAt(i), spec.ValueAt(i))
		r.missing[i] = v.MissingAt(i)
	}
	return r, nil
}

// Concatenate joins a and b element-wise. An operand that is constant
// or has a single element broadcasts; otherwise both operands must
// have the same length. An element of the result is missing if either
// operand's element is missing.
func Concatenate(a, b *String) (*String, error) {
	n, constant, err := shape("Concatenate", scalarLike, a, b)
	if err != nil {
		return nil, err
	}
	at := func(v *String, i int) int {
		if v.Len() == 1 {
			return 0
		}
		return i
	}
	r := result[string](a.name, n, constant)
	for i := range r.values {
		ai, bi := at(a, i), at(b, i)
		r.values[i] = a.ValueAt(ai) + b.ValueAt(bi)
		r.missing[i] = a.MissingAt(ai) || b.MissingAt(bi)
	}
	return r, nil
}

// Not returns the element-wise negation of b.
func Not(b *Bool) *Bool {
	r := result[bool](b.name, len(b.values), b.constant)
	for i, x := range b.values {
		r.values[i], r.missing[i] = !x, b.missing[i]
	}
	return r
}

// And returns the element-wise conjunction of a and b.
func And(a, b *Bool) (*Bool, error) {
	return logic("And", a, b, func(x, y bool) bool { return x && y })
}

// Or returns the element-wise disjunction of a and b.
func Or(a, b *Bool) (*Bool, error) {
	return logic("Or", a, b, func(x, y bool) bool { return x || y })
}

func logic(op string, a, b *Bool, f func(x, y bool) bool) (*Bool, error) {
	n, constant, err := shape(op, isConstant, a, b)
	if err != nil {
		return nil, err
	}
	r := result[bool](a.name, n, constant)
	for i := range r.values {
		r.values[i] = f(a.ValueAt(i), b.ValueAt(i))
		r.missing[i] = a.MissingAt(i) || b.MissingAt(i)
	}
	return r, nil
}

// Count returns the number of physical elements of sel that are true
// and not missing. Since Filter ignores missing flags, Count(sel) is
// the length of a Filter result only if sel has no missing true
// elements.
func Count(sel *Bool) int {
	n := 0
	for i, x := range sel.values {
		if x && !sel.missing[i] {
			n++
		}
	}
	return n
}
