// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dimension maps domain values onto a one-dimensional logical
// coordinate line.
//
// A Dimension describes an ordered or categorical domain (numbers,
// instants or calendar buckets, point indexes, or a set of categories)
// and the rule for projecting any member of that domain to a
// coordinate. Axis and layout code places points, bars, and categories
// using these coordinates, which are independent of any pixel space.
//
// For every Dimension, Coordinate is consistent with Compare: for any
// a and b in the domain, Compare(a, b) < 0 if and only if
// Coordinate(a) < Coordinate(b). NaN is outside every domain: a
// Numeric dimension maps it to a NaN coordinate, which compares false
// with everything, while Compare sorts NaN before all numbers so that
// it gives a total order. Extremes skip NaN coordinates.
//
// Dimensions hold no locks. Methods that only read may be called
// concurrently; the setters and Include methods require exclusive
// access.
package dimension

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic"
)

var (
	// ErrNotMember is returned when a value has the dimension's
	// item type but is not one of its members.
	ErrNotMember = errors.New("not a member of the dimension")

	// ErrNil is returned when a nil value is mapped.
	ErrNil = errors.New("nil domain value")
)

// A Source is a column of domain values that a Dimension can scan.
// Every variable.Variable is a Source.
type Source interface {
	// Len returns the number of physical elements in the column.
	Len() int

	// MissingAt reports whether element i is missing.
	MissingAt(i int) bool

	// ItemAt returns element i boxed in an interface.
	ItemAt(i int) interface{}
}

// A Dimension maps the values of a domain to logical coordinates and
// back.
type Dimension interface {
	// ItemType returns the Go type of the domain's values.
	ItemType() reflect.Type

	// Coordinate returns the logical coordinate of x. If x's type
	// does not belong to the dimension, it returns a
	// *generic.TypeError naming x's type and the item type.
	Coordinate(x interface{}) (float64, error)

	// Width returns the extent of x in logical coordinates. It is
	// 0 for point-like domains and positive for domains whose
	// members occupy an interval.
	Width(x interface{}) (float64, error)

	// ElementAt is the inverse of Coordinate. For discrete
	// dimensions it returns the nearest or containing member, or
	// nil if the dimension has no members.
	ElementAt(c float64) interface{}

	// ValueOf parses the textual form of a domain value.
	ValueOf(s string) (interface{}, error)

	// Merge returns a new Dimension whose domain is the union of
	// the receiver's and other's. Neither input is modified.
	Merge(other Dimension) (Dimension, error)

	// Compare returns -1, 0, or 1 as a is ordered before, the same
	// as, or after b.
	Compare(a, b interface{}) (int, error)

	// ExtremesAndPointSize scans src once and returns the value
	// with the smallest coordinate and the value with the largest
	// coordinate plus width. Missing and nil elements are
	// skipped. min and max are nil if src has no usable elements.
	ExtremesAndPointSize(src Source) (min, max interface{}, pointSize float64, err error)

	// PointSize returns the logical size of a single member. It is
	// 0 for continuous dimensions.
	PointSize() float64

	// FirstMemberCoordinate returns the coordinate offset of the
	// first member of a discrete dimension.
	FirstMemberCoordinate() float64
	SetFirstMemberCoordinate(c float64)

	// ReferenceValue returns the baseline used for stacked or
	// relative plotting. explicit reports whether it was set by
	// SetReferenceValue rather than computed.
	ReferenceValue() (v interface{}, explicit bool)

	// SetReferenceValue sets the reference value. A nil v restores
	// the computed default. A v of another type is converted to the
	// item type when possible; if the conversion fails the call is
	// silently ignored.
	SetReferenceValue(v interface{})
}

// base holds the state common to all dimensions.
type base struct {
	first  float64
	ref    interface{}
	refSet bool
}

func (b *base) FirstMemberCoordinate() float64 {
	return b.first
}

func (b *base) SetFirstMemberCoordinate(c float64) {
	b.first = c
}

func (b *base) reference(def interface{}) (interface{}, bool) {
	if b.refSet {
		return b.ref, true
	}
	return def, false
}

// setReference implements SetReferenceValue for d.
//
// Failed conversions are dropped without an error. Callers rely on
// assignments of unrelated values being no-ops.
func (b *base) setReference(d Dimension, v interface{}) {
	if v == nil {
		b.ref, b.refSet = nil, false
		return
	}
	x, ok := convert(d, v)
	if !ok {
		return
	}
	b.ref, b.refSet = x, true
}

// convert converts v to d's item type. Strings are parsed with
// d.ValueOf and numbers are converted between numeric kinds.
func convert(d Dimension, v interface{}) (interface{}, bool) {
	it := d.ItemType()
	rv := reflect.ValueOf(v)
	if rv.Type() == it {
		return v, true
	}
	if s, ok := v.(string); ok {
		x, err := d.ValueOf(s)
		if err != nil {
			return nil, false
		}
		return x, true
	}
	if isNumber(rv.Kind()) && isNumber(it.Kind()) {
		if isInteger(it.Kind()) {
			if f := toFloat(rv); f != math.Trunc(f) {
				return nil, false
			}
		}
		return rv.Convert(it).Interface(), true
	}
	return nil, false
}

// scanExtremes implements ExtremesAndPointSize for d.
func scanExtremes(d Dimension, src Source) (min, max interface{}, pointSize float64, err error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, n := 0, src.Len(); i < n; i++ {
		if src.MissingAt(i) {
			continue
		}
		x := src.ItemAt(i)
		if x == nil {
			continue
		}
		c, err := d.Coordinate(x)
		if err != nil {
			return nil, nil, 0, err
		}
		if math.IsNaN(c) || math.IsInf(c, 0) {
			continue
		}
		w, err := d.Width(x)
		if err != nil {
			return nil, nil, 0, err
		}
		if min == nil || c < lo {
			lo, min = c, x
		}
		if max == nil || c+w > hi {
			hi, max = c+w, x
		}
	}
	return min, max, d.PointSize(), nil
}

func mismatch(x interface{}, it reflect.Type) error {
	if x == nil {
		return fmt.Errorf("%w for %v dimension", ErrNil, it)
	}
	return &generic.TypeError{
		Type1: reflect.TypeOf(x),
		Type2: it,
		Extra: "are not compatible: value does not belong to the dimension",
	}
}

func mergeMismatch(d, other Dimension) error {
	return &generic.TypeError{
		Type1: reflect.TypeOf(d),
		Type2: reflect.TypeOf(other),
		Extra: "cannot be merged",
	}
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumber(k reflect.Kind) bool {
	return isInteger(k) || k == reflect.Float32 || k == reflect.Float64
}

func toFloat(v reflect.Value) float64 {
	return v.Convert(float64Type).Float()
}

var float64Type = reflect.TypeOf(float64(0))

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}
	// NaN sorts before everything else, like sort.Float64s.
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return -1
	}
	return 1
}
