// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimension

import (
	"fmt"
	"image/color"
	"math"
	"reflect"

	"github.com/aclements/go-chartdata/internal/valfmt"
	"github.com/aclements/go-gg/generic"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-moremath/vec"
)

// Categorical is a discrete dimension over an ordered set of members.
// The i'th member maps to FirstMemberCoordinate() + i, so members are
// ordered by declaration, not by value.
type Categorical struct {
	base

	itemType reflect.Type
	members  []interface{}
	index    map[interface{}]int
}

// NewCategorical returns a Categorical dimension whose members are the
// distinct elements of members, which must be a slice of a comparable
// type. The first occurrence of each value determines its position.
// Values that are not equal to themselves, such as a float64 NaN,
// never match an earlier occurrence and each become a member.
func NewCategorical(members slice.T) *Categorical {
	mv := reflect.ValueOf(members)
	if mv.Kind() != reflect.Slice {
		panic(&generic.TypeError{Type1: mv.Type(), Extra: "is not a slice"})
	}
	it := mv.Type().Elem()
	if !it.Comparable() {
		panic(&generic.TypeError{Type1: it, Extra: "is not comparable"})
	}

	uniq := reflect.ValueOf(slice.Nub(members))
	d := &Categorical{
		itemType: it,
		members:  make([]interface{}, uniq.Len()),
		index:    make(map[interface{}]int, uniq.Len()),
	}
	for i, n := 0, uniq.Len(); i < n; i++ {
		x := uniq.Index(i).Interface()
		d.members[i] = x
		d.index[x] = i
	}
	return d
}

func (d *Categorical) String() string {
	return fmt.Sprintf("categorical %v (%d members)", d.itemType, len(d.members))
}

// Len returns the number of members of d.
func (d *Categorical) Len() int {
	return len(d.members)
}

// Members returns d's members in order.
func (d *Categorical) Members() []interface{} {
	return append([]interface{}(nil), d.members...)
}

// Contains reports whether x is a member of d.
func (d *Categorical) Contains(x interface{}) bool {
	if x == nil || reflect.TypeOf(x) != d.itemType {
		return false
	}
	_, ok := d.index[x]
	return ok
}

// Ticks returns the coordinate of each member of d.
func (d *Categorical) Ticks() []float64 {
	switch len(d.members) {
	case 0:
		return nil
	case 1:
		return []float64{d.first}
	}
	return vec.Linspace(d.first, d.first+float64(len(d.members)-1), len(d.members))
}

func (d *Categorical) ItemType() reflect.Type {
	return d.itemType
}

func (d *Categorical) position(x interface{}) (int, error) {
	if x == nil || reflect.TypeOf(x) != d.itemType {
		return 0, mismatch(x, d.itemType)
	}
	i, ok := d.index[x]
	if !ok {
		return 0, fmt.Errorf("%v: %w", x, ErrNotMember)
	}
	return i, nil
}

func (d *Categorical) Coordinate(x interface{}) (float64, error) {
	i, err := d.position(x)
	if err != nil {
		return 0, err
	}
	return d.first + float64(i), nil
}

func (d *Categorical) Width(x interface{}) (float64, error) {
	_, err := d.position(x)
	return 0, err
}

// ElementAt returns the member nearest to c, or nil if d has no
// members.
func (d *Categorical) ElementAt(c float64) interface{} {
	if len(d.members) == 0 {
		return nil
	}
	i := int(math.Round(c - d.first))
	if i < 0 {
		i = 0
	} else if i >= len(d.members) {
		i = len(d.members) - 1
	}
	return d.members[i]
}

var colorType = reflect.TypeOf(color.NRGBA{})

// ValueOf parses s as a value of d's item type. The result need not be
// a member of d.
func (d *Categorical) ValueOf(s string) (interface{}, error) {
	switch d.itemType.Kind() {
	case reflect.String:
		return reflect.ValueOf(s).Convert(d.itemType).Interface(), nil
	case reflect.Bool:
		b, err := valfmt.ParseBool(s)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(b).Convert(d.itemType).Interface(), nil
	}
	if d.itemType == colorType {
		c, err := valfmt.ParseColor(s)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("%v has no text form: %w", d.itemType, valfmt.ErrSyntax)
}

// Merge returns a Categorical dimension with d's members followed by
// the members of other that are not in d, in other's order.
func (d *Categorical) Merge(other Dimension) (Dimension, error) {
	o, ok := other.(*Categorical)
	if !ok || o.itemType != d.itemType {
		return nil, mergeMismatch(d, other)
	}
	nd := &Categorical{
		base:     d.base,
		itemType: d.itemType,
		members:  make([]interface{}, len(d.members), len(d.members)+len(o.members)),
		index:    make(map[interface{}]int, len(d.members)+len(o.members)),
	}
	copy(nd.members, d.members)
	for x, i := range d.index {
		nd.index[x] = i
	}
	for _, x := range o.members {
		if _, ok := nd.index[x]; !ok {
			nd.index[x] = len(nd.members)
			nd.members = append(nd.members, x)
		}
	}
	return nd, nil
}

// Compare orders members by their position in d.
func (d *Categorical) Compare(a, b interface{}) (int, error) {
	i, err := d.position(a)
	if err != nil {
		return 0, err
	}
	j, err := d.position(b)
	if err != nil {
		return 0, err
	}
	switch {
	case i < j:
		return -1, nil
	case i > j:
		return 1, nil
	}
	return 0, nil
}

func (d *Categorical) ExtremesAndPointSize(src Source) (min, max interface{}, pointSize float64, err error) {
	return scanExtremes(d, src)
}

// PointSize is 1: each member occupies one slot.
func (d *Categorical) PointSize() float64 {
	return 1
}

// ReferenceValue defaults to the first member, or nil if d is empty.
func (d *Categorical) ReferenceValue() (interface{}, bool) {
	var def interface{}
	if len(d.members) > 0 {
		def = d.members[0]
	}
	return d.reference(def)
}

func (d *Categorical) SetReferenceValue(v interface{}) {
	d.setReference(d, v)
}
