// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimension

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/aclements/go-chartdata/internal/valfmt"
)

var intType = reflect.TypeOf(int(0))

// Index is a discrete dimension over point indexes 0, 1, 2, .... It is
// used when a series has no X values and points are placed by
// position. Index i maps to FirstMemberCoordinate() + i.
type Index struct {
	base

	n int
}

// NewIndex returns an Index dimension with n members.
func NewIndex(n int) *Index {
	return &Index{n: n}
}

func (d *Index) String() string {
	return fmt.Sprintf("index [0,%d)", d.n)
}

// Len returns the number of indexes in d.
func (d *Index) Len() int {
	return d.n
}

func (d *Index) value(x interface{}) (int, error) {
	if i, ok := x.(int); ok {
		return i, nil
	}
	rv := reflect.ValueOf(x)
	if x == nil || !isInteger(rv.Kind()) {
		return 0, mismatch(x, intType)
	}
	return int(rv.Convert(intType).Int()), nil
}

func (d *Index) ItemType() reflect.Type {
	return intType
}

func (d *Index) Coordinate(x interface{}) (float64, error) {
	i, err := d.value(x)
	if err != nil {
		return 0, err
	}
	return d.first + float64(i), nil
}

func (d *Index) Width(x interface{}) (float64, error) {
	_, err := d.value(x)
	return 0, err
}

// ElementAt returns the index nearest to c. Coordinates before the
// first member map to index 0.
func (d *Index) ElementAt(c float64) interface{} {
	i := int(math.Round(c - d.first))
	if i < 0 {
		i = 0
	}
	return i
}

func (d *Index) ValueOf(s string) (interface{}, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("index %q: %w", s, valfmt.ErrSyntax)
	}
	return i, nil
}

func (d *Index) Merge(other Dimension) (Dimension, error) {
	o, ok := other.(*Index)
	if !ok {
		return nil, mergeMismatch(d, other)
	}
	nd := *d
	if o.n > nd.n {
		nd.n = o.n
	}
	return &nd, nil
}

func (d *Index) Compare(a, b interface{}) (int, error) {
	x, err := d.value(a)
	if err != nil {
		return 0, err
	}
	y, err := d.value(b)
	if err != nil {
		return 0, err
	}
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	}
	return 0, nil
}

func (d *Index) ExtremesAndPointSize(src Source) (min, max interface{}, pointSize float64, err error) {
	return scanExtremes(d, src)
}

// PointSize is 1: each index occupies one slot.
func (d *Index) PointSize() float64 {
	return 1
}

func (d *Index) ReferenceValue() (interface{}, bool) {
	return d.reference(0)
}

func (d *Index) SetReferenceValue(v interface{}) {
	d.setReference(d, v)
}
