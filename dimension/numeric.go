// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimension

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-chartdata/internal/valfmt"
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// Numeric is a continuous dimension over real numbers. The coordinate
// of a number is the number itself.
//
// Numeric accepts values of any Go integer or floating-point kind; its
// item type is float64.
type Numeric struct {
	base

	// min and max are the bounds of the trained range, or NaN if
	// nothing has been included.
	min, max float64
}

// NewNumeric returns a Numeric dimension whose range covers xs. NaN
// and infinite values are ignored.
func NewNumeric(xs ...float64) *Numeric {
	d := &Numeric{min: math.NaN(), max: math.NaN()}
	finite := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	if len(finite) > 0 {
		d.min, d.max = stats.Bounds(finite)
	}
	return d
}

func (d *Numeric) String() string {
	return fmt.Sprintf("numeric [%g,%g]", d.min, d.max)
}

// Include widens d's range to include x. It ignores NaN and infinite
// values.
func (d *Numeric) Include(x float64) *Numeric {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return d
	}
	if math.IsNaN(d.min) {
		d.min, d.max = x, x
	} else {
		d.min = math.Min(d.min, x)
		d.max = math.Max(d.max, x)
	}
	return d
}

// Range returns the bounds of d's range. Both are NaN if the range is
// empty.
func (d *Numeric) Range() (min, max float64) {
	return d.min, d.max
}

// Ticks returns up to max major ticks and the corresponding minor ticks
// over d's range. An empty range has no ticks. A range consisting of a
// single value is widened by 1 in each direction.
func (d *Numeric) Ticks(max int) (major, minor []float64) {
	if math.IsNaN(d.min) {
		return nil, nil
	}
	ls := scale.Linear{Min: d.min, Max: d.max}
	if ls.Min == ls.Max {
		ls.Min, ls.Max = ls.Min-1, ls.Max+1
	}
	return ls.Ticks(scale.TickOptions{Max: max})
}

func (d *Numeric) ItemType() reflect.Type {
	return float64Type
}

func (d *Numeric) value(x interface{}) (float64, error) {
	switch x := x.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	}
	rv := reflect.ValueOf(x)
	if x == nil || !isNumber(rv.Kind()) {
		return 0, mismatch(x, float64Type)
	}
	return toFloat(rv), nil
}

func (d *Numeric) Coordinate(x interface{}) (float64, error) {
	return d.value(x)
}

func (d *Numeric) Width(x interface{}) (float64, error) {
	if _, err := d.value(x); err != nil {
		return 0, err
	}
	return 0, nil
}

func (d *Numeric) ElementAt(c float64) interface{} {
	return c
}

func (d *Numeric) ValueOf(s string) (interface{}, error) {
	return valfmt.ParseFloat(s)
}

func (d *Numeric) Merge(other Dimension) (Dimension, error) {
	o, ok := other.(*Numeric)
	if !ok {
		return nil, mergeMismatch(d, other)
	}
	nd := *d
	nd.Include(o.min)
	nd.Include(o.max)
	return &nd, nil
}

func (d *Numeric) Compare(a, b interface{}) (int, error) {
	x, err := d.value(a)
	if err != nil {
		return 0, err
	}
	y, err := d.value(b)
	if err != nil {
		return 0, err
	}
	return cmpFloat(x, y), nil
}

func (d *Numeric) ExtremesAndPointSize(src Source) (min, max interface{}, pointSize float64, err error) {
	return scanExtremes(d, src)
}

func (d *Numeric) PointSize() float64 {
	return 0
}

// ReferenceValue returns 0 unless a reference value was set.
func (d *Numeric) ReferenceValue() (interface{}, bool) {
	return d.reference(0.0)
}

func (d *Numeric) SetReferenceValue(v interface{}) {
	d.setReference(d, v)
}
