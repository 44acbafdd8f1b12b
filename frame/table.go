// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"image/color"
	"math"
	"reflect"
	"time"

	"github.com/aclements/go-gg/generic"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-chartdata/variable"
)

// FromTable returns a Frame with a variable for each column of t.
//
// Columns of float64, string, bool, color.NRGBA and time.Time become
// variables of the corresponding kind. Columns of any other numeric
// type are converted to float64. NaN elements of numeric columns are
// missing.
func FromTable(t *table.Table) (*Frame, error) {
	f := New()
	for _, name := range t.Columns() {
		var v variable.Variable
		switch xs := t.Column(name).(type) {
		case []float64:
			v = numeric(name, xs)
		case []string:
			v = variable.New(name, xs, nil)
		case []bool:
			v = variable.New(name, xs, nil)
		case []color.NRGBA:
			v = variable.New(name, xs, nil)
		case []time.Time:
			v = variable.New(name, xs, nil)
		default:
			et := reflect.TypeOf(xs).Elem()
			if !isNumber(et.Kind()) {
				return nil, fmt.Errorf("column %q: %w", name, &generic.TypeError{Type1: et, Extra: "is not a supported column type"})
			}
			var fs []float64
			slice.Convert(&fs, xs)
			v = numeric(name, fs)
		}
		if err := f.Add(v); err != nil {
			return nil, err
		}
	}
	if f.n < 0 {
		f.n = t.Len()
	}
	return f, nil
}

func numeric(name string, xs []float64) *variable.Numeric {
	missing := make([]bool, len(xs))
	for i, x := range xs {
		missing[i] = math.IsNaN(x)
	}
	return variable.New(name, xs, missing)
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Table returns a go-gg table with a column for each of f's variables.
// Constant variables become constant columns. Missing numeric elements
// are NaN; missing elements of other kinds are their zero value.
func (f *Frame) Table() *table.Table {
	b := new(table.Builder)
	for _, v := range f.Variables() {
		switch v := v.(type) {
		case *variable.Numeric:
			if v.IsConstant() {
				x := v.ValueAt(0)
				if v.MissingAt(0) {
					x = math.NaN()
				}
				b.AddConst(v.Name(), x)
				continue
			}
			xs, missing := v.Values(), v.Missing()
			for i := range xs {
				if missing[i] {
					xs[i] = math.NaN()
				}
			}
			b.Add(v.Name(), xs)
		case *variable.String:
			addColumn(b, v)
		case *variable.Bool:
			addColumn(b, v)
		case *variable.Color:
			addColumn(b, v)
		case *variable.Time:
			addColumn(b, v)
		}
	}
	return b.Done()
}

func addColumn[T variable.Value](b *table.Builder, v *variable.Var[T]) {
	if v.IsConstant() {
		var x T
		if !v.MissingAt(0) {
			x = v.ValueAt(0)
		}
		b.AddConst(v.Name(), x)
		return
	}
	xs, missing := v.Values(), v.Missing()
	var zero T
	for i := range xs {
		if missing[i] {
			xs[i] = zero
		}
	}
	b.Add(v.Name(), xs)
}
