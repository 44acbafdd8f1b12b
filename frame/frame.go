// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame groups equal-length variables loaded from a data
// source and derives a dimension for each of them.
//
// A Frame can be read from CSV or XLSX data, in which case the kind of
// each column is inferred from its cells, or built from a go-gg
// table.Table. It can be converted back to a table.Table for printing.
package frame

import (
	"errors"
	"fmt"

	"github.com/aclements/go-chartdata/dimension"
	"github.com/aclements/go-chartdata/named"
	"github.com/aclements/go-chartdata/variable"
)

// ErrLength is returned when a variable added to a Frame does not
// have the Frame's length.
var ErrLength = errors.New("column length differs from frame")

// Frame is an ordered set of named variables. All non-constant
// variables in a Frame have the same length; constant variables
// broadcast to that length.
type Frame struct {
	vars named.Collection[variable.Variable]

	// n is the length of the non-constant variables, or -1 if
	// there are none.
	n int
}

// New returns an empty Frame.
func New() *Frame {
	return &Frame{n: -1}
}

// Add appends v to f. It returns an error if f already has a
// variable with v's name or if v is not constant and its length
// differs from f's other non-constant variables.
func (f *Frame) Add(v variable.Variable) error {
	if !v.IsConstant() && f.n >= 0 && v.Len() != f.n {
		return fmt.Errorf("column %q has %d rows, frame has %d: %w", v.Name(), v.Len(), f.n, ErrLength)
	}
	if err := f.vars.Add(v); err != nil {
		return err
	}
	if !v.IsConstant() {
		f.n = v.Len()
	}
	return nil
}

// Len returns the number of rows in f. It is 0 if f has no
// non-constant variables.
func (f *Frame) Len() int {
	if f.n < 0 {
		return 0
	}
	return f.n
}

// Columns returns the names of f's variables in order.
func (f *Frame) Columns() []string {
	return f.vars.Names()
}

// Column returns the variable named name, or nil.
func (f *Frame) Column(name string) variable.Variable {
	v, _ := f.vars.Get(name)
	return v
}

// Variables returns f's variables in order.
func (f *Frame) Variables() []variable.Variable {
	out := make([]variable.Variable, 0, f.vars.Len())
	f.vars.Each(func(v variable.Variable) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Axis is a dimension associated with the column it was created from.
type Axis struct {
	dimension.Dimension
	Column string
}

func (a Axis) Name() string {
	return a.Column
}

// Dimensions returns a dimension for each of f's variables, as created
// by the variable's CreateDimension method.
func (f *Frame) Dimensions() *named.Collection[Axis] {
	axes := new(named.Collection[Axis])
	for _, v := range f.Variables() {
		axes.Replace(Axis{v.CreateDimension(), v.Name()})
	}
	return axes
}
