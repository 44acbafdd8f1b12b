// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/go-chartdata/dimension"
	"github.com/aclements/go-chartdata/frame"
	"github.com/aclements/go-chartdata/internal/valfmt"
	"github.com/aclements/go-chartdata/named"
	"github.com/aclements/go-chartdata/variable"
)

// A summary describes one column across all inputs.
type summary struct {
	column string
	kind   variable.Kind
	dim    dimension.Dimension
	vars   []variable.Variable

	// min and max are the extremes of the column's elements, or
	// nil if every element is missing.
	min, max  interface{}
	pointSize float64
}

func (s *summary) Name() string {
	return s.column
}

// summarize merges the dimensions of same-named columns of frames,
// configures them according to sch and computes each column's
// extremes.
func summarize(frames []*frame.Frame, sch *schema) (*named.Collection[*summary], error) {
	sums := new(named.Collection[*summary])
	for _, fr := range frames {
		for _, v := range fr.Variables() {
			d := v.CreateDimension()
			s, ok := sums.Get(v.Name())
			if !ok {
				sums.Add(&summary{column: v.Name(), kind: v.Kind(), dim: d, vars: []variable.Variable{v}})
				continue
			}
			if s.kind != v.Kind() {
				return nil, fmt.Errorf("column %q is %v in one input and %v in another", v.Name(), s.kind, v.Kind())
			}
			m, err := s.dim.Merge(d)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", v.Name(), err)
			}
			s.dim = m
			s.vars = append(s.vars, v)
		}
	}

	var err error
	sums.Each(func(s *summary) bool {
		if err = sch.configure(s.column, s.dim); err != nil {
			return false
		}
		err = s.extremes()
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return sums, nil
}

// extremes combines the extremes of each of s's variables.
func (s *summary) extremes() error {
	s.pointSize = s.dim.PointSize()
	for _, v := range s.vars {
		lo, hi, ps, err := s.dim.ExtremesAndPointSize(v)
		if err != nil {
			return fmt.Errorf("column %q: %w", s.column, err)
		}
		s.pointSize = ps
		if lo == nil {
			continue
		}
		if s.min == nil {
			s.min, s.max = lo, hi
			continue
		}
		if c, err := s.dim.Compare(lo, s.min); err != nil {
			return err
		} else if c < 0 {
			s.min = lo
		}
		if c, err := s.dim.Compare(hi, s.max); err != nil {
			return err
		} else if c > 0 {
			s.max = hi
		}
	}
	return nil
}

// report returns a table with one row per summary. ticks is the
// maximum number of ticks to list for continuous dimensions.
func report(sums *named.Collection[*summary], ticks int) *table.Table {
	var cols [9][]string
	sums.Each(func(s *summary) bool {
		members := ""
		if c, ok := s.dim.(*dimension.Categorical); ok {
			members = strconv.Itoa(c.Len())
		}
		ref, explicit := s.dim.ReferenceValue()
		refs := formatItem(ref)
		if explicit {
			refs += "*"
		}
		row := []string{
			s.column,
			s.kind.String(),
			dimName(s.dim),
			formatItem(s.min),
			formatItem(s.max),
			valfmt.FormatFloat(s.pointSize),
			members,
			refs,
			formatTicks(s, ticks),
		}
		for i, x := range row {
			cols[i] = append(cols[i], x)
		}
		return true
	})

	b := new(table.Builder)
	for i, name := range []string{"column", "kind", "dimension", "min", "max", "point size", "members", "reference", "ticks"} {
		if cols[i] == nil {
			cols[i] = []string{}
		}
		b.Add(name, cols[i])
	}
	return b.Done()
}

func dimName(d dimension.Dimension) string {
	switch d := d.(type) {
	case *dimension.Numeric:
		return "numeric"
	case *dimension.Time:
		return "time/" + d.Unit.String()
	case *dimension.Index:
		return "index"
	case *dimension.Categorical:
		return "categorical"
	}
	return fmt.Sprintf("%T", d)
}

func formatItem(x interface{}) string {
	switch x := x.(type) {
	case nil:
		return "NA"
	case float64:
		return valfmt.FormatFloat(x)
	case time.Time:
		return valfmt.FormatTime(x)
	case color.NRGBA:
		return valfmt.FormatColor(x)
	}
	return fmt.Sprint(x)
}

// formatTicks lists the major ticks of s's dimension. Categorical
// dimensions list the coordinate of every member; numeric and time
// dimensions list at most max ticks over the column's extremes. Numeric
// columns are annotated with the mean of their elements.
func formatTicks(s *summary, max int) string {
	var out []string
	switch d := s.dim.(type) {
	case *dimension.Categorical:
		for _, t := range d.Ticks() {
			out = append(out, valfmt.FormatFloat(t))
		}
	case *dimension.Numeric:
		major, _ := d.Ticks(max)
		for _, t := range major {
			out = append(out, valfmt.FormatFloat(t))
		}
		if xs := presentFloats(s.vars); len(xs) > 0 {
			out = append(out, "(mean "+valfmt.FormatFloat(stats.Mean(xs))+")")
		}
	case *dimension.Time:
		if s.min == nil {
			break
		}
		lo, _ := d.Coordinate(s.min)
		hi, _ := d.Coordinate(s.max)
		major, _ := dimension.NewNumeric(lo, hi).Ticks(max)
		for _, t := range major {
			if t < lo || t > hi {
				continue
			}
			out = append(out, valfmt.FormatTime(d.ElementAt(t).(time.Time)))
		}
	}
	return strings.Join(out, " ")
}

func presentFloats(vs []variable.Variable) []float64 {
	var xs []float64
	for _, v := range vs {
		n, ok := v.(*variable.Numeric)
		if !ok {
			continue
		}
		for i := 0; i < n.Len(); i++ {
			x := n.ValueAt(i)
			if !n.MissingAt(i) && !math.IsNaN(x) && !math.IsInf(x, 0) {
				xs = append(xs, x)
			}
		}
	}
	return xs
}
