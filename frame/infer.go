// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/aclements/go-chartdata/internal/valfmt"
	"github.com/aclements/go-chartdata/variable"
)

// InferKind returns the kind of a column with the given cells. It
// picks the first of bool, numeric, time and color that every
// non-empty cell parses as, and string otherwise. Empty cells are
// missing and do not participate. A column with no non-empty cells is
// a string column.
//
// Bool columns must consist of the words true, false, yes and no (in
// any case); in particular, a column of 0s and 1s is numeric. Color
// cells must start with '#'.
func InferKind(cells []string) variable.Kind {
	isBool, isNum, isTime, isColor := true, true, true, true
	nonEmpty := false
	for _, c := range cells {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		nonEmpty = true
		if isBool {
			switch strings.ToLower(c) {
			case "true", "false", "yes", "no":
			default:
				isBool = false
			}
		}
		if isNum {
			if _, err := valfmt.ParseFloat(c); err != nil {
				isNum = false
			}
		}
		if isTime {
			if _, err := valfmt.ParseTime(c); err != nil {
				isTime = false
			}
		}
		if isColor {
			if _, err := valfmt.ParseColor(c); err != nil || c[0] != '#' {
				isColor = false
			}
		}
		if !(isBool || isNum || isTime || isColor) {
			break
		}
	}
	switch {
	case !nonEmpty:
		return variable.KindString
	case isBool:
		return variable.KindBool
	case isNum:
		return variable.KindNumeric
	case isTime:
		return variable.KindTime
	case isColor:
		return variable.KindColor
	}
	return variable.KindString
}

// build returns a variable of cells parsed by parse. Empty cells and
// cells parse rejects are missing.
func build[T variable.Value](name string, cells []string, parse func(string) (T, error)) *variable.Var[T] {
	vals := make([]T, len(cells))
	missing := make([]bool, len(cells))
	for i, c := range cells {
		if strings.TrimSpace(c) == "" {
			missing[i] = true
			continue
		}
		x, err := parse(c)
		if err != nil {
			missing[i] = true
			continue
		}
		vals[i] = x
	}
	return variable.New(name, vals, missing)
}

// Column returns a variable of the given kind named name whose
// elements are parsed from cells.
func Column(name string, kind variable.Kind, cells []string) (variable.Variable, error) {
	switch kind {
	case variable.KindNumeric:
		return build(name, cells, valfmt.ParseFloat), nil
	case variable.KindString:
		return build(name, cells, func(s string) (string, error) { return s, nil }), nil
	case variable.KindBool:
		return build(name, cells, valfmt.ParseBool), nil
	case variable.KindColor:
		return build[color.NRGBA](name, cells, valfmt.ParseColor), nil
	case variable.KindTime:
		return build[time.Time](name, cells, valfmt.ParseTime), nil
	}
	return nil, fmt.Errorf("column %q: unknown kind %v", name, kind)
}
