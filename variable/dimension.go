// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variable

import (
	"time"

	"github.com/aclements/go-chartdata/dimension"
)

// CreateDimension returns a dimension over v's non-missing values.
// Numeric variables get a dimension.Numeric over their finite range,
// time variables a dimension.Time with unit Instant, and all other
// kinds a dimension.Categorical of their distinct values in order of
// first occurrence.
func (v *Var[T]) CreateDimension() dimension.Dimension {
	switch xs := any(v.present()).(type) {
	case []float64:
		return dimension.NewNumeric(xs...)
	case []time.Time:
		return dimension.NewTime(dimension.Instant, xs...)
	}
	return dimension.NewCategorical(v.present())
}
