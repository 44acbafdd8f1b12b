// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variable

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-chartdata/internal/valfmt"
)

// traits collects the per-kind behavior of a value type.
type traits[T Value] struct {
	kind Kind

	equal func(a, b T) bool

	// less is nil for kinds without a total order.
	less func(a, b T) bool

	// format renders x according to spec. An empty spec selects
	// the canonical form.
	format func(x T, spec string) string
}

var numericTraits = traits[float64]{
	kind:  KindNumeric,
	equal: func(a, b float64) bool { return a == b },
	less:  func(a, b float64) bool { return a < b },
	format: func(x float64, spec string) string {
		if spec == "" {
			return valfmt.FormatFloat(x)
		}
		return sprintf(spec, x)
	},
}

var stringTraits = traits[string]{
	kind:  KindString,
	equal: func(a, b string) bool { return a == b },
	less:  func(a, b string) bool { return a < b },
	format: func(x string, spec string) string {
		if spec == "" {
			return x
		}
		return sprintf(spec, x)
	},
}

var boolTraits = traits[bool]{
	kind:  KindBool,
	equal: func(a, b bool) bool { return a == b },
	less:  func(a, b bool) bool { return !a && b },
	format: func(x bool, spec string) string {
		// "yes|no" selects a word for true and false.
		if t, f, ok := strings.Cut(spec, "|"); ok {
			if x {
				return t
			}
			return f
		}
		if spec == "" {
			return strconv.FormatBool(x)
		}
		return sprintf(spec, x)
	},
}

var colorTraits = traits[color.NRGBA]{
	kind:  KindColor,
	equal: func(a, b color.NRGBA) bool { return a == b },
	format: func(x color.NRGBA, spec string) string {
		if spec == "rgb" {
			return fmt.Sprintf("#%02X%02X%02X", x.R, x.G, x.B)
		}
		return valfmt.FormatColor(x)
	},
}

var timeTraits = traits[time.Time]{
	kind:  KindTime,
	equal: func(a, b time.Time) bool { return a.Equal(b) },
	less:  func(a, b time.Time) bool { return a.Before(b) },
	format: func(x time.Time, spec string) string {
		switch {
		case spec == "":
			return valfmt.FormatTime(x)
		case strings.Contains(spec, "%"):
			return fmt.Sprintf(spec, x)
		}
		return x.Format(spec)
	},
}

// sprintf formats x with spec, which is either a complete fmt format
// ("%6.2f") or a verb without its leading '%' (".2f").
func sprintf(spec string, x interface{}) string {
	if !strings.Contains(spec, "%") {
		spec = "%" + spec
	}
	return fmt.Sprintf(spec, x)
}

func traitsOf[T Value]() traits[T] {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(numericTraits).(traits[T])
	case string:
		return any(stringTraits).(traits[T])
	case bool:
		return any(boolTraits).(traits[T])
	case color.NRGBA:
		return any(colorTraits).(traits[T])
	case time.Time:
		return any(timeTraits).(traits[T])
	}
	panic(fmt.Sprintf("variable: unsupported value type %T", zero))
}

func kindOf[T Value]() Kind {
	return traitsOf[T]().kind
}
