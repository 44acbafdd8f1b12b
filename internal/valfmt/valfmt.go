// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package valfmt parses and formats the scalar domain values stored
// in variables and dimensions.
package valfmt

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"
)

// ErrSyntax indicates that a string is not a valid representation of
// the requested value type.
var ErrSyntax = errors.New("invalid syntax")

// TimeLayouts are the layouts ParseTime tries, in order.
var TimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatFloat returns the shortest decimal form of x.
func FormatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// ParseFloat parses s as a float64. Surrounding space is ignored.
func ParseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", s, ErrSyntax)
	}
	return x, nil
}

// ParseBool parses s as a boolean. It accepts the forms accepted by
// strconv.ParseBool plus "yes" and "no" in any case.
func ParseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("boolean %q: %w", s, ErrSyntax)
	}
	return b, nil
}

// FormatTime returns the RFC 3339 form of t.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseTime parses s using the first matching layout in TimeLayouts.
// Layouts without a zone are interpreted as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range TimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("time %q: %w", s, ErrSyntax)
}

// FormatColor returns c as "#AARRGGBB" in upper-case hex.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// ParseColor parses "#AARRGGBB" or "#RRGGBB" (opaque). The leading
// '#' is optional.
func ParseColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, ErrSyntax)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, ErrSyntax)
	}
	if len(h) == 6 {
		v |= 0xff << 24
	}
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
