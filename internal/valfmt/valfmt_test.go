// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valfmt

import (
	"errors"
	"image/color"
	"testing"
	"time"
)

func TestColor(t *testing.T) {
	for _, test := range []struct {
		in   string
		want color.NRGBA
		out  string
	}{
		{"#80FF0000", color.NRGBA{0xff, 0, 0, 0x80}, "#80FF0000"},
		{"00ff00", color.NRGBA{0, 0xff, 0, 0xff}, "#FF00FF00"},
		{" #0000ff ", color.NRGBA{0, 0, 0xff, 0xff}, "#FF0000FF"},
	} {
		got, err := ParseColor(test.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseColor(%q) = %v; want %v", test.in, got, test.want)
		}
		if s := FormatColor(got); s != test.out {
			t.Errorf("FormatColor(%v) = %q; want %q", got, s, test.out)
		}
	}

	for _, bad := range []string{"", "#12345", "#GG0000", "red"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrSyntax) {
			t.Errorf("ParseColor(%q) error = %v; want ErrSyntax", bad, err)
		}
	}
}

func TestTime(t *testing.T) {
	want := time.Date(2016, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2016-03-01", "2016-03-01 00:00:00", "2016-03-01T00:00:00Z"} {
		got, err := ParseTime(s)
		if err != nil {
			t.Errorf("ParseTime(%q): %v", s, err)
		} else if !got.Equal(want) {
			t.Errorf("ParseTime(%q) = %v; want %v", s, got, want)
		}
	}
	if _, err := ParseTime("yesterday"); !errors.Is(err, ErrSyntax) {
		t.Errorf("ParseTime(yesterday) error = %v; want ErrSyntax", err)
	}
	if s := FormatTime(want); s != "2016-03-01T00:00:00Z" {
		t.Errorf("FormatTime = %q", s)
	}
}

func TestBoolFloat(t *testing.T) {
	if b, err := ParseBool("Yes"); err != nil || !b {
		t.Errorf("ParseBool(Yes) = %v, %v", b, err)
	}
	if b, err := ParseBool("0"); err != nil || b {
		t.Errorf("ParseBool(0) = %v, %v", b, err)
	}
	if _, err := ParseBool("maybe"); !errors.Is(err, ErrSyntax) {
		t.Errorf("ParseBool(maybe) error = %v", err)
	}
	if x, err := ParseFloat(" 2.5 "); err != nil || x != 2.5 {
		t.Errorf("ParseFloat(2.5) = %v, %v", x, err)
	}
	if _, err := ParseFloat("x"); !errors.Is(err, ErrSyntax) {
		t.Errorf("ParseFloat(x) error = %v", err)
	}
	if s := FormatFloat(0.1); s != "0.1" {
		t.Errorf("FormatFloat(0.1) = %q", s)
	}
}
