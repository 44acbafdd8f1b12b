// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimension

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/aclements/go-chartdata/internal/valfmt"
)

// A TimeUnit is the calendar bucket a Time dimension groups instants
// into.
type TimeUnit int

const (
	// Instant does not bucket: every instant is a point.
	Instant TimeUnit = iota
	Day
	// Week buckets start on Monday.
	Week
	Month
	Year
)

var unitNames = []string{"instant", "day", "week", "month", "year"}

func (u TimeUnit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("TimeUnit(%d)", int(u))
	}
	return unitNames[u]
}

// ParseTimeUnit returns the TimeUnit named s.
func ParseTimeUnit(s string) (TimeUnit, error) {
	for i, name := range unitNames {
		if strings.EqualFold(s, name) {
			return TimeUnit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown time unit %q", s)
}

const secondsPerDay = 24 * 60 * 60

var timeType = reflect.TypeOf(time.Time{})

// Time is a dimension over time.Time values. Coordinates are
// fractional days since the Unix epoch, computed in UTC.
//
// With a Unit other than Instant, every value maps to the start of its
// calendar bucket and its Width is the length of the bucket in days.
type Time struct {
	base

	Unit TimeUnit

	min, max time.Time
	trained  bool
}

// NewTime returns a Time dimension with the given unit whose range
// covers ts.
func NewTime(unit TimeUnit, ts ...time.Time) *Time {
	d := &Time{Unit: unit}
	for _, t := range ts {
		d.Include(t)
	}
	return d
}

func (d *Time) String() string {
	if !d.trained {
		return fmt.Sprintf("time/%s (empty)", d.Unit)
	}
	return fmt.Sprintf("time/%s [%s,%s]", d.Unit, valfmt.FormatTime(d.min), valfmt.FormatTime(d.max))
}

// Include widens d's range to include t.
func (d *Time) Include(t time.Time) *Time {
	if !d.trained {
		d.min, d.max, d.trained = t, t, true
		return d
	}
	if t.Before(d.min) {
		d.min = t
	}
	if t.After(d.max) {
		d.max = t
	}
	return d
}

// Range returns the bounds of d's range. ok is false if nothing has
// been included.
func (d *Time) Range() (min, max time.Time, ok bool) {
	return d.min, d.max, d.trained
}

// Truncate returns the start of t's bucket in UTC.
func (d *Time) Truncate(t time.Time) time.Time {
	return truncate(t, d.Unit)
}

func truncate(t time.Time, u TimeUnit) time.Time {
	t = t.UTC()
	switch u {
	case Day:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case Week:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		back := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -back)
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case Year:
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return t
}

func days(t time.Time) float64 {
	return float64(t.Unix())/secondsPerDay + float64(t.Nanosecond())/(secondsPerDay*1e9)
}

func fromDays(c float64) time.Time {
	sec := c * secondsPerDay
	whole := math.Floor(sec)
	return time.Unix(int64(whole), int64((sec-whole)*1e9)).UTC()
}

func (d *Time) value(x interface{}) (time.Time, error) {
	t, ok := x.(time.Time)
	if !ok {
		return time.Time{}, mismatch(x, timeType)
	}
	return t, nil
}

func (d *Time) ItemType() reflect.Type {
	return timeType
}

func (d *Time) Coordinate(x interface{}) (float64, error) {
	t, err := d.value(x)
	if err != nil {
		return 0, err
	}
	return days(truncate(t, d.Unit)), nil
}

func (d *Time) Width(x interface{}) (float64, error) {
	t, err := d.value(x)
	if err != nil {
		return 0, err
	}
	start := truncate(t, d.Unit)
	var end time.Time
	switch d.Unit {
	case Day:
		end = start.AddDate(0, 0, 1)
	case Week:
		end = start.AddDate(0, 0, 7)
	case Month:
		end = start.AddDate(0, 1, 0)
	case Year:
		end = start.AddDate(1, 0, 0)
	default:
		return 0, nil
	}
	return days(end) - days(start), nil
}

func (d *Time) ElementAt(c float64) interface{} {
	return truncate(fromDays(c), d.Unit)
}

func (d *Time) ValueOf(s string) (interface{}, error) {
	return valfmt.ParseTime(s)
}

// Merge returns a Time dimension covering both ranges with the finer
// of the two units.
func (d *Time) Merge(other Dimension) (Dimension, error) {
	o, ok := other.(*Time)
	if !ok {
		return nil, mergeMismatch(d, other)
	}
	nd := *d
	if o.Unit < nd.Unit {
		nd.Unit = o.Unit
	}
	if o.trained {
		nd.Include(o.min)
		nd.Include(o.max)
	}
	return &nd, nil
}

func (d *Time) Compare(a, b interface{}) (int, error) {
	x, err := d.Coordinate(a)
	if err != nil {
		return 0, err
	}
	y, err := d.Coordinate(b)
	if err != nil {
		return 0, err
	}
	return cmpFloat(x, y), nil
}

func (d *Time) ExtremesAndPointSize(src Source) (min, max interface{}, pointSize float64, err error) {
	return scanExtremes(d, src)
}

func (d *Time) PointSize() float64 {
	return 0
}

// ReferenceValue defaults to the start of d's range, or the zero time
// if the range is empty.
func (d *Time) ReferenceValue() (interface{}, bool) {
	return d.reference(d.min)
}

func (d *Time) SetReferenceValue(v interface{}) {
	d.setReference(d, v)
}
