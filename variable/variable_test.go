// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variable

import (
	"errors"
	"fmt"
	"image/color"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/aclements/go-chartdata/dimension"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func shouldPanic(t *testing.T, re string, f func()) {
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("want panic matching %q; got %s", re, err)
		}
	}()
	f()
}

// check verifies that v has the given values, missing flags, and
// constant-ness.
func check[T Value](t *testing.T, v *Var[T], values []T, missing []bool, constant bool) {
	t.Helper()
	if missing == nil {
		missing = make([]bool, len(values))
	}
	if v.IsConstant() != constant {
		t.Errorf("%v: IsConstant() = %v; want %v", v, v.IsConstant(), constant)
	}
	if got := v.Values(); !de(got, values) && !(len(got) == 0 && len(values) == 0) {
		t.Errorf("%v: values = %v; want %v", v, got, values)
	}
	if got := v.Missing(); !de(got, missing) && !(len(got) == 0 && len(missing) == 0) {
		t.Errorf("%v: missing = %v; want %v", v, got, missing)
	}
}

func TestConstruct(t *testing.T) {
	v := New("x", []float64{1, 2, 3}, []bool{false, true, false})
	if v.Name() != "x" || v.Kind() != KindNumeric || v.Len() != 3 || v.IsConstant() {
		t.Fatalf("unexpected %v", v)
	}
	if v.ValueAt(1) != 2 || !v.MissingAt(1) || v.MissingAt(2) {
		t.Errorf("element 1 = %v, %v", v.ValueAt(1), v.MissingAt(1))
	}
	if x := v.ItemAt(2); x != 3.0 {
		t.Errorf("ItemAt(2) = %#v", x)
	}
	shouldPanic(t, `index 3 out of range \[0,3\)`, func() { v.ValueAt(3) })
	shouldPanic(t, `index -1 out of range`, func() { v.MissingAt(-1) })
	shouldPanic(t, "2 missing flags for 3 values", func() { New("y", []string{"a", "b", "c"}, []bool{true, true}) })

	// New copies its inputs.
	xs := []float64{1, 2}
	w := New("w", xs, nil)
	xs[0] = 100
	if w.ValueAt(0) != 1 {
		t.Errorf("New aliases its input")
	}

	for _, k := range []Kind{KindNumeric, KindString, KindBool, KindColor, KindTime} {
		if got, err := ParseKind(k.String()); err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("complex"); err == nil {
		t.Errorf("ParseKind(complex): want error")
	}
	kinds := []Variable{Empty[string](""), Empty[bool](""), Empty[color.NRGBA](""), Empty[time.Time]("")}
	for i, v := range kinds {
		if want := Kind(i + 1); v.Kind() != want {
			t.Errorf("%T.Kind() = %v; want %v", v, v.Kind(), want)
		}
	}
}

func TestBroadcast(t *testing.T) {
	c := Const("c", "v")
	for _, i := range []int{0, 1, 7, 1 << 20, -3} {
		if c.ValueAt(i) != "v" || c.MissingAt(i) {
			t.Errorf("constant at %d = %v, %v", i, c.ValueAt(i), c.MissingAt(i))
		}
	}
	if c.Len() != 1 || !c.IsConstant() {
		t.Errorf("constant has Len %d, IsConstant %v", c.Len(), c.IsConstant())
	}

	m := ConstMissing[float64]("m")
	if !m.MissingAt(12) || m.ValueAt(12) != 0 {
		t.Errorf("missing constant at 12 = %v, %v", m.ValueAt(12), m.MissingAt(12))
	}
}

func TestAddClear(t *testing.T) {
	v := Empty[float64]("v")
	v.Add(1)
	v.AddMany([]float64{2, 3}, nil)
	v.AddMany([]float64{4, 5}, []bool{true, false})
	v.AddMissing()
	check(t, v, []float64{1, 2, 3, 4, 5, 0}, []bool{false, false, false, true, false, true}, false)
	shouldPanic(t, "1 missing flags for 2 values", func() { v.AddMany([]float64{1, 2}, []bool{true}) })

	v.Clear()
	if v.Len() != 0 || v.IsConstant() {
		t.Errorf("after Clear: Len %d, IsConstant %v", v.Len(), v.IsConstant())
	}
	v.Add(9)
	check(t, v, []float64{9}, nil, false)

	c := Const("c", true)
	shouldPanic(t, "Add on constant", func() { c.Add(false) })
	shouldPanic(t, "AddMany on constant", func() { c.AddMany([]bool{false}, nil) })
	shouldPanic(t, "AddMissing on constant", func() { c.AddMissing() })
	shouldPanic(t, "Clear on constant", func() { c.Clear() })
}

func TestAlternate(t *testing.T) {
	this := New("this", []float64{10, 20, 30}, []bool{false, true, false})
	other := New("other", []float64{1, 2, 3}, []bool{true, false, false})
	sel := New("sel", []bool{true, false, true}, nil)
	r, err := this.Alternate(sel, other)
	if err != nil {
		t.Fatal(err)
	}
	check(t, r, []float64{10, 2, 30}, []bool{false, false, false}, false)

	sel = New("sel", []bool{false, true, true}, nil)
	r, _ = this.Alternate(sel, other)
	check(t, r, []float64{1, 20, 30}, []bool{true, true, false}, false)

	// Mixed constant and vector operands.
	r, err = Const("k", 7.0).Alternate(sel, other)
	if err != nil {
		t.Fatal(err)
	}
	check(t, r, []float64{1, 7, 7}, []bool{true, false, false}, false)
	r, _ = this.Alternate(Const("t", true), Const("z", 0.0))
	check(t, r, []float64{10, 20, 30}, []bool{false, true, false}, false)

	// All constant.
	rs, err := Const("a", "x").Alternate(Const("s", false), ConstMissing[string]("b"))
	if err != nil {
		t.Fatal(err)
	}
	check(t, rs, []string{""}, []bool{true}, true)

	_, err = this.Alternate(New("sel", []bool{true, false}, nil), other)
	if !errors.Is(err, ErrLength) {
		t.Errorf("Alternate with short selector: error %v; want ErrLength", err)
	}

	// Inputs are unchanged and the result does not alias them.
	r, _ = this.Alternate(Const("t", true), other)
	r.values[0] = -1
	if this.ValueAt(0) != 10 {
		t.Errorf("Alternate result aliases its receiver")
	}
}

func TestFilter(t *testing.T) {
	v := New("v", []string{"a", "b", "c", "d", "e"}, []bool{false, true, false, false, false})
	sel := New("sel", []bool{true, true, false, false, true}, nil)
	r, err := v.Filter(sel)
	if err != nil {
		t.Fatal(err)
	}
	check(t, r, []string{"a", "b", "e"}, []bool{false, true, false}, false)
	if r.Len() != Count(sel) {
		t.Errorf("Filter length %d != Count %d", r.Len(), Count(sel))
	}

	r, _ = Const("k", "z").Filter(sel)
	check(t, r, []string{"z", "z", "z"}, nil, false)
	r, _ = v.Filter(Const("t", true))
	check(t, r, v.Values(), v.Missing(), false)
	r, _ = v.Filter(Const("f", false))
	check(t, r, nil, nil, false)

	r, _ = Const("k", "z").Filter(Const("t", true))
	check(t, r, []string{"z"}, nil, true)
	r, _ = Const("k", "z").Filter(Const("f", false))
	if r.Len() != 0 || r.IsConstant() {
		t.Errorf("constant filtered by false: %v", r)
	}

	// A true selector element is kept even if it is missing; Count
	// does not count it.
	msel := New("sel", []bool{true, true, false, false, false}, []bool{false, true, false, false, false})
	r, _ = v.Filter(msel)
	check(t, r, []string{"a", "b"}, []bool{false, true}, false)
	if Count(msel) != 1 {
		t.Errorf("Count of selector with a missing true = %d; want 1", Count(msel))
	}

	if _, err := v.Filter(New("sel", []bool{true}, nil)); !errors.Is(err, ErrLength) {
		t.Errorf("Filter with short selector: error %v; want ErrLength", err)
	}
}

func TestRelation(t *testing.T) {
	a := New("a", []float64{1, 2, 3}, nil)
	b := Const("b", 5.0)
	r, err := a.Relation(Lt, b)
	if err != nil {
		t.Fatal(err)
	}
	check(t, r, []bool{true, true, true}, nil, false)

	x := New("x", []float64{1, 2, 3, 4}, []bool{false, false, true, false})
	y := New("y", []float64{2, 2, 2, 2}, []bool{false, false, false, true})
	for op, want := range map[Op][]bool{
		Eq: {false, true, false, false},
		Ne: {true, false, true, true},
		Lt: {true, false, false, false},
		Le: {true, true, false, false},
		Ge: {false, true, true, true},
		Gt: {false, false, true, true},
	} {
		r, err := x.Relation(op, y)
		if err != nil {
			t.Fatal(err)
		}
		check(t, r, want, []bool{false, false, true, true}, false)
	}

	r, _ = Const("p", "abc").Relation(Le, Const("q", "abd"))
	check(t, r, []bool{true}, nil, true)

	r, _ = New("b", []bool{false, true}, nil).Relation(Lt, Const("t", true))
	check(t, r, []bool{true, false}, nil, false)

	t0 := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := New("t", []time.Time{t0, t0.Add(time.Hour)}, nil)
	r, _ = ts.Relation(Eq, Const("t0", t0.In(time.FixedZone("X", 3600))))
	check(t, r, []bool{true, false}, nil, false)

	red := color.NRGBA{R: 255, A: 255}
	cs := New("c", []color.NRGBA{red, {}}, nil)
	r, err = cs.Relation(Ne, Const("red", red))
	if err != nil {
		t.Fatal(err)
	}
	check(t, r, []bool{false, true}, nil, false)
	for _, op := range []Op{Lt, Le, Ge, Gt} {
		if _, err := cs.Relation(op, cs); !errors.Is(err, ErrUnsupportedOp) {
			t.Errorf("color %v: error %v; want ErrUnsupportedOp", op, err)
		}
	}
	if _, err := a.Relation(Op(42), a); !errors.Is(err, ErrUnsupportedOp) {
		t.Errorf("Op(42): error %v; want ErrUnsupportedOp", err)
	}
	if _, err := a.Relation(Eq, x); !errors.Is(err, ErrLength) {
		t.Errorf("mismatched lengths: error %v; want ErrLength", err)
	}
}

func TestFormat(t *testing.T) {
	empty := Const("spec", "")
	nums := New("n", []float64{1.5, 2, 1e21}, []bool{false, true, false})
	r, err := nums.Format(empty)
	if err != nil {
		t.Fatal(err)
	}
	check(t, r, []string{"1.5", "2", "1e+21"}, []bool{false, true, false}, false)

	r, _ = nums.Format(New("spec", []string{".2f", "%05.1f", ""}, nil))
	check(t, r, []string{"1.50", "002.0", "1e+21"}, []bool{false, true, false}, false)

	r, _ = New("c", []color.NRGBA{{R: 0x12, G: 0x34, B: 0x56, A: 0x78}}, nil).Format(empty)
	check(t, r, []string{"#78123456"}, nil, false)
	r, _ = Const("c", color.NRGBA{R: 0xff, A: 0xff}).Format(Const("spec", "rgb"))
	check(t, r, []string{"#FF0000"}, nil, true)

	r, _ = New("b", []bool{true, false}, nil).Format(Const("spec", "yes|no"))
	check(t, r, []string{"yes", "no"}, nil, false)
	r, _ = New("b", []bool{true}, nil).Format(empty)
	check(t, r, []string{"true"}, nil, false)

	t0 := time.Date(2016, 3, 1, 8, 0, 0, 0, time.UTC)
	r, _ = Const("t", t0).Format(empty)
	check(t, r, []string{"2016-03-01T08:00:00Z"}, nil, true)
	r, _ = Const("t", t0).Format(Const("spec", "Jan 2"))
	check(t, r, []string{"Mar 1"}, nil, true)

	r, _ = New("s", []string{"a"}, nil).Format(Const("spec", "q"))
	check(t, r, []string{`"a"`}, nil, false)

	if _, err := nums.Format(New("spec", []string{"", ""}, nil)); !errors.Is(err, ErrLength) {
		t.Errorf("mismatched spec: error %v; want ErrLength", err)
	}
}

func TestConcatenate(t *testing.T) {
	a := New("a", []string{"x", "y", "z"}, []bool{false, true, false})
	r, err := Concatenate(a, Const("s", "!"))
	if err != nil {
		t.Fatal(err)
	}
	check(t, r, []string{"x!", "y!", "z!"}, []bool{false, true, false}, false)

	r, _ = Concatenate(New("p", []string{"<"}, nil), a)
	check(t, r, []string{"<x", "<y", "<z"}, []bool{false, true, false}, false)

	r, _ = Concatenate(a, New("b", []string{"1", "2", "3"}, []bool{false, false, true}))
	check(t, r, []string{"x1", "y2", "z3"}, []bool{false, true, true}, false)

	r, _ = Concatenate(Const("p", "a"), Const("q", "b"))
	check(t, r, []string{"ab"}, nil, true)

	if _, err := Concatenate(a, New("b", []string{"1", "2"}, nil)); !errors.Is(err, ErrLength) {
		t.Errorf("mismatched lengths: error %v; want ErrLength", err)
	}
}

func TestLogic(t *testing.T) {
	a := New("a", []bool{true, true, false, false}, []bool{false, false, false, true})
	b := New("b", []bool{true, false, true, false}, nil)
	r, err := And(a, b)
	if err != nil {
		t.Fatal(err)
	}
	check(t, r, []bool{true, false, false, false}, []bool{false, false, false, true}, false)
	r, _ = Or(a, b)
	check(t, r, []bool{true, true, true, false}, []bool{false, false, false, true}, false)
	check(t, Not(a), []bool{false, false, true, true}, []bool{false, false, false, true}, false)
	check(t, Not(Const("t", true)), []bool{false}, nil, true)
	if n := Count(a); n != 2 {
		t.Errorf("Count = %d; want 2", n)
	}
	if _, err := And(a, New("c", []bool{true}, nil)); !errors.Is(err, ErrLength) {
		t.Errorf("mismatched lengths: error %v; want ErrLength", err)
	}
}

func TestCreateDimension(t *testing.T) {
	v := New("color", []string{"red", "blue", "red", "green"}, nil)
	d, ok := v.CreateDimension().(*dimension.Categorical)
	if !ok {
		t.Fatalf("string variable dimension is %T", v.CreateDimension())
	}
	if got, want := d.Members(), []interface{}{"red", "blue", "green"}; !de(got, want) {
		t.Errorf("members = %v; want %v", got, want)
	}

	// Missing values are not members.
	v = New("s", []string{"a", "b", "c"}, []bool{false, true, false})
	if got := v.CreateDimension().(*dimension.Categorical).Len(); got != 2 {
		t.Errorf("dimension has %d members; want 2", got)
	}

	n := New("n", []float64{4, -1, 8}, []bool{false, false, true})
	nd := n.CreateDimension().(*dimension.Numeric)
	if lo, hi := nd.Range(); lo != -1 || hi != 4 {
		t.Errorf("numeric range = [%v,%v]; want [-1,4]", lo, hi)
	}
	min, max, ps, err := nd.ExtremesAndPointSize(n)
	if err != nil || min != -1.0 || max != 4.0 || ps != 0 {
		t.Errorf("extremes = %v, %v, %v, %v", min, max, ps, err)
	}

	t0 := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	td := New("t", []time.Time{t0.AddDate(0, 1, 0), t0}, nil).CreateDimension().(*dimension.Time)
	if lo, hi, ok := td.Range(); !ok || !lo.Equal(t0) || !hi.Equal(t0.AddDate(0, 1, 0)) {
		t.Errorf("time range = %v, %v, %v", lo, hi, ok)
	}

	bd := Const("b", true).CreateDimension().(*dimension.Categorical)
	if !de(bd.Members(), []interface{}{true}) {
		t.Errorf("bool constant members = %v", bd.Members())
	}
	cd := ConstMissing[color.NRGBA]("c").CreateDimension()
	if cd.ItemType() != reflect.TypeOf(color.NRGBA{}) || cd.(*dimension.Categorical).Len() != 0 {
		t.Errorf("missing color constant dimension = %v", cd)
	}
}

func ExampleVar_Alternate() {
	this := New("this", []float64{10, 20, 30}, nil)
	other := New("other", []float64{1, 2, 3}, nil)
	sel, _ := New("x", []float64{1, 2, 3}, nil).Relation(Ne, Const("two", 2.0))
	r, _ := this.Alternate(sel, other)
	fmt.Println(r.Values())
	// Output:
	// [10 2 30]
}
