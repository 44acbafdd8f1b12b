// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package named provides ordered collections of named items, such as
// the variables of a frame or the dimensions of a set of axes.
package named

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrDuplicate is returned when adding an item whose name is already
// in use.
var ErrDuplicate = errors.New("duplicate name")

// Named is implemented by items that have a name.
type Named interface {
	Name() string
}

// Collection is an insertion-ordered set of items with unique names.
// The zero value is an empty collection ready to use.
type Collection[T Named] struct {
	items []T
	index map[string]int
}

func (c *Collection[T]) reindex(from int) {
	if c.index == nil {
		c.index = make(map[string]int, len(c.items))
	}
	for i := from; i < len(c.items); i++ {
		c.index[c.items[i].Name()] = i
	}
}

// Len returns the number of items in c.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns the i'th item of c.
func (c *Collection[T]) At(i int) T {
	return c.items[i]
}

// Add appends x to c. It returns an error wrapping ErrDuplicate if
// c already has an item named x.Name().
func (c *Collection[T]) Add(x T) error {
	name := x.Name()
	if _, ok := c.index[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrDuplicate)
	}
	c.items = append(c.items, x)
	c.reindex(len(c.items) - 1)
	return nil
}

// Replace replaces the item named x.Name() with x, or appends x if
// there is no such item.
func (c *Collection[T]) Replace(x T) {
	if i, ok := c.index[x.Name()]; ok {
		c.items[i] = x
		return
	}
	c.items = append(c.items, x)
	c.reindex(len(c.items) - 1)
}

// Index returns the position of the item named name, or -1.
func (c *Collection[T]) Index(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	return -1
}

// Get returns the item named name.
func (c *Collection[T]) Get(name string) (T, bool) {
	i, ok := c.index[name]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// Lookup is like Get, but if there is no exact match it returns the
// first item whose name matches name ignoring case.
func (c *Collection[T]) Lookup(name string) (T, bool) {
	if x, ok := c.Get(name); ok {
		return x, true
	}
	for _, x := range c.items {
		if strings.EqualFold(x.Name(), name) {
			return x, true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the item named name and reports whether it existed.
func (c *Collection[T]) Remove(name string) bool {
	i, ok := c.index[name]
	if !ok {
		return false
	}
	delete(c.index, name)
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.reindex(i)
	return true
}

// Names returns the names of c's items in order.
func (c *Collection[T]) Names() []string {
	names := make([]string, len(c.items))
	for i, x := range c.items {
		names[i] = x.Name()
	}
	return names
}

// Each calls f for each item of c in order until f returns false.
func (c *Collection[T]) Each(f func(x T) bool) {
	for _, x := range c.items {
		if !f(x) {
			return
		}
	}
}

// UniqueName returns prefix followed by the smallest positive integer
// that is not already the name of an item in c.
func (c *Collection[T]) UniqueName(prefix string) string {
	for n := 1; ; n++ {
		name := prefix + strconv.Itoa(n)
		if _, ok := c.index[name]; !ok {
			return name
		}
	}
}
