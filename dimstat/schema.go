// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aclements/go-chartdata/dimension"
	"github.com/aclements/go-chartdata/frame"
	"github.com/aclements/go-chartdata/variable"
)

// A schema overrides how individual columns are loaded and how their
// dimensions are configured. For example:
//
//	columns:
//	  when:
//	    kind: time
//	    unit: month
//	  region:
//	    reference: west
//	    first: 1
type schema struct {
	Columns map[string]columnSchema `yaml:"columns"`
}

type columnSchema struct {
	// Kind forces the column's kind instead of inferring it.
	Kind string `yaml:"kind"`

	// Unit sets the bucket size of a time column's dimension.
	Unit string `yaml:"unit"`

	// Reference is parsed by the dimension and set as its
	// reference value.
	Reference string `yaml:"reference"`

	// First is the coordinate of the dimension's first member.
	First *float64 `yaml:"first"`
}

func parseSchema(r io.Reader) (*schema, error) {
	var s schema
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	for name, c := range s.Columns {
		if c.Kind != "" {
			if _, err := variable.ParseKind(c.Kind); err != nil {
				return nil, fmt.Errorf("schema column %q: %w", name, err)
			}
		}
		if c.Unit != "" {
			if _, err := dimension.ParseTimeUnit(c.Unit); err != nil {
				return nil, fmt.Errorf("schema column %q: %w", name, err)
			}
		}
	}
	return &s, nil
}

// options adds s's kind overrides to opts.
func (s *schema) options(opts *frame.Options) {
	if s == nil {
		return
	}
	for name, c := range s.Columns {
		if c.Kind == "" {
			continue
		}
		k, _ := variable.ParseKind(c.Kind)
		if opts.Kinds == nil {
			opts.Kinds = make(map[string]variable.Kind)
		}
		opts.Kinds[name] = k
	}
}

// configure applies s's settings for column to d.
func (s *schema) configure(column string, d dimension.Dimension) error {
	if s == nil {
		return nil
	}
	c, ok := s.Columns[column]
	if !ok {
		return nil
	}
	if c.Unit != "" {
		t, ok := d.(*dimension.Time)
		if !ok {
			return fmt.Errorf("column %q: unit %q given for %s dimension", column, c.Unit, dimName(d))
		}
		t.Unit, _ = dimension.ParseTimeUnit(c.Unit)
	}
	if c.First != nil {
		d.SetFirstMemberCoordinate(*c.First)
	}
	if c.Reference != "" {
		d.SetReferenceValue(c.Reference)
	}
	return nil
}
