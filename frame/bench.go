// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aclements/go-chartdata/internal/valfmt"
)

// benchRun is one result line of a Go benchmark results file.
type benchRun struct {
	name    string
	config  map[string]string
	results map[string]float64
}

var benchConfigRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// ReadBench reads a Frame from a Go benchmark results file, as
// described at
// https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md.
//
// Each benchmark result line becomes a row. The frame has a "name"
// column, then a column for each configuration key in sorted order,
// then a numeric column for each result unit in sorted order.
// Configuration values come from configuration lines preceding the
// result, from "key:value" components of the benchmark name, and from
// a trailing "-N" on the name, which sets "gomaxprocs". Configuration
// keys and units absent from a row are missing.
func ReadBench(r io.Reader, opts *Options) (*Frame, error) {
	runs, err := parseBench(r)
	if err != nil {
		return nil, err
	}

	configs, units := map[string]bool{}, map[string]bool{}
	for _, run := range runs {
		for k := range run.config {
			configs[k] = true
		}
		for k := range run.results {
			units[k] = true
		}
	}
	configKeys, unitKeys := sortedKeys(configs), sortedKeys(units)

	header := append(append([]string{"name"}, configKeys...), unitKeys...)
	rows := [][]string{header}
	for _, run := range runs {
		row := make([]string, 0, len(header))
		row = append(row, run.name)
		for _, k := range configKeys {
			row = append(row, run.config[k])
		}
		for _, k := range unitKeys {
			if x, ok := run.results[k]; ok {
				row = append(row, valfmt.FormatFloat(x))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows, opts)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func parseBench(r io.Reader) ([]benchRun, error) {
	var runs []benchRun
	block := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if m := benchConfigRe.FindStringSubmatch(line); m != nil {
			block[m[1]] = m[2]
			continue
		}
		if run, ok := parseBenchLine(line, block); ok {
			runs = append(runs, run)
		}
	}
	return runs, scanner.Err()
}

// parseBenchLine parses a line of the form
//
//	BenchmarkName/key:value-N  iterations  value unit  [value unit...]
//
// with config as the enclosing configuration block.
func parseBenchLine(line string, config map[string]string) (benchRun, bool) {
	f := strings.Fields(line)
	if len(f) < 4 || !strings.HasPrefix(f[0], "Benchmark") {
		return benchRun{}, false
	}
	name := f[0][len("Benchmark"):]
	if r, _ := utf8.DecodeRuneInString(name); name != "" && !unicode.IsUpper(r) {
		return benchRun{}, false
	}
	if n, err := strconv.Atoi(f[1]); err != nil || n <= 0 {
		return benchRun{}, false
	}

	run := benchRun{
		config:  make(map[string]string, len(config)+1),
		results: make(map[string]float64),
	}
	for k, v := range config {
		run.config[k] = v
	}

	run.config["gomaxprocs"] = "1"
	if i := strings.LastIndex(name, "-"); i >= 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			run.config["gomaxprocs"] = name[i+1:]
			name = name[:i]
		}
	}
	var parts []string
	for _, part := range strings.Split(name, "/") {
		if k, v, ok := strings.Cut(part, ":"); ok && len(parts) > 0 {
			run.config[k] = v
			continue
		}
		parts = append(parts, part)
	}
	run.name = strings.Join(parts, "/")

	for i := 2; i+1 < len(f); i += 2 {
		x, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			continue
		}
		run.results[f[i+1]] = x
	}
	return run, true
}
