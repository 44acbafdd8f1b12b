// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dimstat summarizes the dimensions of tabular data.
//
// dimstat reads CSV or XLSX inputs whose first row names the columns,
// or Go benchmark results files (with extension .bench), infers the
// kind of each column and derives a chart dimension for it.
// Columns with the same name in several inputs share one merged
// dimension. For each column, dimstat prints its kind, dimension,
// extremes, point size, categorical members, reference value and axis
// ticks.
//
// A schema file can force column kinds and configure dimensions:
//
//	columns:
//	  when:
//	    kind: time
//	    unit: week
//	  size:
//	    reference: 10
//
// With no inputs, dimstat reads CSV from standard input.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/pflag"

	"github.com/aclements/go-chartdata/frame"
)

func main() {
	log.SetPrefix("dimstat: ")
	log.SetFlags(0)

	var (
		flagCPUProfile string
		flagOut        string
		flagCols       string
		flagSchema     string
		flagSheet      string
		flagTable      bool
		flagTicks      int
	)
	flags := pflag.NewFlagSet("dimstat", pflag.ExitOnError)
	flags.StringVar(&flagCPUProfile, "cpuprofile", "", "write CPU profile to `file`")
	flags.StringVarP(&flagOut, "output", "o", "", "write output to `file` (default: stdout)")
	flags.StringVar(&flagCols, "cols", "", "load only the shell-quoted `columns`")
	flags.StringVar(&flagSchema, "schema", "", "read column schema from YAML `file`")
	flags.StringVar(&flagSheet, "sheet", "", "read `sheet` of XLSX inputs (default: first sheet)")
	flags.BoolVar(&flagTable, "table", false, "print the loaded data instead of a summary")
	flags.IntVar(&flagTicks, "ticks", 5, "list at most `n` ticks per continuous dimension")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flags.PrintDefaults()
	}
	flags.Parse(os.Args[1:])

	if flagCPUProfile != "" {
		f, err := os.Create(flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	opts := new(frame.Options)
	if flagCols != "" {
		cols, err := shellquote.Split(flagCols)
		if err != nil {
			log.Fatalf("bad --cols: %v", err)
		}
		opts.Columns = cols
	}
	var sch *schema
	if flagSchema != "" {
		f, err := os.Open(flagSchema)
		if err != nil {
			log.Fatal(err)
		}
		sch, err = parseSchema(f)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v", flagSchema, err)
		}
		sch.options(opts)
	}

	// Load inputs.
	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var frames []*frame.Frame
	for _, path := range paths {
		fr, err := load(path, flagSheet, opts)
		if err != nil {
			log.Fatal(err)
		}
		frames = append(frames, fr)
	}

	// Prepare for output.
	w := os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	if flagTable {
		for i, fr := range frames {
			if len(frames) > 1 {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "-- %s\n", paths[i])
			}
			table.Fprint(w, fr.Table())
		}
		return
	}

	sums, err := summarize(frames, sch)
	if err != nil {
		log.Fatal(err)
	}
	table.Fprint(w, report(sums, flagTicks))
}

// load reads a frame from path. Paths ending in .xlsx are read as
// workbooks, paths ending in .bench as Go benchmark results, and all
// others as CSV. The path "-" is standard input.
func load(path, sheet string, opts *frame.Options) (*frame.Frame, error) {
	if path == "-" {
		return readCSV(os.Stdin, "stdin", opts)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		return frame.ReadXLSX(path, sheet, opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if ext == ".bench" {
		fr, err := frame.ReadBench(f, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return fr, nil
	}
	return readCSV(f, path, opts)
}

func readCSV(r io.Reader, name string, opts *frame.Options) (*frame.Frame, error) {
	fr, err := frame.ReadCSV(r, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return fr, nil
}
