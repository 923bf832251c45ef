// Package config loads build manifests.
//
// A manifest is a Starlark file that sets some of these globals:
//
//	memory_size = 4096                # words of memory
//	sources = ["main.cas", "io.cas"]  # link order
//	breakpoints = ["LOOP", "#0010", 32]
//	input = "input.txt"               # console input, instead of stdin
//	input = ["line 1", "line 2"]      # or the console input lines
//	verbose = False
//
// Paths are relative to the manifest. MEMORY_SIZE_DEFAULT and
// MEMORY_SIZE_MAX are predeclared.
package config

import (
	"fmt"
	"log"
	"path/filepath"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/casl/cpu"
)

// Manifest is a loaded build manifest.
type Manifest struct {
	MemorySize  int
	Sources     []string
	Breakpoints []string
	Input       string   // Console input file.
	InputLines  []string // Console input lines, when input is a list.
	Verbose     bool
}

var predeclared = starlark.StringDict{
	"MEMORY_SIZE_DEFAULT": starlark.MakeInt(cpu.MEMORY_SIZE_DEFAULT),
	"MEMORY_SIZE_MAX":     starlark.MakeInt(cpu.MEMORY_SIZE_MAX),
}

// Load evaluates a manifest. If src is nil, the manifest is read from
// filename; otherwise src is a string, []byte or io.Reader.
func Load(filename string, src any) (man *Manifest, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("config: %v", msg)
		},
	}

	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, filename, src, predeclared)
	if err != nil {
		err = &ErrConfig{File: filename, Err: err}
		return
	}

	ld := &loader{file: filename, globals: globals}
	dir := filepath.Dir(filename)

	man = &Manifest{
		MemorySize: cpu.MEMORY_SIZE_DEFAULT,
	}

	if size, ok := ld.getInt("memory_size"); ok {
		if size < 1 || size > cpu.MEMORY_SIZE_MAX {
			ld.fail("memory_size", ErrConfigRange)
		}
		man.MemorySize = size
	}

	for _, name := range ld.getList("sources") {
		str, ok := name.(starlark.String)
		if !ok {
			ld.fail("sources", ErrConfigType)
			break
		}
		man.Sources = append(man.Sources, resolve(dir, string(str)))
	}

	for _, where := range ld.getList("breakpoints") {
		switch v := where.(type) {
		case starlark.String:
			man.Breakpoints = append(man.Breakpoints, string(v))
		case starlark.Int:
			addr, ok := v.Int64()
			if !ok || addr < 0 || addr > cpu.MEMORY_SIZE_MAX {
				ld.fail("breakpoints", ErrConfigRange)
				continue
			}
			man.Breakpoints = append(man.Breakpoints, fmt.Sprintf("%d", addr))
		default:
			ld.fail("breakpoints", ErrConfigType)
		}
	}

	switch input := ld.globals["input"].(type) {
	case nil:
	case starlark.String:
		man.Input = resolve(dir, string(input))
	case *starlark.List, starlark.Tuple:
		for _, line := range ld.getList("input") {
			str, ok := line.(starlark.String)
			if !ok {
				ld.fail("input", ErrConfigType)
				break
			}
			man.InputLines = append(man.InputLines, string(str))
		}
	default:
		ld.fail("input", ErrConfigType)
	}

	if verbose, ok := ld.getBool("verbose"); ok {
		man.Verbose = verbose
	}

	if ld.err != nil {
		man = nil
		err = ld.err
	}

	return
}

func resolve(dir string, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// loader extracts typed globals, keeping the first error.
type loader struct {
	file    string
	globals starlark.StringDict
	err     error
}

func (ld *loader) fail(key string, err error) {
	if ld.err == nil {
		ld.err = &ErrConfig{File: ld.file, Key: key, Err: err}
	}
}

func (ld *loader) getInt(key string) (value int, ok bool) {
	v, found := ld.globals[key]
	if !found {
		return
	}

	i, isInt := v.(starlark.Int)
	if !isInt {
		ld.fail(key, ErrConfigType)
		return
	}

	i64, fits := i.Int64()
	if !fits || i64 < -1<<31 || i64 >= 1<<31 {
		ld.fail(key, ErrConfigRange)
		return
	}

	value = int(i64)
	ok = true
	return
}

func (ld *loader) getString(key string) (value string, ok bool) {
	v, found := ld.globals[key]
	if !found {
		return
	}

	str, isString := v.(starlark.String)
	if !isString {
		ld.fail(key, ErrConfigType)
		return
	}

	value = string(str)
	ok = true
	return
}

func (ld *loader) getBool(key string) (value bool, ok bool) {
	v, found := ld.globals[key]
	if !found {
		return
	}

	b, isBool := v.(starlark.Bool)
	if !isBool {
		ld.fail(key, ErrConfigType)
		return
	}

	value = bool(b)
	ok = true
	return
}

// getList returns the elements of a list or tuple.
func (ld *loader) getList(key string) (values []starlark.Value) {
	v, found := ld.globals[key]
	if !found {
		return
	}

	var seq starlark.Indexable
	switch x := v.(type) {
	case *starlark.List:
		seq = x
	case starlark.Tuple:
		seq = x
	default:
		ld.fail(key, ErrConfigType)
		return
	}

	for n := range seq.Len() {
		values = append(values, seq.Index(n))
	}
	return
}
