package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/casl/cpu"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	src := `
memory_size = MEMORY_SIZE_DEFAULT // 4
sources = ["main.cas", "/abs/lib.cas"]
breakpoints = ("LOOP", "#0010", 32)
input = "input.txt"
verbose = True
`
	man, err := Load(filepath.Join("proj", "build.star"), src)
	assert.NoError(err)
	if err != nil {
		return
	}

	assert.Equal(cpu.MEMORY_SIZE_DEFAULT/4, man.MemorySize)
	assert.Equal([]string{filepath.Join("proj", "main.cas"), "/abs/lib.cas"}, man.Sources)
	assert.Equal([]string{"LOOP", "#0010", "32"}, man.Breakpoints)
	assert.Equal(filepath.Join("proj", "input.txt"), man.Input)
	assert.True(man.Verbose)
	assert.Nil(man.InputLines)
}

func TestLoadInputLines(t *testing.T) {
	assert := assert.New(t)

	man, err := Load("lines.star", `input = ["12", "", "last line"]`)
	assert.NoError(err)
	if err != nil {
		return
	}

	assert.Equal("", man.Input)
	assert.Equal([]string{"12", "", "last line"}, man.InputLines)
}

func TestLoadDefaults(t *testing.T) {
	assert := assert.New(t)

	man, err := Load("empty.star", "")
	assert.NoError(err)
	assert.Equal(&Manifest{MemorySize: cpu.MEMORY_SIZE_DEFAULT}, man)
}

func TestLoadErrors(t *testing.T) {
	table := [](struct {
		src string
		key string
		err error
	}){
		{"memory_size = 0", "memory_size", ErrConfigRange},
		{"memory_size = MEMORY_SIZE_MAX + 1", "memory_size", ErrConfigRange},
		{"memory_size = '4096'", "memory_size", ErrConfigType},
		{"sources = 'main.cas'", "sources", ErrConfigType},
		{"sources = [1]", "sources", ErrConfigType},
		{"breakpoints = [-1]", "breakpoints", ErrConfigRange},
		{"breakpoints = [None]", "breakpoints", ErrConfigType},
		{"input = 5", "input", ErrConfigType},
		{"input = ['a', 1]", "input", ErrConfigType},
		{"verbose = 1", "verbose", ErrConfigType},
	}

	for _, entry := range table {
		t.Run(entry.src, func(t *testing.T) {
			assert := assert.New(t)

			man, err := Load("bad.star", entry.src)
			assert.Nil(man)
			assert.ErrorIs(err, entry.err)

			var ec *ErrConfig
			if assert.True(errors.As(err, &ec)) {
				assert.Equal(entry.key, ec.Key)
				assert.Equal("bad.star", ec.File)
			}
		})
	}
}

func TestLoadSyntax(t *testing.T) {
	assert := assert.New(t)

	man, err := Load("syntax.star", "memory_size = (")
	assert.Nil(man)

	var ec *ErrConfig
	assert.True(errors.As(err, &ec))
	assert.Equal("", ec.Key)
}
