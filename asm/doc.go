// Package asm implements the CASL II assembler and linker.
//
// Source is assembled one line at a time into an Image, which owns the
// memory image and the symbol tables. Each source file is one link unit:
// call Image.Snapshot after every file so that local labels of different
// files do not collide. Labels declared with START, and literal constants
// (=5, =#00FF, ='A'), are visible to every unit. Image.End resolves all
// symbol references in place, leaving an image the cpu package can run.
//
// Every source line produces a Line debug record, collected per file in a
// Program.
package asm
