package asm

import (
	"cmp"
	"fmt"
	"iter"
	"log"
	"slices"
	"strings"

	"github.com/ezrec/casl/cpu"
	"github.com/ezrec/casl/internal"
)

// ItemKind selects the content of an Item.
type ItemKind int

const (
	ITEM_OP        = ItemKind(iota) // Instruction word.
	ITEM_DATA                       // Data word.
	ITEM_BYTES                      // One word per byte.
	ITEM_RESERVE                    // Zero filled block.
	ITEM_SYM_DEF                    // Local label at the current offset.
	ITEM_SYM_START                  // Extern label at the current offset.
	ITEM_SYM_REF                    // Placeholder word, patched by End().
	ITEM_SYM_CONST                  // Placeholder word for a literal constant.
)

// Item is a single unit of content appended to an Image.
type Item struct {
	Kind  ItemKind
	Value uint16
	Bytes []byte
	Count int
	Name  string
}

// Op is an instruction word item.
func Op(w cpu.Word) Item {
	return Item{Kind: ITEM_OP, Value: uint16(w)}
}

// Data is a data word item.
func Data(value uint16) Item {
	return Item{Kind: ITEM_DATA, Value: value}
}

// Bytes is a string item, stored one byte per word.
func Bytes(data []byte) Item {
	return Item{Kind: ITEM_BYTES, Bytes: data}
}

// Reserve is a block of zero words.
func Reserve(count int) Item {
	return Item{Kind: ITEM_RESERVE, Count: count}
}

// SymDef defines a local label.
func SymDef(name string) Item {
	return Item{Kind: ITEM_SYM_DEF, Name: name}
}

// SymStart defines an extern label.
func SymStart(name string) Item {
	return Item{Kind: ITEM_SYM_START, Name: name}
}

// SymRef references a label.
func SymRef(name string) Item {
	return Item{Kind: ITEM_SYM_REF, Name: name}
}

// SymConst references a literal constant, spelled as name.
func SymConst(name string, value uint16) Item {
	return Item{Kind: ITEM_SYM_CONST, Name: name, Value: value}
}

// Size is the number of memory words the item occupies.
func (item Item) Size() int {
	switch item.Kind {
	case ITEM_OP, ITEM_DATA, ITEM_SYM_REF, ITEM_SYM_CONST:
		return 1
	case ITEM_BYTES:
		return len(item.Bytes)
	case ITEM_RESERVE:
		return item.Count
	default:
		return 0
	}
}

// Symbol is a name bound to an image offset. For references, the offset is
// the word to patch.
type Symbol struct {
	Name   string
	Offset uint16
}

// Unit is the closed symbol tables of one link unit.
type Unit struct {
	Defs []Symbol
	Refs []Symbol
}

type constant struct {
	Name  string
	Value uint16
}

// Image is a memory image being assembled, with its symbol tables.
type Image struct {
	Verbose bool       // If set, log linking actions.
	Memory  cpu.Memory // Image contents.

	offset  int
	defs    []Symbol
	refs    []Symbol
	externs []Symbol
	consts  []constant
	units   []Unit
}

// NewImage creates an image that assembles into mem.
func NewImage(mem cpu.Memory) (img *Image) {
	img = &Image{Memory: mem}
	return
}

// Reset clears the image contents and all symbol tables.
func (img *Image) Reset() {
	clear(img.Memory)
	img.offset = 0
	img.defs = nil
	img.refs = nil
	img.externs = nil
	img.consts = nil
	img.units = nil
}

// Offset is the next word to be written.
func (img *Image) Offset() uint16 {
	return uint16(img.offset)
}

// Used is the number of words written.
func (img *Image) Used() int {
	return img.offset
}

func (img *Image) put(value uint16) {
	img.Memory[img.offset] = value
	img.offset++
}

// Emit appends items to the image. Either all items are appended, or none
// are and ErrImageFull is returned.
func (img *Image) Emit(items ...Item) (err error) {
	need := 0
	for _, item := range items {
		if item.Kind == ITEM_RESERVE && item.Count < 0 {
			err = ErrReserveNegative
			return
		}
		need += item.Size()
	}

	if img.offset+need > len(img.Memory) {
		err = ErrImageFull
		return
	}

	for _, item := range items {
		here := Symbol{Name: item.Name, Offset: img.Offset()}
		switch item.Kind {
		case ITEM_OP, ITEM_DATA:
			img.put(item.Value)
		case ITEM_BYTES:
			for _, b := range item.Bytes {
				img.put(uint16(b))
			}
		case ITEM_RESERVE:
			for range item.Count {
				img.put(0)
			}
		case ITEM_SYM_DEF:
			img.defs = append(img.defs, here)
		case ITEM_SYM_START:
			img.externs = append(img.externs, here)
		case ITEM_SYM_REF:
			img.refs = append(img.refs, here)
			img.put(0)
		case ITEM_SYM_CONST:
			img.refs = append(img.refs, here)
			img.consts = append(img.consts, constant{Name: item.Name, Value: item.Value})
			img.put(0)
		}
	}

	return
}

func findSymbol(table []Symbol, name string) (offset uint16, ok bool) {
	n := slices.IndexFunc(table, func(sym Symbol) bool { return sym.Name == name })
	if n < 0 {
		return
	}

	offset = table[n].Offset
	ok = true
	return
}

// Defined returns true if name is already an extern, or a label of the
// current unit.
func (img *Image) Defined(name string) (ok bool) {
	_, ok = findSymbol(img.externs, name)
	if !ok {
		_, ok = findSymbol(img.defs, name)
	}
	return
}

// Snapshot closes the current link unit, and opens an empty one.
func (img *Image) Snapshot() {
	img.units = append(img.units, Unit{Defs: img.defs, Refs: img.refs})
	img.defs = nil
	img.refs = nil
}

// Units returns the number of closed link units.
func (img *Image) Units() int {
	return len(img.units)
}

// linkUnits returns the units to resolve: the closed units, or the implicit
// unit if there was never a snapshot.
func (img *Image) linkUnits() []Unit {
	if len(img.units) == 0 {
		return []Unit{{Defs: img.defs, Refs: img.refs}}
	}
	return img.units
}

// placeConstants appends each distinct literal value to the image, and
// defines every spelling of it as an extern.
func (img *Image) placeConstants() {
	slices.SortFunc(img.consts, func(a, b constant) int {
		return cmp.Or(cmp.Compare(a.Value, b.Value), strings.Compare(a.Name, b.Name))
	})
	img.consts = slices.Compact(img.consts)

	placed := false
	var value, at uint16
	for _, c := range img.consts {
		if !placed || c.Value != value {
			if img.offset >= len(img.Memory) {
				// No room; the references stay unresolved.
				placed = false
				continue
			}
			at = img.Offset()
			img.put(c.Value)
			value = c.Value
			placed = true
		}
		if img.Verbose {
			log.Printf("asm: const %v = #%04X at #%04X", c.Name, c.Value, at)
		}
		img.externs = append(img.externs, Symbol{Name: c.Name, Offset: at})
	}

	img.consts = nil
}

// End places the literal constants and resolves every reference in place.
// It returns false if any reference could not be resolved.
func (img *Image) End() (ok bool) {
	if len(img.units) > 0 && (len(img.defs) > 0 || len(img.refs) > 0) {
		img.Snapshot()
	}

	img.placeConstants()

	ok = true
	for n, unit := range img.linkUnits() {
		for _, ref := range unit.Refs {
			offset, found := findSymbol(img.externs, ref.Name)
			if !found {
				offset, found = findSymbol(unit.Defs, ref.Name)
			}
			if !found {
				if img.Verbose {
					log.Printf("asm: unit %d: %v at #%04X unresolved", n, ref.Name, ref.Offset)
				}
				ok = false
				continue
			}
			img.Memory[ref.Offset] = offset
		}
	}

	return
}

// FindSymbol looks up a label: externs first, then the local labels of
// each unit in order. A missing symbol has the offset 0xFFFF.
func (img *Image) FindSymbol(name string) (offset uint16, ok bool) {
	offset, ok = findSymbol(img.externs, name)
	if ok {
		return
	}

	for _, unit := range img.linkUnits() {
		offset, ok = findSymbol(unit.Defs, name)
		if ok {
			return
		}
	}

	offset = 0xffff
	return
}

// Unresolved yields the unit index and reference of every symbol reference
// that End() could not resolve.
func (img *Image) Unresolved() iter.Seq2[int, Symbol] {
	return func(yield func(int, Symbol) bool) {
		for n, unit := range img.linkUnits() {
			for _, ref := range unit.Refs {
				if _, ok := findSymbol(img.externs, ref.Name); ok {
					continue
				}
				if _, ok := findSymbol(unit.Defs, ref.Name); ok {
					continue
				}
				if !yield(n, ref) {
					return
				}
			}
		}
	}
}

func symbolSeq(table []Symbol) iter.Seq2[string, uint16] {
	return func(yield func(string, uint16) bool) {
		for _, sym := range table {
			if !yield(sym.Name, sym.Offset) {
				return
			}
		}
	}
}

// Symbols yields every defined symbol and its offset: the externs, then
// the labels of each unit.
func (img *Image) Symbols() iter.Seq2[string, uint16] {
	seqs := []iter.Seq2[string, uint16]{symbolSeq(img.externs)}
	for _, unit := range img.linkUnits() {
		seqs = append(seqs, symbolSeq(unit.Defs))
	}
	return internal.IterSeq2Concat(seqs...)
}

// Dump formats the used part of the image, eight words per line.
func (img *Image) Dump() (text string) {
	var sb strings.Builder
	for addr := 0; addr < img.offset; addr += 8 {
		fmt.Fprintf(&sb, "#%04X:", addr)
		for n := addr; n < min(addr+8, img.offset); n++ {
			fmt.Fprintf(&sb, " %04X", img.Memory[n])
		}
		sb.WriteString("\n")
	}
	text = sb.String()
	return
}
