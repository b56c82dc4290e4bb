package model

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	clearScreen = "\033[H\033[2J"

	colorAlive = "\033[38;5;45m██\033[0m"
	colorDead  = "\033[38;5;23m██\033[0m"
)

// Glyphs maps each cell state to the text drawn for it
type Glyphs struct {
	Alive string
	Dead  string
}

var glyphSets = map[string]Glyphs{
	"text":  {Alive: "@", Dead: " "},
	"block": {Alive: "██", Dead: "  "},
	"color": {Alive: colorAlive, Dead: colorDead},
}

// ErrUnknownGlyphs is returned for a glyph set name that is not registered
var ErrUnknownGlyphs = errors.New("unknown glyph set")

// LookupGlyphs returns the named glyph set: text, block or color
func LookupGlyphs(name string) (Glyphs, error) {
	g, ok := glyphSets[name]
	if !ok {
		return Glyphs{}, errors.Wrapf(ErrUnknownGlyphs, "[LookupGlyphs] %q", name)
	}
	return g, nil
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	out    io.Writer
	glyphs Glyphs
}

func NewTerminalRenderer(out io.Writer, glyphs Glyphs) *TerminalRenderer {
	return &TerminalRenderer{out: out, glyphs: glyphs}
}

// Display renders the board, one row per line
func (r *TerminalRenderer) Display(b *Board) error {
	w := bufio.NewWriter(r.out)
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x].IsAlive() {
				w.WriteString(r.glyphs.Alive)
			} else {
				w.WriteString(r.glyphs.Dead)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write board")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := fmt.Fprint(r.out, clearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
