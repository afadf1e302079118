// Package serialize emits the compiled world as a Lua source file plus a
// packed atlas image.  The text format is a fixed contract with the
// runtime loader: constants, position lists, map info, then one table per
// layer in sorted name order.
package serialize

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/voskhod/go-tilesmith/tilesmith/worldmap"
)

// Layer is one output table.  For tile layers Cells holds 1-based atlas
// indices with 0 for blank; for metadata layers it holds packed bitmasks.
type Layer struct {
	Name     string
	Metadata bool
	Cells    [][]int
}

// World is everything that goes into the table file.
type World struct {
	Layers             []Layer
	Start              []worldmap.Point
	Teleport           []worldmap.Point
	Throwables         []worldmap.Point
	ItemCount          int
	UniqueTileCount    int
	RemovableTileCount int
	Width              int // pixels
	Height             int // pixels
}

// WriteTables writes the complete table file.
func WriteTables(w io.Writer, world *World) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "world = world or {}\n-- {{{ Constants\n")
	fmt.Fprintf(bw,
		"world.COLLISION_MASK = %d\n"+
			"world.COLLISION_NONE = %d\n"+
			"world.COLLISION_SQUARE = %d\n"+
			"world.COLLISION_UP_LEFT = %d\n"+
			"world.COLLISION_UP_RIGHT = %d\n"+
			"world.COLLISION_DOWN_LEFT = %d\n"+
			"world.COLLISION_DOWN_RIGHT = %d\n",
		worldmap.CollisionMask,
		worldmap.CollisionNone,
		worldmap.CollisionSquare,
		worldmap.CollisionUpLeft,
		worldmap.CollisionUpRight,
		worldmap.CollisionDownLeft,
		worldmap.CollisionDownRight)
	fmt.Fprintf(bw,
		"world.MOUNT_MASK = %d\n"+
			"world.MOUNT_UP = %d\n"+
			"world.MOUNT_DOWN = %d\n"+
			"world.MOUNT_LEFT = %d\n"+
			"world.MOUNT_RIGHT = %d\n",
		worldmap.MountMask,
		worldmap.MountUp,
		worldmap.MountDown,
		worldmap.MountLeft,
		worldmap.MountRight)
	fmt.Fprintf(bw,
		"world.BREAKABLE = %d\n"+
			"world.COLLECTIBLE_UP = %d\n"+
			"world.COLLECTIBLE_DOWN = %d\n"+
			"world.COLLECTIBLE_LEFT = %d\n"+
			"world.COLLECTIBLE_RIGHT = %d\n"+
			"world.COLLECTIBLE_MASK = %d\n"+
			"world.CHAIN_REACTION = %d\n"+
			"world.TERMINAL_REACTION = %d\n",
		worldmap.Breakable,
		worldmap.CollectibleUp,
		worldmap.CollectibleDown,
		worldmap.CollectibleLeft,
		worldmap.CollectibleRight,
		worldmap.CollectibleMask,
		worldmap.ChainReaction,
		worldmap.TerminalReaction)
	fmt.Fprintf(bw,
		"world.START = %s\n"+
			"world.TELEPORT_POSITIONS = %s\n"+
			"world.INIT_BALLS = %s\n"+
			"-- }}} End constants\n"+
			"-- {{{ Map info\n"+
			"world.ITEM_COUNT = %d\n"+
			"world.UNIQUE_TILE_COUNT = %d\n"+
			"world.REMOVABLE_TILE_COUNT = %d\n"+
			"world.WIDTH = %d\n"+
			"world.HEIGHT = %d\n"+
			"-- }}} End map info\n",
		Coordinates(world.Start),
		Coordinates(world.Teleport),
		Coordinates(world.Throwables),
		world.ItemCount,
		world.UniqueTileCount,
		world.RemovableTileCount,
		world.Width,
		world.Height)

	layers := make([]Layer, len(world.Layers))
	copy(layers, world.Layers)
	sort.Slice(layers, func(i, j int) bool { return layers[i].Name < layers[j].Name })
	for _, layer := range layers {
		if layer.Metadata {
			writeMetadataTable(bw, layer.Name, layer.Cells)
		} else {
			writeTileTable(bw, layer.Name, layer.Cells)
		}
	}
	return bw.Flush()
}

// Coordinates formats a position list as a Lua table literal.
func Coordinates(points []worldmap.Point) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range points {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "{%d, %d}", p.X, p.Y)
	}
	b.WriteByte('}')
	return b.String()
}

// lastNonBlankRow returns the index of the last row containing at least
// one non-blank cell, or 0 when the whole layer is blank.
func lastNonBlankRow(cells [][]int) int {
	for row := len(cells) - 1; row > 0; row-- {
		for _, cell := range cells[row] {
			if cell != 0 {
				return row
			}
		}
	}
	return 0
}

// maxBlankRun keeps run lengths inside signed 16 bits.  Runs always take
// a full 32-bit slot so larger spans would decode fine, but the 16-bit
// cap leaves room for switching packing schemes later.
const maxBlankRun = 0x7fff

// writeTileTable emits one run-length-encoded tile layer.  Blank cells
// are stored as a negative run count; non-blank indices are packed two
// per 32-bit slot (first in the high 16 bits).  Rows are stored top to
// bottom and trailing all-blank rows are simply not stored, which saves
// load time and memory on the handheld.  The leading entry is the number
// of cells actually stored.
func writeTileTable(w *bufio.Writer, name string, cells [][]int) {
	scanLimit := lastNonBlankRow(cells) + 1
	fmt.Fprintf(w, "world.%s =\n{\n\t%d,\n", name, scanLimit*len(cells[0]))

	tw := tableWriter{w: w}
	blank := 0
	for i := 0; i < scanLimit; i++ {
		for _, cell := range cells[i] {
			if cell == 0 {
				if blank == maxBlankRun {
					tw.writeBlankRun(blank)
					blank = 0
				}
				blank++
				continue
			}
			if blank > 0 {
				tw.writeBlankRun(blank)
				blank = 0
			}
			tw.writeTile(cell)
		}
	}
	if blank > 0 {
		tw.writeBlankRun(blank)
	}
	tw.flush()
	w.WriteString("}\n")
}

// writeMetadataTable emits one metadata layer as a plain row-major matrix
// of bitmask integers, one grid row per line.
func writeMetadataTable(w *bufio.Writer, name string, cells [][]int) {
	fmt.Fprintf(w, "world.%s =\n{\n", name)
	for _, row := range cells {
		for i, cell := range row {
			if i == 0 {
				fmt.Fprintf(w, "\t{%d", cell)
			} else {
				fmt.Fprintf(w, ", %d", cell)
			}
		}
		w.WriteString("},\n")
	}
	w.WriteString("}\n")
}

// tableWriter packs tile table entries: blank runs flush any pending
// value, tile indices pair up two per slot.  Ten entries per text line.
// A pending value of 0 means empty, which is unambiguous because tile
// indices are 1-based.
type tableWriter struct {
	w       *bufio.Writer
	lineLen int
	pending int
}

func (t *tableWriter) writeBlankRun(count int) {
	t.flushPending()
	t.write(-count)
}

func (t *tableWriter) writeTile(tile int) {
	if t.pending == 0 {
		t.pending = tile
		return
	}
	t.write((t.pending << 16) | tile)
	t.pending = 0
}

func (t *tableWriter) flush() {
	t.flushPending()
	if t.lineLen > 0 {
		t.w.WriteByte('\n')
	}
}

func (t *tableWriter) flushPending() {
	if t.pending != 0 {
		t.write(t.pending)
		t.pending = 0
	}
}

func (t *tableWriter) write(value int) {
	if t.lineLen == 0 {
		fmt.Fprintf(t.w, "\t%d,", value)
	} else {
		fmt.Fprintf(t.w, " %d,", value)
	}
	t.lineLen++
	if t.lineLen == 10 {
		t.w.WriteByte('\n')
		t.lineLen = 0
	}
}
