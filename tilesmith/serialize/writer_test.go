package serialize

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voskhod/go-tilesmith/tilesmith/worldmap"
)

func tileTable(t *testing.T, name string, cells [][]int) string {
	t.Helper()
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeTileTable(w, name, cells)
	require.NoError(t, w.Flush())
	return buf.String()
}

func TestCoordinates(t *testing.T) {
	assert.Equal(t, "{}", Coordinates(nil))
	assert.Equal(t, "{{95, 80}, {112, 32}}", Coordinates([]worldmap.Point{
		{X: 95, Y: 80}, {X: 112, Y: 32},
	}))
}

func TestWriteTileTableBlankRun(t *testing.T) {
	got := tileTable(t, "bg", [][]int{{1, 0}, {0, 0}})
	// The trailing all-blank row is elided, so only two cells are
	// stored: the tile and a one-cell blank run.
	assert.Equal(t, "world.bg =\n{\n\t2,\n\t1, -1,\n}\n", got)
}

func TestWriteTileTablePairsIndices(t *testing.T) {
	got := tileTable(t, "bg", [][]int{{1, 2, 3}})
	// 1 and 2 pack into one slot, the odd 3 takes its own.
	assert.Equal(t, "world.bg =\n{\n\t3,\n\t65538, 3,\n}\n", got)
}

func TestWriteTileTableBlankRunFlushesPendingTile(t *testing.T) {
	got := tileTable(t, "bg", [][]int{{1, 0, 0, 2}})
	assert.Equal(t, "world.bg =\n{\n\t4,\n\t1, -2, 2,\n}\n", got)
}

func TestWriteTileTableAllBlank(t *testing.T) {
	got := tileTable(t, "bg", [][]int{{0, 0}, {0, 0}})
	// A fully blank layer still stores its first row.
	assert.Equal(t, "world.bg =\n{\n\t2,\n\t-2,\n}\n", got)
}

func TestWriteTileTableTenValuesPerLine(t *testing.T) {
	row := make([]int, 25)
	for i := range row {
		row[i] = i + 1
	}
	got := tileTable(t, "bg", [][]int{row})
	assert.Equal(t, "world.bg =\n{\n\t25,\n"+
		"\t65538, 196612, 327686, 458760, 589834, 720908, 851982, 983056, "+
		"1114130, 1245204,\n"+
		"\t1376278, 1507352, 25,\n}\n", got)
}

func TestWriteMetadataTable(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeMetadataTable(w, "meta", [][]int{{1, 8}, {4096, 0}})
	require.NoError(t, w.Flush())
	assert.Equal(t, "world.meta =\n{\n\t{1, 8},\n\t{4096, 0},\n}\n", buf.String())
}

func TestWriteTables(t *testing.T) {
	world := &World{
		Layers: []Layer{
			// Declared out of order; output is sorted by name.
			{Name: "metadata", Metadata: true, Cells: [][]int{{1, 0}}},
			{Name: "bg", Cells: [][]int{{1, 2}}},
		},
		Start:              []worldmap.Point{{X: 95, Y: 80}},
		Throwables:         []worldmap.Point{{X: 48, Y: 48}},
		ItemCount:          1,
		UniqueTileCount:    2,
		RemovableTileCount: 3,
		Width:              64,
		Height:             32,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTables(&buf, world))

	want := `world = world or {}
-- {{{ Constants
world.COLLISION_MASK = 7
world.COLLISION_NONE = 0
world.COLLISION_SQUARE = 1
world.COLLISION_UP_LEFT = 2
world.COLLISION_UP_RIGHT = 3
world.COLLISION_DOWN_LEFT = 4
world.COLLISION_DOWN_RIGHT = 5
world.MOUNT_MASK = 240
world.MOUNT_UP = 16
world.MOUNT_DOWN = 32
world.MOUNT_LEFT = 64
world.MOUNT_RIGHT = 128
world.BREAKABLE = 8
world.COLLECTIBLE_UP = 256
world.COLLECTIBLE_DOWN = 512
world.COLLECTIBLE_LEFT = 1024
world.COLLECTIBLE_RIGHT = 2048
world.COLLECTIBLE_MASK = 3840
world.CHAIN_REACTION = 4096
world.TERMINAL_REACTION = 8192
world.START = {{95, 80}}
world.TELEPORT_POSITIONS = {}
world.INIT_BALLS = {{48, 48}}
-- }}} End constants
-- {{{ Map info
world.ITEM_COUNT = 1
world.UNIQUE_TILE_COUNT = 2
world.REMOVABLE_TILE_COUNT = 3
world.WIDTH = 64
world.HEIGHT = 32
-- }}} End map info
world.bg =
{
	2,
	65538,
}
world.metadata =
{
	{1, 0},
}
`
	assert.Equal(t, want, buf.String())
}
