// Package worldmap derives gameplay metadata from the painted annotation
// layer: collision shapes, mount sides, breakable/collectible/reaction
// flags and special positions.
package worldmap

// Wire-format bit layout for metadata cells.  The runtime loader reads
// these exact values from the generated table, so they must never change
// without a matching loader update.
//
// Collision names refer to the one corner that is not occupied, which is
// also the direction of the surface normal: CollisionUpLeft means the
// upper left corner of the cell is passable.
const (
	CollisionMask      = 0x07
	CollisionNone      = 0x00
	CollisionSquare    = 0x01
	CollisionUpLeft    = 0x02
	CollisionUpRight   = 0x03
	CollisionDownLeft  = 0x04
	CollisionDownRight = 0x05

	// Breakable marks mutable collision tiles.  These are never mount
	// anchors: a mount on a tile that can be destroyed would strand the
	// player on a surface that no longer exists.
	Breakable = 0x08

	// Mount bits name the direction of the surface normal.  A square tile
	// can carry up to two opposite mounts; triangle tiles carry at most
	// their single diagonal pair.
	MountUp    = 0x10
	MountDown  = 0x20
	MountLeft  = 0x40
	MountRight = 0x80
	MountMask  = MountUp | MountDown | MountLeft | MountRight

	// Collectible bits name the approach direction for removing the item.
	// Classification sets all four; adjustment collapses them to exactly
	// one based on the adjacent wall.
	CollectibleUp    = 0x100
	CollectibleDown  = 0x200
	CollectibleLeft  = 0x400
	CollectibleRight = 0x800
	CollectibleMask  = CollectibleUp | CollectibleDown | CollectibleLeft | CollectibleRight

	// ChainReaction propagates a tile-removal wave to its neighbors;
	// TerminalReaction is removed by a neighboring wave but does not
	// continue it.  Mutually exclusive.
	ChainReaction    = 0x1000
	TerminalReaction = 0x2000

	// GhostCollision is internal to this tool.  Ghost tiles act as
	// collision during mount and approach derivation but lose their
	// collision bits before output, so they are passable at runtime while
	// still shaping mounts around them.
	GhostCollision = 0x4000
)
