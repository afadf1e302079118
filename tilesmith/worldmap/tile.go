package worldmap

// Shape is the collision shape of a cell.  Values match the wire-format
// collision bits, so packing is a plain conversion.
type Shape uint8

const (
	ShapeNone      Shape = CollisionNone
	ShapeSquare    Shape = CollisionSquare
	ShapeUpLeft    Shape = CollisionUpLeft
	ShapeUpRight   Shape = CollisionUpRight
	ShapeDownLeft  Shape = CollisionDownLeft
	ShapeDownRight Shape = CollisionDownRight
)

// Reaction is a cell's role in a chain reaction, if any.
type Reaction uint8

const (
	ReactionNone Reaction = iota
	ReactionChain
	ReactionTerminal
)

// Tile is the in-memory model of one metadata cell.  The disjoint bit
// groups of the wire format are kept as separate fields so that no stage
// can accidentally overlap them; Pack folds them back into the single
// integer the serializer and the runtime expect.
type Tile struct {
	Shape       Shape
	Mount       uint8 // MountUp..MountRight flags
	Breakable   bool
	Ghost       bool
	Reaction    Reaction
	Collectible int // CollectibleUp..CollectibleRight flags
}

// Pack returns the wire-format bitmask for the tile.
func (t Tile) Pack() int {
	bits := int(t.Shape) | int(t.Mount) | t.Collectible
	if t.Breakable {
		bits |= Breakable
	}
	if t.Ghost {
		bits |= GhostCollision
	}
	switch t.Reaction {
	case ReactionChain:
		bits |= ChainReaction
	case ReactionTerminal:
		bits |= TerminalReaction
	}
	return bits
}

// EmptyOrBreakable reports whether the tile counts as free space for
// clearance and approach purposes.  Breakable tiles count: the player can
// remove them to pass through.
func (t Tile) EmptyOrBreakable() bool {
	return t.Shape == ShapeNone || t.Breakable
}

// unbreakableSquare reports whether the tile is a permanent square wall,
// the only kind that can anchor a collectible's approach direction.
func (t Tile) unbreakableSquare() bool {
	return t.Shape == ShapeSquare && !t.Breakable
}
