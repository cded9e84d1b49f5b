package topology

var (
	hexOffsets    = []Offset{{1, 1}, {2, 0}, {1, -1}, {-1, -1}, {-2, 0}, {-1, 1}}
	hexDirections = []Direction{TopRight, Right, BottomRight, BottomLeft, Left, TopLeft}
	hexWalls      = NewWallSet(hexDirections...)
)

// hexTopology is the 6-neighbour layout in doubled coordinates.
// See https://www.redblobgames.com/grids/hexagons/#coordinates-doubled
type hexTopology struct{}

func (hexTopology) Kind() Kind              { return Hexagon }
func (hexTopology) Offsets() []Offset       { return hexOffsets }
func (hexTopology) Directions() []Direction { return hexDirections }
func (hexTopology) Stride() int             { return 2 }
func (hexTopology) AllWalls() WallSet       { return hexWalls }

// IsValid requires matching parity: (2,4) and (1,3) are cells, (2,3) is not.
func (hexTopology) IsValid(c Coord, width, height int) bool {
	return inRect(c, width, height) && mod2(c.X) == mod2(c.Y)
}

// Supports rejects a single doubled column taller than one row: (0,0) and
// (0,2) are both cells but not neighbours.
func (hexTopology) Supports(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	return width >= 2 || height == 1
}

func mod2(v int) int {
	return v & 1
}
