package topology

var (
	squareOffsets    = []Offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	squareDirections = []Direction{Top, Right, Bottom, Left}
	squareWalls      = NewWallSet(squareDirections...)
)

// squareTopology is the 4-neighbour layout; every in-bounds coordinate is a cell.
type squareTopology struct{}

func (squareTopology) Kind() Kind              { return Square }
func (squareTopology) Offsets() []Offset       { return squareOffsets }
func (squareTopology) Directions() []Direction { return squareDirections }
func (squareTopology) Stride() int             { return 1 }
func (squareTopology) AllWalls() WallSet       { return squareWalls }

func (squareTopology) IsValid(c Coord, width, height int) bool {
	return inRect(c, width, height)
}

func (squareTopology) Supports(width, height int) bool {
	return width > 0 && height > 0
}
