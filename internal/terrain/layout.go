package terrain

import "github.com/go-gl/mathgl/mgl32"

// Offset-grid spacing for hexagons of unit circumradius. Odd rows shift by
// half a column.
const (
	HorizontalSpacing = 1.77
	VerticalSpacing   = 1.535
)

// TileCoord identifies a hexagon in the offset grid.
type TileCoord struct {
	Col, Row int
}

// TileToPosition maps a tile to its world (x, z) center. The row parity uses
// Go's truncated remainder, so odd negative rows shift left instead of right.
func TileToPosition(col, row int) mgl32.Vec2 {
	x := (float64(col) + float64(row%2)*0.5) * HorizontalSpacing
	z := float64(row) * VerticalSpacing
	return mgl32.Vec2{float32(x), float32(z)}
}

// Position is TileToPosition for a TileCoord.
func (c TileCoord) Position() mgl32.Vec2 {
	return TileToPosition(c.Col, c.Row)
}
