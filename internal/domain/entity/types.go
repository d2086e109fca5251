package entity

// Point is a position in world pixels.
type Point struct {
	X, Y float64
}

// Platform is a static ledge. X and Y are its centre.
type Platform struct {
	X, Y          float64
	Width, Height float64
	Scale         float64
}

// Bounds returns the platform box as left, top, right, bottom.
func (p Platform) Bounds() (l, t, r, b float64) {
	return p.X - p.Width/2, p.Y - p.Height/2, p.X + p.Width/2, p.Y + p.Height/2
}

// StarRow lays stars out left to right at a fixed step.
type StarRow struct {
	Count int
	X, Y  float64
	StepX float64
}

// Positions returns the spawn point of every star in the row.
func (r StarRow) Positions() []Point {
	if r.Count <= 0 {
		return nil
	}
	pts := make([]Point, r.Count)
	for i := range pts {
		pts[i] = Point{X: r.X + float64(i)*r.StepX, Y: r.Y}
	}
	return pts
}

// Stage represents the current level layout
type Stage struct {
	ID        string
	Name      string
	Width     float64
	Height    float64
	Spawn     Point
	Platforms []Platform
	Stars     StarRow
}
