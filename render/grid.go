package render

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"relativity/game"
)

const (
	// Grid cells, not vertices; vertex counts are one higher.
	GridCols = 40
	GridRows = 24

	VertexCols = GridCols + 1
	VertexRows = GridRows + 1

	// MaxDisplacementPx is the hard cap on how far a vertex shifts toward a
	// mass.
	MaxDisplacementPx = 80.0

	// displacementScale multiplies the log-compressed field magnitude.
	displacementScale = 18.0

	// refFieldAccel normalizes field magnitudes (km/s²) before log scaling.
	// Picked so earth-mass wells warp subtly and solar-mass wells funnel.
	refFieldAccel = 0.05

	// nearMassCapFraction bounds displacement by this share of the pixel
	// distance to the nearest mass, preventing overshoot past the mass.
	nearMassCapFraction = 0.5

	// minVertexSpacingPx is the floor the topology pass enforces between
	// adjacent vertices along each grid axis.
	minVertexSpacingPx = 2.0
)

// Vertex is one displaced grid point in screen pixels.
type Vertex struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Displacement float64 `json:"d"`
}

// Segment joins two vertices (indices into Grid.Vertices) with a
// curvature-heat color.
type Segment struct {
	A     int  `json:"a"`
	B     int  `json:"b"`
	Color RGBA `json:"color"`
}

// Grid is the warped wireframe overlay, vertices in row-major order.
type Grid struct {
	Vertices []Vertex `json:"vertices"`
	maxDisp  float64
}

// BuildGrid displaces a screen-spanning vertex grid toward the combined
// gravity field and then enforces minimum spacing so grid lines never cross,
// producing a funnel rather than a self-intersecting mesh.
func BuildGrid(bodies []*game.Body) *Grid {
	g := &Grid{Vertices: make([]Vertex, 0, VertexRows*VertexCols)}

	for row := 0; row < VertexRows; row++ {
		for col := 0; col < VertexCols; col++ {
			fx := float64(col) / float64(GridCols)
			fy := float64(row) / float64(GridRows)
			g.Vertices = append(g.Vertices, displaceVertex(fx, fy, bodies))
		}
	}

	g.enforceSpacing()

	for _, v := range g.Vertices {
		g.maxDisp = math.Max(g.maxDisp, v.Displacement)
	}

	return g
}

// displaceVertex shifts one grid point toward the local field direction by a
// log-compressed, doubly-capped amount.
func displaceVertex(fx, fy float64, bodies []*game.Body) Vertex {
	wx := fx * game.ScreenWidthKm
	wy := fy * ScreenHeightKm

	baseX := fx * ScreenWidthPx
	baseY := fy * ScreenHeightPx

	mag, dirX, dirY := game.FieldAt(wx, wy, bodies)
	if mag == 0 {
		return Vertex{X: baseX, Y: baseY}
	}

	disp := math.Log1p(mag/refFieldAccel) * displacementScale
	if disp > MaxDisplacementPx {
		disp = MaxDisplacementPx
	}
	if limit := nearestMassPx(baseX, baseY, bodies) * nearMassCapFraction; disp > limit {
		disp = limit
	}

	return Vertex{X: baseX + dirX*disp, Y: baseY + dirY*disp, Displacement: disp}
}

func nearestMassPx(px, py float64, bodies []*game.Body) float64 {
	nearest := math.Inf(1)
	for _, b := range bodies {
		if b.Mass <= 0 {
			continue
		}
		bx, by := ScreenFromWorld(b.X, b.Y)
		nearest = math.Min(nearest, math.Hypot(bx-px, by-py))
	}
	return nearest
}

// enforceSpacing sweeps every row forward then backward along x, and every
// column forward then backward along y. The backward sweep leaves each
// coordinate strictly below its successor minus the spacing floor, so rows
// stay increasing in x and columns increasing in y.
func (g *Grid) enforceSpacing() {
	idx := func(row, col int) int { return row*VertexCols + col }

	for row := 0; row < VertexRows; row++ {
		for col := 1; col < VertexCols; col++ {
			prev := g.Vertices[idx(row, col-1)].X
			if v := &g.Vertices[idx(row, col)]; v.X < prev+minVertexSpacingPx {
				v.X = prev + minVertexSpacingPx
			}
		}
		for col := VertexCols - 2; col >= 0; col-- {
			next := g.Vertices[idx(row, col+1)].X
			if v := &g.Vertices[idx(row, col)]; v.X > next-minVertexSpacingPx {
				v.X = next - minVertexSpacingPx
			}
		}
	}

	for col := 0; col < VertexCols; col++ {
		for row := 1; row < VertexRows; row++ {
			prev := g.Vertices[idx(row-1, col)].Y
			if v := &g.Vertices[idx(row, col)]; v.Y < prev+minVertexSpacingPx {
				v.Y = prev + minVertexSpacingPx
			}
		}
		for row := VertexRows - 2; row >= 0; row-- {
			next := g.Vertices[idx(row+1, col)].Y
			if v := &g.Vertices[idx(row, col)]; v.Y > next-minVertexSpacingPx {
				v.Y = next - minVertexSpacingPx
			}
		}
	}
}

// Segments returns the horizontal then vertical wireframe segments, colored
// by the average endpoint displacement.
func (g *Grid) Segments() []Segment {
	segs := make([]Segment, 0, VertexRows*GridCols+GridRows*VertexCols)
	idx := func(row, col int) int { return row*VertexCols + col }

	for row := 0; row < VertexRows; row++ {
		for col := 0; col < GridCols; col++ {
			a, b := idx(row, col), idx(row, col+1)
			segs = append(segs, Segment{A: a, B: b, Color: g.segmentColor(a, b)})
		}
	}
	for row := 0; row < GridRows; row++ {
		for col := 0; col < VertexCols; col++ {
			a, b := idx(row, col), idx(row+1, col)
			segs = append(segs, Segment{A: a, B: b, Color: g.segmentColor(a, b)})
		}
	}
	return segs
}

// Grid heat anchors: flat space is a faint blue, deep wells glow orange.
var (
	gridCoolAnchor = colorful.Color{R: 0.2, G: 0.4, B: 1.0}
	gridMidAnchor  = colorful.Color{R: 0.6, G: 0.2, B: 0.8}
	gridWarmAnchor = colorful.Color{R: 1.0, G: 0.4, B: 0.1}
)

func (g *Grid) segmentColor(a, b int) RGBA {
	max := g.maxDisp
	if max < 1e-6 {
		max = 1.0
	}

	t := (g.Vertices[a].Displacement + g.Vertices[b].Displacement) * 0.5 / max
	if t > 1 {
		t = 1
	}

	var c colorful.Color
	if t < 0.5 {
		c = gridCoolAnchor.BlendRgb(gridMidAnchor, t*2.0)
	} else {
		c = gridMidAnchor.BlendRgb(gridWarmAnchor, (t-0.5)*2.0)
	}

	// Faint in flat regions, brighter near masses.
	return RGBA{R: c.R, G: c.G, B: c.B, A: 0.08 + 0.45*t}
}
