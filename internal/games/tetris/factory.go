package tetris

import "fmt"

// RandomSource picks an index in [0, n). *math/rand.Rand satisfies it, and
// tests substitute a deterministic sequence.
type RandomSource interface {
	Intn(n int) int
}

// Spawn position shared by the catalog. Three-wide pieces pivot on a cell,
// I and O pivot between cells.
const (
	spawnLine       = 0
	spawnColumn     = 4
	spawnHalfLine   = -0.5
	spawnHalfColumn = 4.5
)

// Classic returns the standard seven-piece catalog in spawn orientation.
// Every piece spawns with its lowest row on line 0; the rest hangs above
// the board and drops into view.
func Classic() []*Shape {
	return []*Shape{
		NewShape("I", "cyan", spawnHalfLine, spawnHalfColumn, []Offset{
			{0.5, -1.5}, {0.5, -0.5}, {0.5, 0.5}, {0.5, 1.5},
		}),
		NewShape("O", "yellow", spawnHalfLine, spawnHalfColumn, []Offset{
			{-0.5, -0.5}, {-0.5, 0.5}, {0.5, -0.5}, {0.5, 0.5},
		}),
		NewShape("T", "magenta", spawnLine, spawnColumn, []Offset{
			{0, -1}, {0, 0}, {0, 1}, {-1, 0},
		}),
		NewShape("S", "green", spawnLine, spawnColumn, []Offset{
			{0, -1}, {0, 0}, {-1, 0}, {-1, 1},
		}),
		NewShape("Z", "red", spawnLine, spawnColumn, []Offset{
			{-1, -1}, {-1, 0}, {0, 0}, {0, 1},
		}),
		NewShape("J", "blue", spawnLine, spawnColumn, []Offset{
			{-1, -1}, {0, -1}, {0, 0}, {0, 1},
		}),
		NewShape("L", "orange", spawnLine, spawnColumn, []Offset{
			{-1, 1}, {0, -1}, {0, 0}, {0, 1},
		}),
	}
}

// ShapeFactory produces randomized shapes from a fixed catalog.
type ShapeFactory struct {
	rng     RandomSource
	catalog []*Shape
}

// NewShapeFactory creates a factory over the classic catalog.
func NewShapeFactory(rng RandomSource) *ShapeFactory {
	return NewShapeFactoryWithCatalog(rng, Classic())
}

// NewShapeFactoryWithCatalog creates a factory over a custom catalog.
// Panics if the catalog is empty or a template has no cells.
func NewShapeFactoryWithCatalog(rng RandomSource, templates []*Shape) *ShapeFactory {
	if rng == nil {
		panic("tetris: shape factory needs a random source")
	}
	if len(templates) == 0 {
		panic("tetris: empty shape catalog")
	}

	catalog := make([]*Shape, len(templates))
	for i, tmpl := range templates {
		if tmpl == nil || len(tmpl.cells) == 0 {
			panic(fmt.Sprintf("tetris: shape template %d has no cells", i))
		}
		catalog[i] = tmpl.Clone()
	}

	return &ShapeFactory{rng: rng, catalog: catalog}
}

// CreateRandomShape returns a fresh shape picked uniformly from the catalog.
func (f *ShapeFactory) CreateRandomShape() *Shape {
	return f.catalog[f.rng.Intn(len(f.catalog))].Clone()
}

// Catalog returns copies of every template.
func (f *ShapeFactory) Catalog() []*Shape {
	out := make([]*Shape, len(f.catalog))
	for i, tmpl := range f.catalog {
		out[i] = tmpl.Clone()
	}
	return out
}
