package tetris

import (
	"math/rand/v2"
)

//go:generate go tool stringer -type=Shape -trimprefix=Shape

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL

	shapeCount = int(ShapeL) + 1
)

// AllShapes lists every shape in declaration order.
var AllShapes = []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

// ShapeDef is the static description of a shape: four block offsets relative to
// the spawn anchor and the color its blocks are drawn with.
// The first offset is the rotation pivot and is always (0, 0).
type ShapeDef struct {
	Offsets [4]Point
	Color   Color
}

// Shapes is the shape lookup table.
var Shapes = map[Shape]ShapeDef{
	ShapeI: {Offsets: [4]Point{{0, 0}, {0, -1}, {0, -2}, {0, 1}}, Color: Color{0x6c, 0xc6, 0xd9}},
	ShapeO: {Offsets: [4]Point{{0, 0}, {0, -1}, {1, 0}, {1, -1}}, Color: Color{0xf1, 0xe6, 0x0d}},
	ShapeT: {Offsets: [4]Point{{0, 0}, {-1, 0}, {1, 0}, {0, -1}}, Color: Color{0x7b, 0x21, 0x7f}},
	ShapeS: {Offsets: [4]Point{{0, 0}, {-1, 0}, {0, -1}, {1, -1}}, Color: Color{0x65, 0xb3, 0x2e}},
	ShapeZ: {Offsets: [4]Point{{0, 0}, {1, 0}, {0, -1}, {-1, -1}}, Color: Color{0xe5, 0x1b, 0x20}},
	ShapeJ: {Offsets: [4]Point{{0, 0}, {0, -1}, {0, 1}, {-1, 1}}, Color: Color{0x20, 0x4b, 0x9b}},
	ShapeL: {Offsets: [4]Point{{0, 0}, {0, -1}, {0, 1}, {1, 1}}, Color: Color{0xf0, 0x7e, 0x13}},
}

// ShapeSource supplies the shape of every newly spawned piece.
type ShapeSource interface {
	NextShape() Shape
}

// ShapeFunc adapts a plain function to ShapeSource.
type ShapeFunc func() Shape

// NextShape calls f.
func (f ShapeFunc) NextShape() Shape {
	return f()
}

// RandomSource picks shapes uniformly at random.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source seeded with seed, so runs are reproducible.
func NewRandomSource(seed uint64) *RandomSource {
	return &RandomSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (r *RandomSource) NextShape() Shape {
	return AllShapes[r.rng.IntN(shapeCount)]
}

// Queue keeps a fixed number of upcoming shapes drawn from another source,
// so a front-end can show what comes next.
type Queue struct {
	source   ShapeSource
	upcoming []Shape
}

// NewQueue fills a queue of the given length from source.
func NewQueue(source ShapeSource, length int) *Queue {
	q := &Queue{
		source:   source,
		upcoming: make([]Shape, 0, max(length, 0)),
	}
	for range length {
		q.upcoming = append(q.upcoming, source.NextShape())
	}
	return q
}

// NextShape pops the oldest queued shape and refills the tail.
func (q *Queue) NextShape() Shape {
	if len(q.upcoming) == 0 {
		return q.source.NextShape()
	}

	next := q.upcoming[0]
	copy(q.upcoming, q.upcoming[1:])
	q.upcoming[len(q.upcoming)-1] = q.source.NextShape()
	return next
}

// Peek returns a copy of the queued shapes, soonest first.
func (q *Queue) Peek() []Shape {
	out := make([]Shape, len(q.upcoming))
	copy(out, q.upcoming)
	return out
}
