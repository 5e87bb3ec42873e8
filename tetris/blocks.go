package tetris

import "github.com/kamstrup/intmap"

// Point is a logical grid position. Y grows downward and is negative above the board.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Block is a single cell of a piece, or a locked cell of the playfield.
type Block struct {
	Point
	Color Color
}

// blockStore holds the locked blocks keyed by a stable id.
// The Grid is a derived index over it and gets rebuilt after every line clear.
type blockStore struct {
	blocks *intmap.Map[uint32, Block]
	nextId uint32
}

func newBlockStore(capacity int) *blockStore {
	return &blockStore{
		blocks: intmap.New[uint32, Block](capacity),
	}
}

func (s *blockStore) add(b Block) uint32 {
	s.nextId++
	s.blocks.Put(s.nextId, b)
	return s.nextId
}

func (s *blockStore) get(id uint32) (Block, bool) {
	return s.blocks.Get(id)
}

func (s *blockStore) set(id uint32, b Block) {
	s.blocks.Put(id, b)
}

func (s *blockStore) remove(id uint32) {
	s.blocks.Del(id)
}

func (s *blockStore) len() int {
	return s.blocks.Len()
}

// each calls fn for every stored block until fn returns false.
// fn must not add or remove blocks.
func (s *blockStore) each(fn func(id uint32, b Block) bool) {
	s.blocks.ForEach(fn)
}

func (s *blockStore) reset() {
	s.blocks.Clear()
	s.nextId = 0
}

// rebuild writes every stored block into g, which is emptied first.
func (s *blockStore) rebuild(g *Grid) {
	g.Reset()
	s.each(func(_ uint32, b Block) bool {
		g.Set(b.Y, b.X, OccupiedCell(b.Color))
		return true
	})
}
