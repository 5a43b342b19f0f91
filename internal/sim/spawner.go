package sim

import "math/rand"

// Spawner places food on free cells, drawing from its own RNG.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner seeded for reproducible placement.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn appends one food item on a uniformly chosen free cell.
// A full grid or a full food quota leaves food unchanged.
func (sp *Spawner) Spawn(g Grid, s Snake, food []Food, maxFood int) ([]Food, bool) {
	if len(food) >= maxFood {
		return food, false
	}
	free := FreeCells(g, s, food)
	if len(free) == 0 {
		return food, false
	}
	return append(food, Food{Pos: sp.pick(free)}), true
}

// pick returns one element uniformly. Panics on an empty slice.
func (sp *Spawner) pick(cells []Coord) Coord {
	if len(cells) == 0 {
		panic("sim: pick from zero free cells")
	}
	return cells[sp.rng.Intn(len(cells))]
}

