package sim

// Food is a single food item on the grid.
type Food struct {
	Pos Coord
}

// OccupiedBySnake returns the set of cells covered by snake segments.
func OccupiedBySnake(s Snake) map[Coord]struct{} {
	set := make(map[Coord]struct{}, len(s.Segments))
	for _, seg := range s.Segments {
		set[seg] = struct{}{}
	}
	return set
}

// OccupiedByFood returns the set of cells holding food.
func OccupiedByFood(food []Food) map[Coord]struct{} {
	set := make(map[Coord]struct{}, len(food))
	for _, f := range food {
		set[f.Pos] = struct{}{}
	}
	return set
}

// FreeCells returns every in-bounds cell not covered by the snake or food,
// in row-major order. It is rebuilt on every call; segments move each tick.
func FreeCells(g Grid, s Snake, food []Food) []Coord {
	snakeCells := OccupiedBySnake(s)
	foodCells := OccupiedByFood(food)

	free := make([]Coord, 0, max(0, g.Area()-len(snakeCells)))
	for _, c := range g.Cells() {
		if _, ok := snakeCells[c]; ok {
			continue
		}
		if _, ok := foodCells[c]; ok {
			continue
		}
		free = append(free, c)
	}
	return free
}

// foodAt returns the index of the food item at c, or -1.
func foodAt(food []Food, c Coord) int {
	for i, f := range food {
		if f.Pos == c {
			return i
		}
	}
	return -1
}
