package domain

import "math"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo возвращает точное расстояние до другой точки (float)
func (p Position) DistanceTo(other Position) float64 {
	return math.Sqrt(math.Pow(float64(p.X-other.X), 2) + math.Pow(float64(p.Y-other.Y), 2))
}

// ChebyshevDistanceTo - "шахматное" расстояние (диагональ стоит как шаг).
func (p Position) ChebyshevDistanceTo(other Position) int {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// ManhattanDistanceTo - расстояние по сетке без диагоналей.
func (p Position) ManhattanDistanceTo(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// IsAdjacent возвращает true, если цель в соседней клетке (включая диагональ)
func (p Position) IsAdjacent(other Position) bool {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// Shift возвращает новую позицию со смещением (не меняя текущую)
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
