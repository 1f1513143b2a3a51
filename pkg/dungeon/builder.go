// Package dungeon содержит построители зон. Каждый построитель выдает
// полностью заполненную Zone: тайлы, точку спавна игрока и наборы точек
// спавна монстров/предметов/фауны. Сущности по этим точкам создает
// движок (engine/spawner), не построитель.
package dungeon

import (
	"math/rand"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

// Builder - контракт построителя зоны.
type Builder interface {
	Build(depth int, rng *rand.Rand) *domain.Zone
}

// Параметры генерации комнат
const (
	MaxRooms    = 30
	MinRoomSize = 3
	MaxRoomSize = 8

	// MaxSpawnRetries ограничивает подбор уникальной точки спавна.
	MaxSpawnRetries = 10

	// MushroomFieldEveryDepth: каждое K-е погружение - грибное поле.
	MushroomFieldEveryDepth = 3
)

// ForDepth выбирает построитель уровня.
// Первая зона - арена (санктуарий со жаровнями), каждая четвертая -
// вырубленное подземелье, все остальное - пещеры пьяного шахтера.
func ForDepth(depth int) Builder {
	switch {
	case depth <= 1:
		return &ArenaBuilder{}
	case depth%4 == 0:
		return &RoomsBuilder{}
	default:
		return &CavernsBuilder{}
	}
}

// carveRoom выставляет пол внутри прямоугольника.
func carveRoom(z *domain.Zone, room domain.Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			z.Tiles[z.GetIndex(x, y)] = domain.TileFloor
		}
	}
}

func carveHCorridor(z *domain.Zone, x1, x2, y int) {
	start, end := min(x1, x2), max(x1, x2)
	for x := start; x <= end; x++ {
		z.Tiles[z.GetIndex(x, y)] = domain.TileFloor
	}
}

func carveVCorridor(z *domain.Zone, y1, y2, x int) {
	start, end := min(y1, y2), max(y1, y2)
	for y := start; y <= end; y++ {
		z.Tiles[z.GetIndex(x, y)] = domain.TileFloor
	}
}

// sampleSpawn подбирает точку спавна внутри комнаты, избегая дублей.
// Подбор ограничен MaxSpawnRetries: при неудаче точка не добавляется.
func sampleSpawn(z *domain.Zone, rng *rand.Rand, room domain.Rect, taken map[int]bool) (int, bool) {
	for try := 0; try < MaxSpawnRetries; try++ {
		x := room.X + 1 + rng.Intn(max(room.W-1, 1))
		y := room.Y + 1 + rng.Intn(max(room.H-1, 1))
		if !z.InBounds(x, y) {
			continue
		}
		idx := z.GetIndex(x, y)
		if taken[idx] || z.Tiles[idx] != domain.TileFloor {
			continue
		}
		taken[idx] = true
		return idx, true
	}
	return 0, false
}

// sampleOpenTile подбирает любой нестенный тайл зоны (для пещер).
func sampleOpenTile(z *domain.Zone, rng *rand.Rand, taken map[int]bool) (int, bool) {
	for try := 0; try < MaxSpawnRetries*10; try++ {
		x := rng.Intn(z.Width-2) + 1
		y := rng.Intn(z.Height-2) + 1
		idx := z.GetIndex(x, y)
		if taken[idx] {
			continue
		}
		if z.Tiles[idx].IsSolid() || z.Tiles[idx] == domain.TileDownPassage || z.Tiles[idx] == domain.TileUpPassage {
			continue
		}
		taken[idx] = true
		return idx, true
	}
	return 0, false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
