package dungeon

import (
	"math/rand"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
)

// runEdgeWalker прогоняет бродягу от верхней или левой кромки до
// противоположной. Каждый шаг - бросок на 3 исхода: вперед либо вбок;
// назад к стартовой кромке хода нет, поэтому бродяга всегда доходит.
// Никогда не выходит за внутренний прямоугольник [1..W-2]x[1..H-2].
func runEdgeWalker(z *domain.Zone, rng *rand.Rand) []int {
	fromTop := rng.Intn(2) == 0

	var x, y int
	if fromTop {
		x = utils.RandRange(rng, 1, z.Width-2)
		y = 1
	} else {
		x = 1
		y = utils.RandRange(rng, 1, z.Height-2)
	}

	var path []int
	for {
		path = append(path, z.GetIndex(x, y))

		if fromTop && y >= z.Height-2 {
			break
		}
		if !fromTop && x >= z.Width-2 {
			break
		}

		switch rng.Intn(3) {
		case 0: // вперед
			if fromTop {
				y++
			} else {
				x++
			}
		case 1: // вбок
			if fromTop {
				x--
			} else {
				y--
			}
		case 2: // в другой бок
			if fromTop {
				x++
			} else {
				y++
			}
		}

		// Зажим в внутренний прямоугольник
		x = clamp(x, 1, z.Width-2)
		y = clamp(y, 1, z.Height-2)
	}
	return path
}

// RiverBuilder прокладывает реку: тайлы пути становятся водой.
type RiverBuilder struct{}

func (b *RiverBuilder) Run(z *domain.Zone, rng *rand.Rand) []int {
	path := runEdgeWalker(z, rng)
	for _, idx := range path {
		z.Tiles[idx] = domain.TileWater
	}
	return path
}

// CracksBuilder прокладывает трещину: тайлы пути, лежащие на сплошной
// стене, становятся треснувшей стеной (их можно раскопать). Тайлы пути
// по уже прорытым местам не трогаются. Возвращает список записанных
// тайлов трещины и весь путь.
type CracksBuilder struct{}

func (b *CracksBuilder) Run(z *domain.Zone, rng *rand.Rand) (cracked []int, path []int) {
	path = runEdgeWalker(z, rng)
	for _, idx := range path {
		if z.Tiles[idx] == domain.TileWall {
			z.Tiles[idx] = domain.TileCrackedWall
			cracked = append(cracked, idx)
		}
	}
	return cracked, path
}

// MushroomFieldBuilder засевает грибное поле: пятно грибных тайлов
// вокруг случайного центра с редкой оградой по кромке. На поле
// добавляются точки спавна съедобных грибов.
type MushroomFieldBuilder struct{}

func (b *MushroomFieldBuilder) Run(z *domain.Zone, rng *rand.Rand) {
	cx := utils.RandRange(rng, 4, z.Width-5)
	cy := utils.RandRange(rng, 4, z.Height-5)
	radius := utils.RandRange(rng, 2, 3)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := cx+dx, cy+dy
			if x < 1 || y < 1 || x > z.Width-2 || y > z.Height-2 {
				continue
			}
			idx := z.GetIndex(x, y)
			onEdge := dx == -radius || dx == radius || dy == -radius || dy == radius

			if onEdge {
				// Редкая ограда по периметру поля
				if z.Tiles[idx] == domain.TileFloor && rng.Intn(3) == 0 {
					z.Tiles[idx] = domain.TileFieldFence
				}
				continue
			}
			if !z.Tiles[idx].IsSolid() {
				z.Tiles[idx] = domain.TileMushroomField
				if rng.Intn(4) == 0 {
					z.ItemSpawns = append(z.ItemSpawns, idx)
				}
			}
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
