package dungeon

import (
	"math/rand"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

// CavernsBuilder - "пьяный шахтер": случайный бродяга вырубает пол от
// центра. Чем глубже, тем меньше итераций - пещеры становятся теснее.
//
// Порядок отделки после вырубки фиксирован:
// реки -> грибные поля (каждая K-я глубина) -> blocked/water ->
// спавны -> жаровни -> гарантированная трещина (сеет спавн игрока и
// спуск) -> декоративные трещины.
type CavernsBuilder struct{}

func (b *CavernsBuilder) Build(depth int, rng *rand.Rand) *domain.Zone {
	z := domain.NewZone(domain.MapWidth, domain.MapHeight, depth)

	b.carve(z, depth, rng)

	// Реки
	rivers := rng.Intn(3)
	riverBuilder := &RiverBuilder{}
	for i := 0; i < rivers; i++ {
		riverBuilder.Run(z, rng)
	}

	// Грибные поля на каждой K-й глубине
	if depth%MushroomFieldEveryDepth == 0 {
		(&MushroomFieldBuilder{}).Run(z, rng)
	}

	z.PopulateWater()
	z.PopulateBlocked()

	// Спавны по любым нестенным тайлам: комнаты пещерами не размечаются,
	// сэмплинг их игнорирует.
	taken := map[int]bool{}
	monsters := 2 + depth/2
	for i := 0; i < monsters; i++ {
		if idx, ok := sampleOpenTile(z, rng, taken); ok {
			z.MonsterSpawns = append(z.MonsterSpawns, idx)
		}
	}
	items := 2 + rng.Intn(3)
	for i := 0; i < items; i++ {
		if idx, ok := sampleOpenTile(z, rng, taken); ok {
			z.ItemSpawns = append(z.ItemSpawns, idx)
		}
	}
	fauna := rng.Intn(3)
	for i := 0; i < fauna; i++ {
		if idx, ok := sampleOpenTile(z, rng, taken); ok {
			z.FaunaSpawns = append(z.FaunaSpawns, idx)
		}
	}

	// Случайные жаровни. Жаровня непроходима, поэтому ставится только
	// там, где не рвет связность пола: узкий перешеек с жаровней может
	// отрезать спуск.
	braziers := 1 + rng.Intn(3)
	for i := 0; i < braziers; i++ {
		idx, ok := sampleOpenTile(z, rng, taken)
		if !ok || seversFloor(z, idx) {
			continue
		}
		z.Tiles[idx] = domain.TileBrazier
	}

	// Гарантированная трещина: ее путь сеет и спавн игрока, и спуск,
	// поэтому выход всегда достижим вдоль пути. Пустой список тайлов
	// недопустим - перебрасываем.
	cracksBuilder := &CracksBuilder{}
	for {
		cracked, path := cracksBuilder.Run(z, rng)
		if len(cracked) == 0 {
			continue
		}
		// Жаровни и ограды на пути срубаются: путь обязан быть связным.
		for _, idx := range path {
			if z.Tiles[idx] == domain.TileBrazier || z.Tiles[idx] == domain.TileFieldFence {
				z.Tiles[idx] = domain.TileFloor
			}
		}
		spawn, exit, ok := passableEndpoints(z, path)
		if !ok {
			continue
		}
		z.PlayerSpawnIdx = spawn
		z.Tiles[exit] = domain.TileDownPassage
		break
	}

	// Декоративные трещины
	extras := rng.Intn(3)
	for i := 0; i < extras; i++ {
		cracksBuilder.Run(z, rng)
	}

	z.PopulateWater()
	z.PopulateBlocked()
	return z
}

// carve вырубает пол случайным блужданием от центра.
func (b *CavernsBuilder) carve(z *domain.Zone, depth int, rng *rand.Rand) {
	// Глубина давит на размах: глубже - теснее.
	iterations := (z.Width * z.Height * 4) / (1 + depth/3)

	x, y := z.Width/2, z.Height/2
	for i := 0; i < iterations; i++ {
		z.Tiles[z.GetIndex(x, y)] = domain.TileFloor

		switch rng.Intn(4) {
		case 0:
			x--
		case 1:
			x++
		case 2:
			y--
		case 3:
			y++
		}
		x = clamp(x, 1, z.Width-2)
		y = clamp(y, 1, z.Height-2)
	}
}

// seversFloor: станет ли открытый пол несвязным, если закрыть idx.
// Заливка по восьми соседям, как ходят существа.
func seversFloor(z *domain.Zone, idx int) bool {
	open := 0
	start := -1
	for i, tile := range z.Tiles {
		if i == idx || tile.IsSolid() {
			continue
		}
		open++
		start = i
	}
	if start == -1 {
		return false
	}

	visited := make([]bool, len(z.Tiles))
	visited[idx] = true
	visited[start] = true
	stack := []int{start}
	reached := 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++
		x, y := z.Coords(cur)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if (dx == 0 && dy == 0) || !z.InBounds(nx, ny) {
					continue
				}
				n := z.GetIndex(nx, ny)
				if visited[n] || z.Tiles[n].IsSolid() {
					continue
				}
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return reached != open
}

// passableEndpoints выбирает первую и последнюю проходимые точки пути
// трещины: первая станет спавном игрока, последняя - спуском.
func passableEndpoints(z *domain.Zone, path []int) (spawn, exit int, ok bool) {
	spawn, exit = -1, -1
	for _, idx := range path {
		if z.Tiles[idx].IsSolid() || z.Tiles[idx] == domain.TileWater {
			continue
		}
		if spawn == -1 {
			spawn = idx
		}
		exit = idx
	}
	return spawn, exit, spawn != -1 && exit != -1 && spawn != exit
}
