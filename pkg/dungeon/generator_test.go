package dungeon

import (
	"math/rand"
	"testing"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaBuilder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	z := (&ArenaBuilder{}).Build(1, rng)

	require.Equal(t, domain.MapWidth, z.Width)
	require.Equal(t, domain.MapHeight, z.Height)

	// Периметр - стена
	for x := 0; x < z.Width; x++ {
		assert.Equal(t, domain.TileWall, z.Tiles[z.GetIndex(x, 0)])
		assert.Equal(t, domain.TileWall, z.Tiles[z.GetIndex(x, z.Height-1)])
	}
	for y := 0; y < z.Height; y++ {
		assert.Equal(t, domain.TileWall, z.Tiles[z.GetIndex(0, y)])
		assert.Equal(t, domain.TileWall, z.Tiles[z.GetIndex(z.Width-1, y)])
	}

	// Спуск в центре, четыре жаровни
	assert.Equal(t, domain.TileDownPassage, z.Tiles[z.GetIndex(z.Width/2, z.Height/2)])
	braziers := 0
	for _, tile := range z.Tiles {
		if tile == domain.TileBrazier {
			braziers++
		}
	}
	assert.Equal(t, 4, braziers)

	// Спавн игрока проходим
	assert.False(t, z.Blocked[z.PlayerSpawnIdx])
}

func TestRoomsBuilder(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		z := (&RoomsBuilder{}).Build(4, rng)

		require.NotEmpty(t, z.Rooms, "seed %d", seed)
		assert.LessOrEqual(t, len(z.Rooms), MaxRooms)

		// Комнаты не пересекаются
		for i := 0; i < len(z.Rooms); i++ {
			for j := i + 1; j < len(z.Rooms); j++ {
				assert.False(t, z.Rooms[i].Intersects(z.Rooms[j]),
					"rooms %d and %d overlap (seed %d)", i, j, seed)
			}
		}

		// Спавн игрока на полу
		assert.Equal(t, domain.TileFloor, z.Tiles[z.PlayerSpawnIdx], "seed %d", seed)

		// Спуск существует
		found := false
		for _, tile := range z.Tiles {
			if tile == domain.TileDownPassage {
				found = true
				break
			}
		}
		assert.True(t, found, "no down passage (seed %d)", seed)
	}
}

// Бродяги рек и трещин никогда не пишут за внутренний прямоугольник.
func TestWalkersStayInsideBounds(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		z := domain.NewZone(domain.MapWidth, domain.MapHeight, 2)

		path := runEdgeWalker(z, rng)
		require.NotEmpty(t, path)
		for _, idx := range path {
			x, y := z.Coords(idx)
			assert.GreaterOrEqual(t, x, 1, "seed %d", seed)
			assert.GreaterOrEqual(t, y, 1, "seed %d", seed)
			assert.LessOrEqual(t, x, z.Width-2, "seed %d", seed)
			assert.LessOrEqual(t, y, z.Height-2, "seed %d", seed)
		}
	}
}

func TestRiverBuilderWritesWater(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	z := domain.NewZone(domain.MapWidth, domain.MapHeight, 2)

	path := (&RiverBuilder{}).Run(z, rng)
	require.NotEmpty(t, path)
	for _, idx := range path {
		assert.Equal(t, domain.TileWater, z.Tiles[idx])
	}
}

func TestCracksOnlyOverWalls(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	z := domain.NewZone(domain.MapWidth, domain.MapHeight, 2)
	// Прорубаем полосу пола поперек карты
	for x := 1; x < z.Width-1; x++ {
		z.Tiles[z.GetIndex(x, z.Height/2)] = domain.TileFloor
	}

	cracked, path := (&CracksBuilder{}).Run(z, rng)
	require.NotEmpty(t, path)
	for _, idx := range cracked {
		assert.Equal(t, domain.TileCrackedWall, z.Tiles[idx])
	}
	// Пол остался полом
	for x := 1; x < z.Width-1; x++ {
		idx := z.GetIndex(x, z.Height/2)
		assert.NotEqual(t, domain.TileCrackedWall, z.Tiles[idx])
	}
}

// Спуск всегда достижим от спавна игрока: обе точки лежат на пути
// гарантированной трещины, путь связен по соседству.
func TestCavernsExitReachable(t *testing.T) {
	for seed := int64(0); seed < 15; seed++ {
		rng := rand.New(rand.NewSource(seed))
		z := (&CavernsBuilder{}).Build(2, rng)

		require.False(t, z.Tiles[z.PlayerSpawnIdx].IsSolid(), "seed %d", seed)

		exitIdx := -1
		for i, tile := range z.Tiles {
			if tile == domain.TileDownPassage {
				exitIdx = i
				break
			}
		}
		require.NotEqual(t, -1, exitIdx, "no exit (seed %d)", seed)

		// BFS от спавна; треснувшие стены считаем проходимыми, их можно
		// раскопать по дороге.
		assert.True(t, reachable(z, z.PlayerSpawnIdx, exitIdx), "exit unreachable (seed %d)", seed)
	}
}

func reachable(z *domain.Zone, from, to int) bool {
	visited := make([]bool, len(z.Tiles))
	queue := []int{from}
	visited[from] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return true
		}
		x, y := z.Coords(cur)
		for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
			nx, ny := x+d[0], y+d[1]
			if !z.InBounds(nx, ny) {
				continue
			}
			idx := z.GetIndex(nx, ny)
			if visited[idx] {
				continue
			}
			tile := z.Tiles[idx]
			if tile == domain.TileWall || tile == domain.TileBrazier || tile == domain.TileFieldFence {
				continue
			}
			visited[idx] = true
			queue = append(queue, idx)
		}
	}
	return false
}

func TestSeversFloorDetectsChokePoints(t *testing.T) {
	z := domain.NewZone(domain.MapWidth, domain.MapHeight, 2)
	// Две камеры, соединенные перешейком в один тайл
	for y := 5; y < 8; y++ {
		for x := 5; x < 8; x++ {
			z.Tiles[z.GetIndex(x, y)] = domain.TileFloor
		}
	}
	for y := 5; y < 8; y++ {
		for x := 10; x < 13; x++ {
			z.Tiles[z.GetIndex(x, y)] = domain.TileFloor
		}
	}
	choke := z.GetIndex(8, 6)
	z.Tiles[choke] = domain.TileFloor
	z.Tiles[z.GetIndex(9, 6)] = domain.TileFloor

	assert.True(t, seversFloor(z, choke), "closing the isthmus splits the floor")
	assert.False(t, seversFloor(z, z.GetIndex(5, 5)), "a room corner is expendable")
}

func TestCavernsDeeperIsTighter(t *testing.T) {
	shallowFloors, deepFloors := 0, 0
	for seed := int64(0); seed < 5; seed++ {
		z2 := (&CavernsBuilder{}).Build(2, rand.New(rand.NewSource(seed)))
		z9 := (&CavernsBuilder{}).Build(9, rand.New(rand.NewSource(seed)))
		shallowFloors += countOpen(z2)
		deepFloors += countOpen(z9)
	}
	assert.Greater(t, shallowFloors, deepFloors)
}

func countOpen(z *domain.Zone) int {
	n := 0
	for _, tile := range z.Tiles {
		if !tile.IsSolid() {
			n++
		}
	}
	return n
}
