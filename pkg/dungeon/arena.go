package dungeon

import (
	"math/rand"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

// ArenaBuilder - простейшая зона: пол внутри, стена по периметру,
// четыре жаровни по центрам квадрантов и спуск в центре.
type ArenaBuilder struct{}

func (b *ArenaBuilder) Build(depth int, rng *rand.Rand) *domain.Zone {
	z := domain.NewZone(domain.MapWidth, domain.MapHeight, depth)

	for y := 1; y < z.Height-1; y++ {
		for x := 1; x < z.Width-1; x++ {
			z.Tiles[z.GetIndex(x, y)] = domain.TileFloor
		}
	}

	// Жаровни по центрам квадрантов
	qx, qy := z.Width/4, z.Height/4
	for _, p := range [][2]int{
		{qx, qy},
		{z.Width - qx, qy},
		{qx, z.Height - qy},
		{z.Width - qx, z.Height - qy},
	} {
		z.Tiles[z.GetIndex(p[0], p[1])] = domain.TileBrazier
	}

	// Спуск в центре
	cx, cy := z.Width/2, z.Height/2
	z.Tiles[z.GetIndex(cx, cy)] = domain.TileDownPassage

	// Игрок появляется рядом со спуском
	z.PlayerSpawnIdx = z.GetIndex(cx-2, cy)

	taken := map[int]bool{z.PlayerSpawnIdx: true, z.GetIndex(cx, cy): true}
	for i := 0; i < 2; i++ {
		if idx, ok := sampleOpenTile(z, rng, taken); ok {
			z.FaunaSpawns = append(z.FaunaSpawns, idx)
		}
	}
	for i := 0; i < 3; i++ {
		if idx, ok := sampleOpenTile(z, rng, taken); ok {
			z.ItemSpawns = append(z.ItemSpawns, idx)
		}
	}

	z.PopulateWater()
	z.PopulateBlocked()
	return z
}
