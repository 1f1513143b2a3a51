package dungeon

import (
	"math/rand"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
)

// RoomsBuilder - классическое подземелье: до MaxRooms прямоугольных
// комнат с отбраковкой пересечений, центры соседних комнат соединены
// Г-образными коридорами со случайным порядком колен.
type RoomsBuilder struct{}

func (b *RoomsBuilder) Build(depth int, rng *rand.Rand) *domain.Zone {
	z := domain.NewZone(domain.MapWidth, domain.MapHeight, depth)

	for i := 0; i < MaxRooms; i++ {
		w := utils.RandRange(rng, MinRoomSize, MaxRoomSize)
		h := utils.RandRange(rng, MinRoomSize, MaxRoomSize)
		x := utils.RandRange(rng, 1, z.Width-w-2)
		y := utils.RandRange(rng, 1, z.Height-h-2)

		newRoom := domain.Rect{X: x, Y: y, W: w, H: h}
		overlaps := false
		for _, other := range z.Rooms {
			if newRoom.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(z, newRoom)

		if len(z.Rooms) > 0 {
			// Соединяем с предыдущей комнатой
			prevX, prevY := z.Rooms[len(z.Rooms)-1].Center()
			currX, currY := newRoom.Center()

			if rng.Intn(2) == 0 {
				carveHCorridor(z, prevX, currX, prevY)
				carveVCorridor(z, prevY, currY, currX)
			} else {
				carveVCorridor(z, prevY, currY, prevX)
				carveHCorridor(z, prevX, currX, currY)
			}
		}
		z.Rooms = append(z.Rooms, newRoom)
	}

	// Игрок - в центре первой комнаты, спуск - в центре последней.
	taken := map[int]bool{}
	if len(z.Rooms) > 0 {
		cx, cy := z.Rooms[0].Center()
		z.PlayerSpawnIdx = z.GetIndex(cx, cy)
		taken[z.PlayerSpawnIdx] = true

		lx, ly := z.Rooms[len(z.Rooms)-1].Center()
		z.Tiles[z.GetIndex(lx, ly)] = domain.TileDownPassage
		taken[z.GetIndex(lx, ly)] = true
	}

	// Спавны по комнатам, кроме первой (там игрок).
	for i := 1; i < len(z.Rooms); i++ {
		room := z.Rooms[i]
		if rng.Intn(10) < 6 {
			if idx, ok := sampleSpawn(z, rng, room, taken); ok {
				z.MonsterSpawns = append(z.MonsterSpawns, idx)
			}
		}
		if rng.Intn(10) < 4 {
			if idx, ok := sampleSpawn(z, rng, room, taken); ok {
				z.ItemSpawns = append(z.ItemSpawns, idx)
			}
		}
	}

	z.PopulateWater()
	z.PopulateBlocked()
	return z
}
