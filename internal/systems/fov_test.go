package systems

import (
	"testing"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

func TestComputeVisibleTilesBlockedByWall(t *testing.T) {
	zone := newTestZone()
	// Стена между наблюдателем и дальним тайлом
	zone.Tiles[zone.GetIndex(7, 5)] = domain.TileWall

	visible := ComputeVisibleTiles(zone, domain.Position{X: 5, Y: 5}, 6)

	seen := make(map[int]bool)
	for _, idx := range visible {
		seen[idx] = true
	}
	if !seen[zone.GetIndex(5, 5)] {
		t.Error("Expected origin tile always visible")
	}
	if !seen[zone.GetIndex(6, 5)] {
		t.Error("Expected open adjacent tile visible")
	}
	if !seen[zone.GetIndex(7, 5)] {
		t.Error("Expected the wall itself visible")
	}
	if seen[zone.GetIndex(9, 5)] {
		t.Error("Expected tile behind the wall to be shadowed")
	}
}

func TestVisibleTilesSortedByDistance(t *testing.T) {
	zone := newTestZone()
	origin := domain.Position{X: 10, Y: 10}
	visible := ComputeVisibleTiles(zone, origin, 5)

	prev := -1
	for _, idx := range visible {
		x, y := zone.Coords(idx)
		d := (x-origin.X)*(x-origin.X) + (y-origin.Y)*(y-origin.Y)
		if d < prev {
			t.Fatal("Expected visible tiles sorted by distance from origin")
		}
		prev = d
	}
	if visible[0] != zone.GetIndex(10, 10) {
		t.Error("Expected origin first in distance order")
	}
}

func TestBlindSeesOnlyOwnTile(t *testing.T) {
	zone := newTestZone()
	e := newTestCreature("e", "Mole", 5, 5)
	e.Viewshed = &domain.ViewshedComponent{Radius: 6, Dirty: true}
	e.Blind = &domain.BlindComponent{TicksLeft: 3}

	ctx := newTestContext(zone, e)
	ProcessViewsheds(ctx)

	if len(e.Viewshed.VisibleTiles) != 1 || e.Viewshed.VisibleTiles[0] != zone.GetIndex(5, 5) {
		t.Errorf("Expected blind entity to see only its own tile, got %v", e.Viewshed.VisibleTiles)
	}
}

// Туман войны: видно и запоминается только освещенное или вплотную.
func TestPlayerFogOfWar(t *testing.T) {
	zone := newTestZone()
	player := newTestCreature("player", "Player", 10, 10)
	player.Viewshed = &domain.ViewshedComponent{Radius: 6, Dirty: true}

	farIdx := zone.GetIndex(14, 10)
	nearIdx := zone.GetIndex(11, 10)
	zone.Lit[zone.GetIndex(13, 10)] = true

	ctx := newTestContext(zone, player)
	ProcessViewsheds(ctx)

	if !zone.Visible[nearIdx] || !zone.Revealed[nearIdx] {
		t.Error("Expected self-illuminated adjacent tile visible and revealed")
	}
	if !zone.Visible[zone.GetIndex(13, 10)] {
		t.Error("Expected lit tile in FOV visible")
	}
	if zone.Visible[farIdx] || zone.Revealed[farIdx] {
		t.Error("Expected unlit far tile neither visible nor revealed")
	}

	// Видимое всегда разведано
	for i := range zone.Visible {
		if zone.Visible[i] && !zone.Revealed[i] {
			t.Fatalf("Tile %d visible but not revealed", i)
		}
	}

	// Разведанное не забывается, когда уходит из видимости
	player.Pos.X = 3
	player.Viewshed.Dirty = true
	ProcessViewsheds(ctx)
	if !zone.Revealed[nearIdx] {
		t.Error("Expected revealed tile to stay revealed out of sight")
	}
}

func TestTickBlindness(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.Viewshed = &domain.ViewshedComponent{Radius: 6}
	player.Blind = &domain.BlindComponent{TicksLeft: 2}

	ctx := newTestContext(newTestZone(), player)

	TickBlindness(ctx)
	if player.Blind == nil {
		t.Fatal("Expected blindness to persist one more tick")
	}
	TickBlindness(ctx)
	if player.Blind != nil {
		t.Fatal("Expected blindness removed at 0")
	}
	if !player.Viewshed.Dirty {
		t.Error("Expected viewshed dirty after sight returns")
	}
	if !logContains(ctx.Log, "You can see again!") {
		t.Errorf("Expected recovery message, log: %v", ctx.Log.Entries)
	}
}

// Свет от носимого фонаря исходит из позиции носителя.
func TestLightingFromCarriedLantern(t *testing.T) {
	zone := newTestZone()
	player := newTestCreature("player", "Player", 10, 10)
	lantern := &domain.Entity{
		ID:            "lantern",
		Name:          "lantern",
		InBackpack:    &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'a'},
		ProducesLight: &domain.ProducesLightComponent{Radius: domain.LanternRadius},
		Appliable:     &domain.AppliableComponent{},
		TurnedOn:      &domain.TurnedOnComponent{},
		MustBeFueled:  &domain.MustBeFueledComponent{FuelCounter: 50},
	}
	ctx := newTestContext(zone, player, lantern)

	RebuildLighting(ctx)
	if !zone.Lit[zone.GetIndex(10, 10)] {
		t.Error("Expected carrier tile lit")
	}
	if !zone.Lit[zone.GetIndex(12, 10)] {
		t.Error("Expected tiles near carrier lit")
	}

	// Пустой бак гасит эмиссию
	lantern.MustBeFueled.FuelCounter = 0
	RebuildLighting(ctx)
	if zone.Lit[zone.GetIndex(12, 10)] {
		t.Error("Expected no light with empty fuel")
	}
}
