package engine

import (
	"encoding/json"
	"math/rand"
	"os"
	"testing"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/systems"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/api"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// newScenarioInstance собирает инстанс на ровной площадке 20x20
// с полом внутри рамки стен. Первая сущность - игрок.
func newScenarioInstance(player *domain.Entity, others ...*domain.Entity) *Instance {
	zone := domain.NewZone(20, 20, 1)
	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			zone.Tiles[zone.GetIndex(x, y)] = domain.TileFloor
		}
	}
	zone.PopulateWater()

	// Вечный свет в рюкзаке: сценарии полагаются на видимость.
	glow := &domain.Entity{
		ID:            "glow",
		Name:          "glowing stone",
		InBackpack:    &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'z'},
		ProducesLight: &domain.ProducesLightComponent{Radius: 10},
		MustBeFueled:  &domain.MustBeFueledComponent{FuelCounter: domain.InfiniteFuel},
	}

	entities := append([]*domain.Entity{player, glow}, others...)
	ctx := systems.NewContext(zone, entities, domain.NewGameLog(), rand.New(rand.NewSource(7)), player.ID)

	inst := &Instance{
		Cfg:      Config{Seed: 7},
		Depth:    1,
		Zone:     zone,
		Ctx:      ctx,
		RunState: domain.StateWaitingPlayerInput,
	}

	// Прогрев индексов без прогона полного конвейера: сценарий сам
	// решает, когда монстры начинают действовать.
	systems.MapIndexing(ctx)
	systems.RebuildLighting(ctx)
	systems.ProcessViewsheds(ctx)
	ctx.Flush()

	return inst
}

func newScenarioPlayer(x, y int) *domain.Entity {
	return &domain.Entity{
		ID:     "player",
		Name:   "Adventurer",
		Pos:    &domain.Position{X: x, Y: y},
		Render: &domain.RenderComponent{Atlas: "Creatures", Col: 0, Row: 0, ZIndex: 3},
		CombatStats: &domain.CombatStatsComponent{
			CurrentStamina: 10, MaxStamina: 10,
			CurrentToughness: 10, MaxToughness: 10,
			CurrentDexterity: 10, MaxDexterity: 10,
			UnarmedAttackDice: 2,
			Speed:             domain.SpeedNormal,
		},
		Viewshed:   &domain.ViewshedComponent{Radius: domain.BaseViewRadius, Dirty: true},
		Experience: &domain.ExperienceComponent{Level: 1},
		Hates:      &domain.HatesComponent{},
		BlocksTile: &domain.BlocksTileComponent{},
		MyTurn:     &domain.MyTurnComponent{},
	}
}

func newScenarioMonster(id, name string, x, y int) *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(id),
		Name:   name,
		Pos:    &domain.Position{X: x, Y: y},
		Render: &domain.RenderComponent{Atlas: "Creatures", Col: 1, Row: 0, ZIndex: 3},
		CombatStats: &domain.CombatStatsComponent{
			CurrentStamina: 3, MaxStamina: 3,
			CurrentToughness: 3, MaxToughness: 3,
			CurrentDexterity: 8, MaxDexterity: 8,
			UnarmedAttackDice: 2,
			Speed:             domain.SpeedNormal,
		},
		Viewshed:   &domain.ViewshedComponent{Radius: domain.BaseMonsterViewRadius, Dirty: true},
		Species:    &domain.SpeciesComponent{Kind: "deep_one"},
		Hates:      &domain.HatesComponent{},
		BlocksTile: &domain.BlocksTileComponent{},
	}
}

func mustPayload(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return data
}

func moveCmd(t *testing.T, dx, dy int) api.ClientCommand {
	t.Helper()
	return api.ClientCommand{
		Action:  api.ActionMove,
		Payload: mustPayload(t, api.DirectionPayload{Dx: dx, Dy: dy}),
	}
}

func logContains(log *domain.GameLog, want string) bool {
	for _, entry := range log.Entries {
		if entry == want {
			return true
		}
	}
	return false
}
