package systems

import (
	"math/rand"
	"os"
	"testing"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// newTestZone: зона 20x20, пол внутри, стены по периметру.
func newTestZone() *domain.Zone {
	z := domain.NewZone(20, 20, 1)
	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			z.Tiles[z.GetIndex(x, y)] = domain.TileFloor
		}
	}
	z.PopulateBlocked()
	z.PopulateWater()
	return z
}

func newTestContext(zone *domain.Zone, entities ...*domain.Entity) *Context {
	playerID := domain.EntityID("")
	for _, e := range entities {
		if e.Name == "Player" {
			playerID = e.ID
		}
	}
	return NewContext(zone, entities, domain.NewGameLog(), rand.New(rand.NewSource(42)), playerID)
}

// newTestCreature: существо Normal-скорости со статами 10/10/10.
func newTestCreature(id, name string, x, y int) *domain.Entity {
	return &domain.Entity{
		ID:   domain.EntityID(id),
		Name: name,
		Pos:  &domain.Position{X: x, Y: y},
		CombatStats: &domain.CombatStatsComponent{
			CurrentStamina: 10, MaxStamina: 10,
			CurrentToughness: 10, MaxToughness: 10,
			CurrentDexterity: 10, MaxDexterity: 10,
			UnarmedAttackDice: 4,
			Speed:             domain.SpeedNormal,
		},
		Hates:  &domain.HatesComponent{},
		MyTurn: &domain.MyTurnComponent{},
	}
}

// turnSpent: действие помечает ход потраченным (обмен на ожидание
// проводит планировщик в конце тика).
func turnSpent(e *domain.Entity) bool {
	return (e.MyTurn != nil && e.MyTurn.SpentCost > 0) || e.WaitingToAct != nil
}

func logContains(log *domain.GameLog, want string) bool {
	for _, entry := range log.Entries {
		if entry == want {
			return true
		}
	}
	return false
}
