package systems

import (
	"testing"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

func TestHungerAdvancesStatus(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.Hunger = &domain.HungerComponent{TickCounter: 1, Status: domain.HungerSatiated}

	ctx := newTestContext(newTestZone(), player)
	TickHunger(ctx)

	if player.Hunger.Status != domain.HungerNormal {
		t.Errorf("Expected status to advance to Normal, got %v", player.Hunger.Status)
	}
	if player.Hunger.TickCounter != domain.MaxHungerTickCounter {
		t.Errorf("Expected counter reset to %d, got %d", domain.MaxHungerTickCounter, player.Hunger.TickCounter)
	}
	if !logContains(ctx.Log, "You are no longer satiated") {
		t.Errorf("Expected status message, log: %v", ctx.Log.Entries)
	}
}

// Starved - дно: статус дальше не падает, только копится урон.
func TestStarvedIsTerminalStatus(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.Hunger = &domain.HungerComponent{TickCounter: 1, Status: domain.HungerStarved}

	ctx := newTestContext(newTestZone(), player)

	damaged := false
	for i := 0; i < 30; i++ {
		player.MyTurn = &domain.MyTurnComponent{}
		TickHunger(ctx)
		if player.Hunger.Status != domain.HungerStarved {
			t.Fatalf("Expected status pinned at Starved, got %v", player.Hunger.Status)
		}
		if player.SufferingDamage != nil {
			damaged = true
			player.SufferingDamage = nil
		}
	}
	if !damaged {
		t.Error("Expected 1/3 chance starvation damage across 30 ticks")
	}
}

func TestHungerSkipsWithoutMyTurn(t *testing.T) {
	e := newTestCreature("e", "Rat", 5, 5)
	e.MyTurn = nil
	e.WaitingToAct = &domain.WaitingToActComponent{TickCountdown: 2}
	e.Hunger = &domain.HungerComponent{TickCounter: 10, Status: domain.HungerNormal}

	ctx := newTestContext(newTestZone(), e)
	TickHunger(ctx)

	if e.Hunger.TickCounter != 10 {
		t.Error("Expected hunger untouched for waiting entity")
	}
}

func TestAutoHeal(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.CombatStats.CurrentStamina = 5
	player.AutoHeal = &domain.AutoHealComponent{}

	ctx := newTestContext(newTestZone(), player)
	for i := 0; i < domain.MaxStaminaHealTickCounter; i++ {
		TickAutoHeal(ctx)
	}
	if player.CombatStats.CurrentStamina != 6 {
		t.Errorf("Expected +1 stamina after %d turns, got %d",
			domain.MaxStaminaHealTickCounter, player.CombatStats.CurrentStamina)
	}

	// Голодная смерть отключает регенерацию
	player.Hunger = &domain.HungerComponent{Status: domain.HungerStarved}
	for i := 0; i < domain.MaxStaminaHealTickCounter * 2; i++ {
		TickAutoHeal(ctx)
	}
	if player.CombatStats.CurrentStamina != 6 {
		t.Error("Expected no healing while starved")
	}
}

func TestWetnessDousesCarriedLight(t *testing.T) {
	zone := newTestZone()
	riverIdx := zone.GetIndex(5, 5)
	zone.Tiles[riverIdx] = domain.TileWater
	zone.PopulateWater()

	player := newTestCreature("player", "Player", 5, 5)
	player.Viewshed = &domain.ViewshedComponent{Radius: 6}
	torch := &domain.Entity{
		ID:            "torch",
		Name:          "torch",
		InBackpack:    &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'a'},
		ProducesLight: &domain.ProducesLightComponent{Radius: 4},
		MustBeFueled:  &domain.MustBeFueledComponent{FuelCounter: 30},
		Appliable:     &domain.AppliableComponent{},
		TurnedOn:      &domain.TurnedOnComponent{},
	}
	ctx := newTestContext(zone, player, torch)

	TickWetness(ctx)

	if player.Wet == nil || player.Wet.Countdown != domain.MaxWetTickCounter {
		t.Fatal("Expected player soaked at max countdown")
	}
	if torch.Wet == nil {
		t.Error("Expected carried items soaked too")
	}
	if torch.TurnedOn != nil || torch.TurnedOff == nil {
		t.Error("Expected water to put the torch out")
	}
	if !logContains(ctx.Log, "Your torch is put out by the water!") {
		t.Errorf("Expected douse message, log: %v", ctx.Log.Entries)
	}

	// Мокрый факел не зажечь
	player.WantsToApply = &domain.WantsToApplyComponent{ItemID: torch.ID}
	ApplyItems(ctx)
	if torch.TurnedOn != nil {
		t.Error("Expected wet torch to refuse turning on")
	}
	if !logContains(ctx.Log, "torch is too wet!") {
		t.Errorf("Expected wet rejection, log: %v", ctx.Log.Entries)
	}

	// На суше счетчик тает и по нулю сущность сохнет
	player.Pos = &domain.Position{X: 8, Y: 8}
	player.Wet.Countdown = 1
	TickWetness(ctx)
	if player.Wet != nil {
		t.Error("Expected player dry at countdown 0")
	}
	if !logContains(ctx.Log, "You are dry now") {
		t.Errorf("Expected dry message, log: %v", ctx.Log.Entries)
	}
}

// Ровно сценарий фонаря: топливо 2, два тика.
func TestLanternBurnsOut(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.Viewshed = &domain.ViewshedComponent{Radius: 6}
	lantern := &domain.Entity{
		ID:            "lantern",
		Name:          "lantern",
		InBackpack:    &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'a'},
		ProducesLight: &domain.ProducesLightComponent{Radius: domain.LanternRadius},
		MustBeFueled:  &domain.MustBeFueledComponent{FuelCounter: 2},
		Appliable:     &domain.AppliableComponent{},
		TurnedOn:      &domain.TurnedOnComponent{},
	}
	zone := newTestZone()
	ctx := newTestContext(zone, player, lantern)

	BurnFuel(ctx)
	if lantern.MustBeFueled.FuelCounter != 1 {
		t.Fatalf("Expected fuel 1 after first tick, got %d", lantern.MustBeFueled.FuelCounter)
	}
	if !logContains(ctx.Log, "Your lantern is flickering") {
		t.Errorf("Expected flicker warning at threshold 1, log: %v", ctx.Log.Entries)
	}

	BurnFuel(ctx)
	if lantern.MustBeFueled.FuelCounter != 0 {
		t.Fatalf("Expected fuel 0 after second tick, got %d", lantern.MustBeFueled.FuelCounter)
	}
	if !logContains(ctx.Log, "Your lantern goes out") {
		t.Errorf("Expected goes-out message, log: %v", ctx.Log.Entries)
	}
	if !player.Viewshed.Dirty {
		t.Error("Expected carrier viewshed dirty when the light dies")
	}

	RebuildLighting(ctx)
	if zone.Lit[zone.GetIndex(5, 5)] {
		t.Error("Expected lit index to exclude the dead lantern")
	}

	// Погасший фонарь больше не выгорает
	BurnFuel(ctx)
	if lantern.MustBeFueled.FuelCounter != 0 {
		t.Error("Expected fuel pinned at 0")
	}
}

func TestRefillLantern(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	lantern := &domain.Entity{
		ID:            "lantern",
		Name:          "lantern",
		InBackpack:    &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'a'},
		ProducesLight: &domain.ProducesLightComponent{Radius: domain.LanternRadius},
		MustBeFueled:  &domain.MustBeFueledComponent{FuelCounter: 0},
		Appliable:     &domain.AppliableComponent{},
	}
	flask := &domain.Entity{
		ID:         "flask",
		Name:       "oil flask",
		InBackpack: &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'b'},
		Refiller:   &domain.RefillerComponent{FuelCounter: 100},
	}
	ctx := newTestContext(newTestZone(), player, lantern, flask)

	player.WantsToFuel = &domain.WantsToFuelComponent{ItemID: lantern.ID, WithID: flask.ID}
	RefillItems(ctx)

	if lantern.MustBeFueled.FuelCounter != 100 {
		t.Errorf("Expected fuel copied from flask, got %d", lantern.MustBeFueled.FuelCounter)
	}
	if ctx.GetEntity(flask.ID) != nil {
		t.Error("Expected flask consumed")
	}
}

func TestDecayRotsThenDissolves(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	corpse := &domain.Entity{
		ID:         "corpse",
		Name:       "rat corpse",
		InBackpack: &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'a'},
		Edible:     &domain.EdibleComponent{NutritionDiceNumber: 2, NutritionDiceSize: 6},
		Perishable: &domain.PerishableComponent{RotCounter: 1},
	}
	ctx := newTestContext(newTestZone(), player, corpse)

	TickDecay(ctx)
	if corpse.Unsavoury == nil || !corpse.Unsavoury.Rotten {
		t.Fatal("Expected item to turn rotten at counter 0")
	}
	if ctx.GetEntity(corpse.ID) == nil {
		t.Fatal("Expected rotten item to still exist")
	}

	corpse.Perishable.RotCounter = 1
	TickDecay(ctx)
	if ctx.GetEntity(corpse.ID) != nil {
		t.Error("Expected already-rotten item to dissolve")
	}
}
