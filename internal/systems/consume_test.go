package systems

import (
	"testing"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

func TestEatDeadlyFoodKills(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.Hunger = &domain.HungerComponent{TickCounter: 100, Status: domain.HungerNormal}

	mushroom := &domain.Entity{
		ID:         "mushroom",
		Name:       "pale mushroom",
		InBackpack: &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'a'},
		Edible:     &domain.EdibleComponent{NutritionDiceNumber: 1, NutritionDiceSize: 6},
		Deadly:     &domain.DeadlyComponent{},
	}
	ctx := newTestContext(newTestZone(), player, mushroom)

	player.WantsToEat = &domain.WantsToEatComponent{ItemID: mushroom.ID}
	EatFood(ctx)
	ctx.Flush()
	ApplyDamage(ctx)

	if player.CombatStats.CurrentStamina != 0 || player.CombatStats.CurrentToughness != 0 {
		t.Errorf("Expected stamina and toughness zeroed, got %d/%d",
			player.CombatStats.CurrentStamina, player.CombatStats.CurrentToughness)
	}
	if !logContains(ctx.Log, "You ate a deadly poisonous food! You agonize and die") {
		t.Errorf("Expected deadly food message, log: %v", ctx.Log.Entries)
	}
	if !ctx.PlayerDied {
		t.Error("Expected player death")
	}
	if ctx.GetEntity(mushroom.ID) != nil {
		t.Error("Expected mushroom consumed")
	}
}

func TestEatRottenFoodWorsensHunger(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.Hunger = &domain.HungerComponent{TickCounter: 100, Status: domain.HungerNormal}

	meat := &domain.Entity{
		ID:        "meat",
		Name:      "old meat",
		Pos:       &domain.Position{X: 5, Y: 5},
		Edible:    &domain.EdibleComponent{NutritionDiceNumber: 2, NutritionDiceSize: 6},
		Unsavoury: &domain.UnsavouryComponent{Rotten: true},
	}
	zone := newTestZone()
	ctx := newTestContext(zone, player, meat)

	player.WantsToEat = &domain.WantsToEatComponent{ItemID: meat.ID}
	EatFood(ctx)

	if player.Hunger.Status != domain.HungerHungry {
		t.Errorf("Expected hunger status worsened one step, got %v", player.Hunger.Status)
	}
	if player.Hunger.TickCounter >= 100 {
		t.Errorf("Expected hunger counter decreased, got %d", player.Hunger.TickCounter)
	}
	if zone.Decals[zone.GetIndex(5, 5)] != domain.DecalVomit {
		t.Error("Expected a vomit decal at the eater's tile")
	}
}

func TestEatNutritiousFood(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.Hunger = &domain.HungerComponent{TickCounter: 50, Status: domain.HungerHungry}

	ration := &domain.Entity{
		ID:         "ration",
		Name:       "iron ration",
		InBackpack: &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'a'},
		Edible:     &domain.EdibleComponent{NutritionDiceNumber: 2, NutritionDiceSize: 6},
	}
	ctx := newTestContext(newTestZone(), player, ration)

	player.WantsToEat = &domain.WantsToEatComponent{ItemID: ration.ID}
	EatFood(ctx)

	gained := player.Hunger.TickCounter - 50
	if gained < 6 || gained > 36 {
		t.Errorf("Expected nutrition 3*roll(2,6) in [6..36], got %d", gained)
	}
}

func TestEatDiseaseBearerInfects(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.Hunger = &domain.HungerComponent{TickCounter: 50, Status: domain.HungerNormal}

	corpse := &domain.Entity{
		ID:            "corpse",
		Name:          "ghoul corpse",
		InBackpack:    &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'a'},
		Edible:        &domain.EdibleComponent{NutritionDiceNumber: 2, NutritionDiceSize: 6},
		DiseaseBearer: &domain.DiseaseBearerComponent{Kind: domain.DiseaseFever},
	}
	ctx := newTestContext(newTestZone(), player, corpse)

	player.WantsToEat = &domain.WantsToEatComponent{ItemID: corpse.ID}
	EatFood(ctx)

	state, ok := player.Diseases.Active[domain.DiseaseFever]
	if !ok {
		t.Fatal("Expected player infected with fever")
	}
	min := domain.MaxDiseaseTickCounter + 1
	max := domain.MaxDiseaseTickCounter + 20
	if state.TickCounter < min || state.TickCounter > max {
		t.Errorf("Expected disease timer in [%d..%d], got %d", min, max, state.TickCounter)
	}

	// Повторное заражение: таймер в ноль, улучшение сорвано
	state.Improving = true
	infect(ctx, player, domain.DiseaseFever)
	if state.TickCounter != 0 || state.Improving {
		t.Error("Expected re-infection to reset the timer and cancel improvement")
	}
}

func TestEatFromShopTileIsTheft(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.Hunger = &domain.HungerComponent{TickCounter: 50, Status: domain.HungerNormal}

	zone := newTestZone()
	shopTile := zone.GetIndex(5, 5)
	owner := newTestCreature("owner", "Shopkeeper", 6, 5)
	owner.ShopOwner = &domain.ShopOwnerComponent{ShopTiles: []int{shopTile}}

	bread := &domain.Entity{
		ID:     "bread",
		Name:   "bread",
		Pos:    &domain.Position{X: 5, Y: 5},
		Edible: &domain.EdibleComponent{NutritionDiceNumber: 1, NutritionDiceSize: 6},
	}
	ctx := newTestContext(zone, player, owner, bread)

	player.WantsToEat = &domain.WantsToEatComponent{ItemID: bread.ID}
	EatFood(ctx)

	if !owner.Hates.List[player.ID] {
		t.Error("Expected shop owner to hate the thief")
	}
	if !logContains(ctx.Log, "Shopkeeper shouts: Thief! Thief!") {
		t.Errorf("Expected theft shout, log: %v", ctx.Log.Entries)
	}
}

func TestDrinkQuenchesThirst(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.Thirst = &domain.ThirstComponent{TickCounter: 50, Status: domain.ThirstThirsty}

	flask := &domain.Entity{
		ID:         "flask",
		Name:       "water flask",
		InBackpack: &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'a'},
		Quaffable:  &domain.QuaffableComponent{ThirstDiceNumber: 2, ThirstDiceSize: 6},
	}
	ctx := newTestContext(newTestZone(), player, flask)

	player.WantsToDrink = &domain.WantsToDrinkComponent{ItemID: flask.ID}
	DrinkLiquids(ctx)

	gained := player.Thirst.TickCounter - 50
	if gained < 6 || gained > 36 {
		t.Errorf("Expected thirst gain 3*roll(2,6) in [6..36], got %d", gained)
	}
	if ctx.GetEntity(flask.ID) != nil {
		t.Error("Expected flask consumed")
	}
}
