package systems

import (
	"testing"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

func TestMeleeCombat(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.CombatStats.UnarmedAttackDice = 2
	deepOne := newTestCreature("deep-one", "Deep one", 5, 6)
	deepOne.CombatStats.CurrentStamina = 3
	deepOne.CombatStats.MaxStamina = 3
	deepOne.MyTurn = nil

	ctx := newTestContext(newTestZone(), player, deepOne)
	player.WantsToMelee = &domain.WantsToMeleeComponent{TargetID: deepOne.ID}

	MeleeCombat(ctx)

	if player.WantsToMelee != nil {
		t.Error("Expected melee intent to be consumed")
	}
	if deepOne.SufferingDamage == nil {
		t.Fatal("Expected damage accumulated on target")
	}
	dmg := deepOne.SufferingDamage.StaminaDamage
	if dmg < 1 || dmg > 2 {
		t.Errorf("Expected damage in [1..2] for 1d2 vs armor 0, got %d", dmg)
	}
	if deepOne.SufferingDamage.SourceID != player.ID {
		t.Error("Expected damage source to be the attacker")
	}

	// Ход потрачен: Normal speed = обмен на 2 тика ожидания в конце тика
	if player.MyTurn == nil || player.MyTurn.SpentCost != 2 {
		t.Errorf("Expected spent cost 2 for Normal speed, got %+v", player.MyTurn)
	}
}

func TestMeleeUsesEquippedWeapon(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.CombatStats.UnarmedAttackDice = 1
	rat := newTestCreature("rat", "Rat", 5, 6)
	rat.MyTurn = nil

	sword := &domain.Entity{
		ID:          "sword",
		Name:        "sword",
		InBackpack:  &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'a'},
		MeleeWeapon: &domain.MeleeWeaponComponent{AttackDice: 8},
		Equipped:    &domain.EquippedComponent{OwnerID: player.ID, Location: domain.LocationRightHand},
	}

	ctx := newTestContext(newTestZone(), player, rat, sword)

	// С кулаком 1d1 урон всегда 1; клинок 1d8 рано или поздно бьет сильнее
	sawBigger := false
	for i := 0; i < 30 && !sawBigger; i++ {
		rat.SufferingDamage = nil
		player.MyTurn = &domain.MyTurnComponent{}
		player.WantsToMelee = &domain.WantsToMeleeComponent{TargetID: rat.ID}
		MeleeCombat(ctx)
		if rat.SufferingDamage != nil && rat.SufferingDamage.StaminaDamage > 1 {
			sawBigger = true
		}
	}
	if !sawBigger {
		t.Error("Expected equipped weapon dice to be used instead of unarmed")
	}
}

func TestArmorValue(t *testing.T) {
	player := newTestCreature("player", "Player", 5, 5)
	player.CombatStats.BaseArmor = 1

	mail := &domain.Entity{
		ID:         "mail",
		Name:       "chain mail",
		InBackpack: &domain.InBackpackComponent{OwnerID: player.ID, AssignedChar: 'a'},
		Armor:      &domain.ArmorComponent{Value: 3},
		Eroded:     &domain.ErodedComponent{Penalty: 1},
		Equipped:   &domain.EquippedComponent{OwnerID: player.ID, Location: domain.LocationTorso},
	}

	ctx := newTestContext(newTestZone(), player, mail)

	if got := ArmorValue(ctx, player); got != 3 {
		t.Errorf("Expected armor 1 base + 3 mail - 1 eroded = 3, got %d", got)
	}
}

func TestGazeRequiresEyeContact(t *testing.T) {
	gazer := newTestCreature("gazer", "Gazer", 5, 5)
	victim := newTestCreature("victim", "Player", 5, 7)
	victim.Viewshed = &domain.ViewshedComponent{Radius: 6}

	zone := newTestZone()
	ctx := newTestContext(zone, gazer, victim)

	// Жертва не видит тайл взглядобойца - атака впустую
	gazer.WantsToGaze = &domain.WantsToGazeComponent{TargetID: victim.ID}
	GazeAttacks(ctx)
	if victim.Blind != nil {
		t.Error("Expected no blindness without eye contact")
	}

	// Теперь жертва смотрит прямо на него; рано или поздно оба
	// спасброска проваливаются
	victim.Viewshed.VisibleTiles = []int{zone.GetIndex(5, 5)}
	blinded := false
	for i := 0; i < 200 && !blinded; i++ {
		gazer.WantsToGaze = &domain.WantsToGazeComponent{TargetID: victim.ID}
		gazer.MyTurn = &domain.MyTurnComponent{}
		GazeAttacks(ctx)
		blinded = victim.Blind != nil
	}
	if !blinded {
		t.Fatal("Expected gaze to eventually blind the victim")
	}
	if victim.Blind.TicksLeft < 7 || victim.Blind.TicksLeft > 26 {
		t.Errorf("Expected blindness d20+6 in [7..26], got %d", victim.Blind.TicksLeft)
	}
	if !victim.Hates.List[gazer.ID] {
		t.Error("Expected victim to hate the gazer")
	}
	if victim.Paralyzed == nil {
		t.Error("Expected the gaze to transfix the victim")
	}
}
