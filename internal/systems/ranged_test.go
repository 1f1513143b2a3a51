package systems

import (
	"testing"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

func TestBresenhamLineStraight(t *testing.T) {
	zone := newTestZone()
	line := BresenhamLine(zone, 2, 2, 6, 2)

	if len(line) != 5 {
		t.Fatalf("Expected 5 tiles on a straight line, got %d", len(line))
	}
	for i, idx := range line {
		x, y := zone.Coords(idx)
		if x != 2+i || y != 2 {
			t.Errorf("Expected tile %d at (%d,2), got (%d,%d)", i, 2+i, x, y)
		}
	}
}

func TestProjectileHitsFirstCreatureOnLine(t *testing.T) {
	zone := newTestZone()
	shooter := newTestCreature("shooter", "Player", 2, 2)
	bystander := newTestCreature("bystander", "Rat", 5, 2)
	bystander.MyTurn = nil
	intended := newTestCreature("intended", "Ghoul", 8, 2)
	intended.MyTurn = nil

	bow := &domain.Entity{
		ID:           "bow",
		Name:         "short bow",
		InBackpack:   &domain.InBackpackComponent{OwnerID: shooter.ID, AssignedChar: 'a'},
		RangedWeapon: &domain.RangedWeaponComponent{AttackDice: 6, Kind: domain.AmmoArrow, AmmoTotal: 2},
	}

	ctx := newTestContext(zone, shooter, bystander, intended, bow)
	MapIndexing(ctx)

	shooter.WantsToShoot = &domain.WantsToShootComponent{ItemID: bow.ID, TargetX: 8, TargetY: 2}
	RangedCombat(ctx)

	if intended.SufferingDamage != nil {
		t.Error("Expected the projectile to stop at the first creature")
	}
	if bystander.SufferingDamage == nil {
		t.Error("Expected the bystander on the line to be hit")
	}
	if bow.RangedWeapon.AmmoTotal != 1 {
		t.Errorf("Expected ammo decremented to 1, got %d", bow.RangedWeapon.AmmoTotal)
	}

	// Без боеприпасов выстрела нет
	bow.RangedWeapon.AmmoTotal = 0
	shooter.MyTurn = &domain.MyTurnComponent{}
	shooter.WantsToShoot = &domain.WantsToShootComponent{ItemID: bow.ID, TargetX: 8, TargetY: 2}
	RangedCombat(ctx)
	if !logContains(ctx.Log, "Player has nothing left to shoot.") {
		t.Errorf("Expected empty-quiver message, log: %v", ctx.Log.Entries)
	}
}

func TestProjectileStopsAtWall(t *testing.T) {
	zone := newTestZone()
	zone.Tiles[zone.GetIndex(5, 2)] = domain.TileWall

	shooter := newTestCreature("shooter", "Player", 2, 2)
	target := newTestCreature("target", "Ghoul", 8, 2)
	target.MyTurn = nil

	bow := &domain.Entity{
		ID:           "bow",
		Name:         "short bow",
		InBackpack:   &domain.InBackpackComponent{OwnerID: shooter.ID, AssignedChar: 'a'},
		RangedWeapon: &domain.RangedWeaponComponent{AttackDice: 6, Kind: domain.AmmoArrow, AmmoTotal: 1},
	}

	ctx := newTestContext(zone, shooter, target, bow)
	MapIndexing(ctx)

	shooter.WantsToShoot = &domain.WantsToShootComponent{ItemID: bow.ID, TargetX: 8, TargetY: 2}
	RangedCombat(ctx)

	if target.SufferingDamage != nil {
		t.Error("Expected wall to stop the projectile")
	}
	if !logContains(ctx.Log, "The projectile gets stuck in something solid.") {
		t.Errorf("Expected stuck message, log: %v", ctx.Log.Entries)
	}
}

// Выстрел в собственный тайл бьет самого стрелка, без анимации.
func TestSelfTileShotHitsShooter(t *testing.T) {
	zone := newTestZone()
	shooter := newTestCreature("shooter", "Player", 4, 4)
	bow := &domain.Entity{
		ID:           "bow",
		Name:         "short bow",
		InBackpack:   &domain.InBackpackComponent{OwnerID: shooter.ID, AssignedChar: 'a'},
		RangedWeapon: &domain.RangedWeaponComponent{AttackDice: 6, Kind: domain.AmmoArrow, AmmoTotal: 1},
	}
	ctx := newTestContext(zone, shooter, bow)
	MapIndexing(ctx)

	shooter.WantsToShoot = &domain.WantsToShootComponent{ItemID: bow.ID, TargetX: 4, TargetY: 4}
	RangedCombat(ctx)

	if shooter.SufferingDamage == nil {
		t.Error("Expected the shooter to hit itself")
	}
	ctx.Flush()
	if AnyParticles(ctx) {
		t.Error("Expected no line animation for a self-tile shot")
	}
}

func TestZapDamageAndAnimation(t *testing.T) {
	zone := newTestZone()
	zapper := newTestCreature("zapper", "Player", 2, 2)
	target := newTestCreature("target", "Ghoul", 6, 2)
	target.MyTurn = nil
	target.CombatStats.CurrentDexterity = 0 // спасбросок невозможен

	wand := &domain.Entity{
		ID:             "wand",
		Name:           "zap wand",
		InBackpack:     &domain.InBackpackComponent{OwnerID: zapper.ID, AssignedChar: 'a'},
		Invokable:      &domain.InvokableComponent{Kind: domain.InvokableZapWand},
		InflictsDamage: &domain.InflictsDamageComponent{DiceNumber: 2, DiceSize: 6},
	}

	// Линия видна игроку - анимация обязана встать в очередь
	for x := 2; x <= 6; x++ {
		zone.Visible[zone.GetIndex(x, 2)] = true
	}

	ctx := newTestContext(zone, zapper, target, wand)
	MapIndexing(ctx)

	zapper.WantsToZap = &domain.WantsToZapComponent{ItemID: wand.ID, TargetX: 6, TargetY: 2}
	ZapAttacks(ctx)

	if target.SufferingDamage == nil {
		t.Fatal("Expected zap damage accumulated")
	}
	dmg := target.SufferingDamage.StaminaDamage
	if dmg < 2 || dmg > 12 {
		t.Errorf("Expected full 2d6 damage in [2..12] with dexterity 0, got %d", dmg)
	}

	ctx.Flush()
	if !AnyParticles(ctx) {
		t.Fatal("Expected a projectile animation queued")
	}

	// Кадры растут на один тайл и доигрываются до исчезновения
	var particle *domain.Entity
	for _, e := range ctx.Entities {
		if e.ParticleAnimation != nil {
			particle = e
		}
	}
	frames := particle.ParticleAnimation.Frames
	for i := 1; i < len(frames); i++ {
		if len(frames[i]) != len(frames[i-1])+1 {
			t.Error("Expected each frame to grow by one tile")
		}
	}
	for i := 0; i < len(frames); i++ {
		AdvanceParticles(ctx)
	}
	ctx.Flush()
	if AnyParticles(ctx) {
		t.Error("Expected particle entity despawned after the last frame")
	}
}
