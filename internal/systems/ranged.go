package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
)

// BresenhamLine возвращает тайлы отрезка от (x0,y0) до (x1,y1)
// включительно, в порядке от стрелка к цели.
func BresenhamLine(z *domain.Zone, x0, y0, x1, y1 int) []int {
	var line []int

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if z.InBounds(x, y) {
			line = append(line, z.GetIndex(x, y))
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return line
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// projectileHit - результат проводки снаряда по линии.
type projectileHit struct {
	target    *domain.Entity // первое существо на линии (nil, если никого)
	travelled []int          // тайлы, которые снаряд успел пройти
	hitSolid  bool           // уперся в заблокированный тайл
}

// traceProjectile ведет снаряд по линии, пропуская тайл стрелка.
// Фактическая цель - первая сущность с телом на пути; прицельная точка
// роли не играет. Линия обрезается по первому препятствию.
func traceProjectile(ctx *Context, shooter *domain.Entity, line []int) projectileHit {
	var hit projectileHit

	for i, idx := range line {
		if i == 0 {
			continue // тайл стрелка
		}
		hit.travelled = append(hit.travelled, idx)

		for _, e := range ctx.Zone.TileContent[idx] {
			if e.IsCreature() {
				hit.target = e
				return hit
			}
		}
		if ctx.Zone.Blocked[idx] {
			hit.hitSolid = true
			return hit
		}
	}
	return hit
}

// queueProjectileAnimation собирает покадровую анимацию растущей линии
// и ставит ее в мир, если хоть один тайл виден игроку.
func queueProjectileAnimation(ctx *Context, travelled []int) {
	if len(travelled) == 0 {
		return
	}
	anyVisible := false
	for _, idx := range travelled {
		if ctx.Zone.Visible[idx] {
			anyVisible = true
			break
		}
	}
	if !anyVisible {
		return
	}

	frames := make([][]int, len(travelled))
	for i := range travelled {
		// Снаряд растет на один тайл за кадр
		frames[i] = append([]int(nil), travelled[:i+1]...)
	}

	ctx.Spawn(&domain.Entity{
		ID:                domain.EntityID(utils.GenerateID()),
		Name:              "projectile trail",
		ParticleAnimation: &domain.ParticleAnimationComponent{Frames: frames},
	})
}

// RangedCombat разрешает выстрелы из стрелкового оружия.
func RangedCombat(ctx *Context) {
	for _, shooter := range ctx.Entities {
		if shooter.WantsToShoot == nil {
			continue
		}
		intent := shooter.WantsToShoot
		shooter.WantsToShoot = nil

		weapon := ctx.GetEntity(intent.ItemID)
		if weapon == nil || weapon.RangedWeapon == nil || shooter.Pos == nil {
			continue
		}
		if weapon.RangedWeapon.AmmoTotal <= 0 {
			ctx.Log.Append(fmt.Sprintf("%s has nothing left to shoot.", shooter.Name))
			continue
		}
		weapon.RangedWeapon.AmmoTotal--

		resolveProjectile(ctx, shooter, intent.TargetX, intent.TargetY, func(target *domain.Entity) {
			damage := utils.Roll(ctx.Rng, 1, weapon.RangedWeapon.AttackDice) - ArmorValue(ctx, target)
			if damage < 0 {
				damage = 0
			}
			target.TakeDamage(damage, 0, 0, shooter.ID)
			ctx.Log.Append(fmt.Sprintf("The shot hits %s!", target.Name))
		})

		WaitAfterAction(shooter, 1)
	}
}

// ZapAttacks разрешает разряды жезлов: урон - кости Invokable-предмета,
// спасбросок d20 по ловкости режет урон пополам.
func ZapAttacks(ctx *Context) {
	for _, zapper := range ctx.Entities {
		if zapper.WantsToZap == nil {
			continue
		}
		intent := zapper.WantsToZap
		zapper.WantsToZap = nil

		wand := ctx.GetEntity(intent.ItemID)
		if wand == nil || wand.Invokable == nil || wand.InflictsDamage == nil || zapper.Pos == nil {
			continue
		}

		resolveProjectile(ctx, zapper, intent.TargetX, intent.TargetY, func(target *domain.Entity) {
			damage := utils.Roll(ctx.Rng, wand.InflictsDamage.DiceNumber, wand.InflictsDamage.DiceSize)
			if target.CombatStats != nil && utils.SavingThrow(ctx.Rng, target.CombatStats.CurrentDexterity) {
				damage /= 2
			}
			target.TakeDamage(damage, 0, 0, zapper.ID)
			ctx.Log.Append(fmt.Sprintf("The bolt strikes %s!", target.Name))
		})

		WaitAfterAction(zapper, 1)
	}
}

// resolveProjectile - общая проводка: линия Брезенхема, первая жертва
// на пути, обрезка по препятствию, очередь анимации.
// Выстрел в собственный тайл бьет самого стрелка без анимации.
func resolveProjectile(ctx *Context, shooter *domain.Entity, tx, ty int, apply func(*domain.Entity)) {
	if shooter.Pos.X == tx && shooter.Pos.Y == ty {
		apply(shooter)
		return
	}

	line := BresenhamLine(ctx.Zone, shooter.Pos.X, shooter.Pos.Y, tx, ty)
	hit := traceProjectile(ctx, shooter, line)

	queueProjectileAnimation(ctx, hit.travelled)

	switch {
	case hit.target != nil:
		apply(hit.target)
	case hit.hitSolid:
		ctx.Log.Append("The projectile gets stuck in something solid.")
	}
}
