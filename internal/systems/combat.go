package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
	"github.com/sirupsen/logrus"
)

// MeleeCombat разрешает все намерения ближнего боя этого тика.
// damage = max(0, roll(1, unarmed_dice | оружие) - базовая броня цели);
// урон не применяется сразу, а копится в аккумуляторе жертвы.
func MeleeCombat(ctx *Context) {
	for _, attacker := range ctx.Entities {
		if attacker.WantsToMelee == nil {
			continue
		}
		intent := attacker.WantsToMelee
		attacker.WantsToMelee = nil

		target := ctx.GetEntity(intent.TargetID)
		if target == nil || target.CombatStats == nil || attacker.CombatStats == nil {
			continue // цель испарилась: намерение сгорает, ход не тратится
		}

		// Атака раскрывает спрятавшегося атакующего
		if attacker.Hidden != nil {
			exposeHidden(ctx, attacker)
		}

		attackDice := attacker.CombatStats.UnarmedAttackDice
		if weapon := equippedMeleeWeapon(ctx, attacker.ID); weapon != nil {
			attackDice = weapon.MeleeWeapon.AttackDice
		}

		damage := utils.Roll(ctx.Rng, 1, attackDice) - target.CombatStats.BaseArmor
		if damage < 0 {
			damage = 0
		}

		target.TakeDamage(damage, 0, 0, attacker.ID)

		logger.Log.WithFields(logrus.Fields{
			"component": "combat_system",
			"attacker":  attacker.Name,
			"target":    target.Name,
			"damage":    damage,
		}).Debug("Melee attack resolved")

		if damage > 0 {
			ctx.Log.Append(fmt.Sprintf("%s hits %s!", attacker.Name, target.Name))
		} else {
			ctx.Log.Append(fmt.Sprintf("%s swing bounces off %s!", attacker.Name, target.Name))
		}

		WaitAfterAction(attacker, 1)
	}
}

// equippedMeleeWeapon ищет оружие ближнего боя в руках владельца.
func equippedMeleeWeapon(ctx *Context, owner domain.EntityID) *domain.Entity {
	for _, item := range ctx.Entities {
		if item.Equipped == nil || item.Equipped.OwnerID != owner {
			continue
		}
		if item.MeleeWeapon == nil {
			continue
		}
		switch item.Equipped.Location {
		case domain.LocationLeftHand, domain.LocationRightHand, domain.LocationHands:
			return item
		}
	}
	return nil
}

// ArmorValue суммирует базовую броню и надетые доспехи владельца,
// вычитая штрафы износа.
func ArmorValue(ctx *Context, defender *domain.Entity) int {
	value := 0
	if defender.CombatStats != nil {
		value = defender.CombatStats.BaseArmor
	}
	for _, item := range ctx.Entities {
		if item.Equipped == nil || item.Equipped.OwnerID != defender.ID || item.Armor == nil {
			continue
		}
		value += item.Armor.Value
		if item.Eroded != nil {
			value -= item.Eroded.Penalty
		}
	}
	if value < 0 {
		value = 0
	}
	return value
}

// GazeAttacks разрешает атаки взглядом. Требование зрительного контакта
// обоюдное: жертва поражаема, только если ее собственное поле зрения
// содержит тайл взглядобойца. Два спасброска d20 (ловкость - увернуться,
// стойкость - сопротивляться); оба провалены - слепота на d20+6 и
// паралич на следующий ход.
func GazeAttacks(ctx *Context) {
	for _, gazer := range ctx.Entities {
		if gazer.WantsToGaze == nil {
			continue
		}
		intent := gazer.WantsToGaze
		gazer.WantsToGaze = nil

		target := ctx.GetEntity(intent.TargetID)
		if target == nil || target.Viewshed == nil || gazer.Pos == nil || target.CombatStats == nil {
			continue
		}

		gazerIdx := ctx.Zone.GetIndex(gazer.Pos.X, gazer.Pos.Y)
		if !target.Viewshed.Contains(gazerIdx) {
			// Жертва не смотрит - взгляд впустую, но ход потрачен
			WaitAfterAction(gazer, 1)
			continue
		}

		if utils.SavingThrow(ctx.Rng, target.CombatStats.CurrentDexterity) {
			ctx.Log.Append(fmt.Sprintf("%s averts its eyes from %s!", target.Name, gazer.Name))
		} else if utils.SavingThrow(ctx.Rng, target.CombatStats.CurrentToughness) {
			ctx.Log.Append(fmt.Sprintf("%s resists the gaze of %s!", target.Name, gazer.Name))
		} else {
			target.Blind = &domain.BlindComponent{TicksLeft: utils.D20(ctx.Rng) + 6}
			target.Paralyzed = &domain.ParalyzedComponent{}
			if target.Viewshed != nil {
				target.Viewshed.Dirty = true
			}
			if target.Hates != nil {
				target.Hates.Add(gazer.ID)
			}
			ctx.Log.Append(fmt.Sprintf("%s is blinded and transfixed by the gaze of %s!", target.Name, gazer.Name))
		}

		WaitAfterAction(gazer, 1)
	}
}
