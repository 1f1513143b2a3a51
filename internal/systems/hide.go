package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
)

// TickHiding - умение прятаться. Каждый свой ход существо с CanHide
// бросает d20 против ловкости: успех переключает скрытность.
// Раскрытие вешает перезарядку (MaxHiddenTurns - dex/3) * speed.
func TickHiding(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.MyTurn == nil || e.CanHide == nil || e.CombatStats == nil {
			continue
		}

		if e.CanHide.CooldownTicks > 0 {
			e.CanHide.CooldownTicks--
			continue
		}

		if !utils.SavingThrow(ctx.Rng, e.CombatStats.CurrentDexterity) {
			continue
		}

		if e.Hidden == nil {
			e.Hidden = &domain.HiddenComponent{TurnCounter: 0}
			if playerSees(ctx, e) {
				ctx.Log.Append(fmt.Sprintf("%s suddenly disappears!", e.Name))
			}
		} else {
			exposeHidden(ctx, e)
		}
	}
}

// exposeHidden раскрывает спрятавшегося и заводит перезарядку.
func exposeHidden(ctx *Context, e *domain.Entity) {
	e.Hidden = nil
	if e.CanHide != nil && e.CombatStats != nil {
		cooldown := (domain.MaxHiddenTurns - e.CombatStats.CurrentDexterity/3) * int(e.CombatStats.Speed)
		if cooldown < 1 {
			cooldown = 1
		}
		e.CanHide.CooldownTicks = cooldown
	}
	if playerSees(ctx, e) {
		ctx.Log.Append(fmt.Sprintf("%s suddenly appears!", e.Name))
	}
}

// playerSees: тайл сущности в текущем поле зрения игрока.
func playerSees(ctx *Context, e *domain.Entity) bool {
	if e.Pos == nil {
		return false
	}
	return ctx.Zone.Visible[ctx.Zone.GetIndex(e.Pos.X, e.Pos.Y)]
}
