package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
)

// Статусные системы гоняют счетчики только у обладателей MyTurn:
// прогресс per-actor, а не per-frame, иначе быстрые существа голодали
// бы медленнее медленных.

// TickHunger - голод. Счетчик по нулю опускает статус на ступень и
// перезаводится; Starved дальше не падает, лишь копит урон с
// шансом 1/3 за тик. Переедание гасится спасброском стойкости.
func TickHunger(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.MyTurn == nil || e.Hunger == nil {
			continue
		}
		h := e.Hunger

		if h.Status == domain.HungerStarved {
			if ctx.Rng.Intn(3) == 0 {
				e.TakeDamage(1, 0, 0, "")
				if e.ID == ctx.PlayerID {
					ctx.Log.Append("You are fading from hunger...")
				}
			}
			continue
		}

		// Переедание
		if h.TickCounter > domain.MaxHungerTickCounter {
			if e.CombatStats != nil && utils.SavingThrow(ctx.Rng, e.CombatStats.CurrentToughness) {
				h.TickCounter = domain.MaxHungerTickCounter
			} else {
				h.TickCounter = domain.MaxHungerTickCounter - utils.Roll(ctx.Rng, 3, 10)
				if e.Pos != nil {
					ctx.Zone.SetDecal(ctx.Zone.GetIndex(e.Pos.X, e.Pos.Y), domain.DecalVomit)
				}
				ctx.Log.Append(fmt.Sprintf("%s vomits from overeating!", e.Name))
			}
			continue
		}

		h.TickCounter--
		if h.TickCounter <= 0 {
			h.Status = worsenHunger(h.Status)
			h.TickCounter = domain.MaxHungerTickCounter
			if e.ID == ctx.PlayerID {
				ctx.Log.Append(hungerMessage(h.Status))
			}
		}
	}
}

func hungerMessage(s domain.HungerStatus) string {
	switch s {
	case domain.HungerNormal:
		return "You are no longer satiated"
	case domain.HungerHungry:
		return "You are hungry"
	case domain.HungerStarved:
		return "You are starving!"
	}
	return ""
}

// TickThirst - жажда, зеркально голоду.
func TickThirst(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.MyTurn == nil || e.Thirst == nil {
			continue
		}
		t := e.Thirst

		if t.Status == domain.ThirstDehydrated {
			if ctx.Rng.Intn(3) == 0 {
				e.TakeDamage(1, 0, 0, "")
				if e.ID == ctx.PlayerID {
					ctx.Log.Append("You are fading from dehydration...")
				}
			}
			continue
		}

		if t.TickCounter > domain.MaxThirstTickCounter {
			if e.CombatStats != nil && utils.SavingThrow(ctx.Rng, e.CombatStats.CurrentToughness) {
				t.TickCounter = domain.MaxThirstTickCounter
			} else {
				t.TickCounter = domain.MaxThirstTickCounter - utils.Roll(ctx.Rng, 3, 10)
				ctx.Log.Append(fmt.Sprintf("%s feels bloated", e.Name))
			}
			continue
		}

		t.TickCounter--
		if t.TickCounter <= 0 {
			t.Status = worsenThirst(t.Status)
			t.TickCounter = domain.MaxThirstTickCounter
			if e.ID == ctx.PlayerID {
				ctx.Log.Append(thirstMessage(t.Status))
			}
		}
	}
}

func thirstMessage(s domain.ThirstStatus) string {
	switch s {
	case domain.ThirstNormal:
		return "You are no longer quenched"
	case domain.ThirstThirsty:
		return "You are thirsty"
	case domain.ThirstDehydrated:
		return "You are dehydrated!"
	}
	return ""
}

// TickAutoHeal - пассивная регенерация: каждый 4-й ход +1 выносливости,
// но не при голодной смерти или обезвоживании.
func TickAutoHeal(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.MyTurn == nil || e.AutoHeal == nil || e.CombatStats == nil {
			continue
		}
		if e.Hunger != nil && e.Hunger.Status == domain.HungerStarved {
			continue
		}
		if e.Thirst != nil && e.Thirst.Status == domain.ThirstDehydrated {
			continue
		}

		e.AutoHeal.TickCounter++
		if e.AutoHeal.TickCounter < domain.MaxStaminaHealTickCounter {
			continue
		}
		e.AutoHeal.TickCounter = 0

		if e.CombatStats.CurrentStamina < e.CombatStats.MaxStamina {
			e.CombatStats.CurrentStamina++
		}
	}
}

// TickWetness - промокание: стоишь в воде - мокрый по максимуму,
// вышел - счетчик тает, по нулю обсыхаешь.
func TickWetness(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.Pos == nil || e.CombatStats == nil {
			continue
		}
		idx := ctx.Zone.GetIndex(e.Pos.X, e.Pos.Y)

		if ctx.Zone.Water[idx] {
			if e.Wet == nil && e.ID == ctx.PlayerID {
				ctx.Log.Append("You are soaking wet")
			}
			e.Wet = &domain.WetComponent{Countdown: domain.MaxWetTickCounter}
			// Промокает и носимое
			for _, item := range BackpackOf(ctx, e.ID) {
				item.Wet = &domain.WetComponent{Countdown: domain.MaxWetTickCounter}
				if item.TurnedOn != nil && item.MustBeFueled != nil {
					// Вода гасит огонь
					item.TurnedOn = nil
					item.TurnedOff = &domain.TurnedOffComponent{}
					if e.Viewshed != nil {
						e.Viewshed.Dirty = true
					}
					if e.ID == ctx.PlayerID {
						ctx.Log.Append(fmt.Sprintf("Your %s is put out by the water!", item.Name))
					}
				}
			}
			continue
		}

		if e.Wet != nil {
			e.Wet.Countdown--
			if e.Wet.Countdown <= 0 {
				e.Wet = nil
				if e.ID == ctx.PlayerID {
					ctx.Log.Append("You are dry now")
				}
			}
		}
	}
}

// DryItems сушит отдельно лежащие и носимые мокрые предметы.
func DryItems(ctx *Context) {
	for _, item := range ctx.Entities {
		if item.Wet == nil || item.CombatStats != nil {
			continue
		}
		// Предмет в воде не сохнет
		if item.Pos != nil && ctx.Zone.Water[ctx.Zone.GetIndex(item.Pos.X, item.Pos.Y)] {
			continue
		}
		// Предмет в рюкзаке мокрого носителя тоже не сохнет
		if item.InBackpack != nil {
			if owner := ctx.GetEntity(item.InBackpack.OwnerID); owner != nil && owner.Wet != nil {
				continue
			}
		}
		item.Wet.Countdown--
		if item.Wet.Countdown <= 0 {
			item.Wet = nil
		}
	}
}
