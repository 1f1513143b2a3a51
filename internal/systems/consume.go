package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
)

// EatFood обрабатывает намерения съесть. Порядок проверок жесткий:
// смертельное -> заразное -> гнилое/ядовитое -> питание. Кража с
// прилавка регистрируется по позиции предмета на момент еды.
func EatFood(ctx *Context) {
	for _, eater := range ctx.Entities {
		if eater.WantsToEat == nil {
			continue
		}
		intent := eater.WantsToEat
		eater.WantsToEat = nil

		item := ctx.GetEntity(intent.ItemID)
		if item == nil {
			continue
		}
		if item.Edible == nil {
			ctx.Log.Append(fmt.Sprintf("%s is not edible", item.Name))
			continue
		}

		switch {
		case item.Deadly != nil:
			// Летально: весь текущий запас выносливости и стойкости
			if eater.CombatStats != nil {
				lethal := eater.CombatStats.CurrentStamina + eater.CombatStats.CurrentToughness
				eater.TakeDamage(lethal, 0, 0, "")
			}
			if eater.ID == ctx.PlayerID {
				ctx.Log.Append("You ate a deadly poisonous food! You agonize and die")
			} else {
				ctx.Log.Append(fmt.Sprintf("%s agonizes and dies!", eater.Name))
			}

		case item.Unsavoury != nil && (item.Unsavoury.Rotten || item.Unsavoury.Poisonous):
			if eater.Hunger != nil {
				eater.Hunger.TickCounter -= utils.Roll(ctx.Rng, 3, 10)
				if eater.Hunger.TickCounter < 0 {
					eater.Hunger.TickCounter = 0
				}
				eater.Hunger.Status = worsenHunger(eater.Hunger.Status)
			}
			if eater.Pos != nil {
				ctx.Zone.SetDecal(ctx.Zone.GetIndex(eater.Pos.X, eater.Pos.Y), domain.DecalVomit)
			}
			ctx.Log.Append(fmt.Sprintf("%s retches violently!", eater.Name))

		default:
			if eater.Hunger != nil {
				gain := 3 * utils.Roll(ctx.Rng, item.Edible.NutritionDiceNumber, item.Edible.NutritionDiceSize)
				eater.Hunger.TickCounter += gain
			}
			ctx.Log.Append(fmt.Sprintf("%s eats %s", eater.Name, item.Name))
		}

		// Заразность ортогональна питательности
		if item.DiseaseBearer != nil {
			infect(ctx, eater, item.DiseaseBearer.Kind)
		}

		// Кража: предмет лежал на прилавке - хозяин запоминает вора.
		if item.Pos != nil {
			reportTheft(ctx, eater, item)
		}

		ctx.Despawn(item.ID)
		WaitAfterAction(eater, 1)
	}
}

// DrinkLiquids - симметрия еды над жаждой.
func DrinkLiquids(ctx *Context) {
	for _, drinker := range ctx.Entities {
		if drinker.WantsToDrink == nil {
			continue
		}
		intent := drinker.WantsToDrink
		drinker.WantsToDrink = nil

		item := ctx.GetEntity(intent.ItemID)
		if item == nil {
			continue
		}
		if item.Quaffable == nil {
			ctx.Log.Append(fmt.Sprintf("%s is not drinkable", item.Name))
			continue
		}

		if item.Unsavoury != nil && item.Unsavoury.Poisonous {
			if drinker.Thirst != nil {
				drinker.Thirst.TickCounter -= utils.Roll(ctx.Rng, 3, 10)
				if drinker.Thirst.TickCounter < 0 {
					drinker.Thirst.TickCounter = 0
				}
				drinker.Thirst.Status = worsenThirst(drinker.Thirst.Status)
			}
			if drinker.Pos != nil {
				ctx.Zone.SetDecal(ctx.Zone.GetIndex(drinker.Pos.X, drinker.Pos.Y), domain.DecalVomit)
			}
			ctx.Log.Append(fmt.Sprintf("%s gags on the foul liquid!", drinker.Name))
		} else {
			if drinker.Thirst != nil {
				gain := 3 * utils.Roll(ctx.Rng, item.Quaffable.ThirstDiceNumber, item.Quaffable.ThirstDiceSize)
				drinker.Thirst.TickCounter += gain
			}
			ctx.Log.Append(fmt.Sprintf("%s drinks %s", drinker.Name, item.Name))
		}

		if item.DiseaseBearer != nil {
			infect(ctx, drinker, item.DiseaseBearer.Kind)
		}
		if item.Pos != nil {
			reportTheft(ctx, drinker, item)
		}

		ctx.Despawn(item.ID)
		WaitAfterAction(drinker, 1)
	}
}

// infect заражает: повторное заражение тем же видом обнуляет таймер и
// срывает улучшение (болезнь обостряется), новое - стартует с запасом.
func infect(ctx *Context, victim *domain.Entity, kind domain.DiseaseKind) {
	if victim.Diseases == nil {
		victim.Diseases = &domain.DiseasesComponent{}
	}
	if victim.Diseases.Active == nil {
		victim.Diseases.Active = make(map[domain.DiseaseKind]*domain.DiseaseState)
	}

	if state, already := victim.Diseases.Active[kind]; already {
		state.TickCounter = 0
		state.Improving = false
	} else {
		victim.Diseases.Active[kind] = &domain.DiseaseState{
			TickCounter: domain.MaxDiseaseTickCounter + utils.D20(ctx.Rng),
			Improving:   false,
		}
	}

	logger.Log.WithField("disease", kind.String()).
		WithField("victim", victim.Name).Debug("Disease contracted")
	if victim.ID == ctx.PlayerID {
		ctx.Log.Append("You feel terribly sick...")
	}
}

// reportTheft: предмет лежит на тайле чьей-то лавки - хозяин добавляет
// едока в список ненависти.
func reportTheft(ctx *Context, thief *domain.Entity, item *domain.Entity) {
	itemIdx := ctx.Zone.GetIndex(item.Pos.X, item.Pos.Y)
	for _, owner := range ctx.Entities {
		if owner.ShopOwner == nil || owner.ID == thief.ID {
			continue
		}
		for _, tile := range owner.ShopOwner.ShopTiles {
			if tile != itemIdx {
				continue
			}
			if owner.Hates == nil {
				owner.Hates = &domain.HatesComponent{}
			}
			owner.Hates.Add(thief.ID)
			ctx.Log.Append(fmt.Sprintf("%s shouts: Thief! Thief!", owner.Name))
			break
		}
	}
}

func worsenHunger(s domain.HungerStatus) domain.HungerStatus {
	if s < domain.HungerStarved {
		return s + 1
	}
	return s
}

func worsenThirst(s domain.ThirstStatus) domain.ThirstStatus {
	if s < domain.ThirstDehydrated {
		return s + 1
	}
	return s
}
