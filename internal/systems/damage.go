package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ApplyDamage сливает аккумуляторы урона в характеристики и проводит
// проверку смерти. Урон по выносливости сверх остатка переливается в
// стойкость (стойкость падает только переливом, никогда напрямую).
// Жертва запоминает обидчика в списке ненависти.
//
// Смерть: выносливость 0, урон в этом тике > 0 и (стойкость < 1 или
// d20 > стойкость). Труп спавнится, рюкзак высыпается, сущность
// удаляется. Смерть игрока поднимает флаг GameOver для движка.
func ApplyDamage(ctx *Context) {
	// Двухфазно: сначала собираем пострадавших, потом применяем.
	var suffering []*domain.Entity
	for _, e := range ctx.Entities {
		if e.SufferingDamage != nil && e.CombatStats != nil {
			suffering = append(suffering, e)
		}
	}

	for _, e := range suffering {
		dmg := e.SufferingDamage
		e.SufferingDamage = nil
		stats := e.CombatStats

		total := dmg.StaminaDamage + dmg.ToughnessDamage + dmg.DexterityDamage

		// Перелив: выносливость не уходит ниже нуля
		spill := 0
		stats.CurrentStamina -= dmg.StaminaDamage
		if stats.CurrentStamina < 0 {
			spill = -stats.CurrentStamina
			stats.CurrentStamina = 0
		}
		stats.CurrentToughness -= dmg.ToughnessDamage + spill
		if stats.CurrentToughness < 0 {
			stats.CurrentToughness = 0
		}
		stats.CurrentDexterity -= dmg.DexterityDamage
		if stats.CurrentDexterity < 0 {
			stats.CurrentDexterity = 0
		}

		if dmg.SourceID != "" && e.Hates != nil {
			e.Hates.Add(dmg.SourceID)
		}

		if total > 0 && stats.CurrentStamina == 0 {
			if stats.CurrentToughness < 1 || utils.D20(ctx.Rng) > stats.CurrentToughness {
				kill(ctx, e, dmg.SourceID)
			}
		}
	}
}

func kill(ctx *Context, e *domain.Entity, killer domain.EntityID) {
	logger.Log.WithFields(logrus.Fields{
		"component": "damage_system",
		"entity":    e.Name,
		"killer":    killer,
	}).Info("Entity died")

	if e.ID == ctx.PlayerID {
		ctx.Log.Append("You die...")
		ctx.PlayerDied = true
		// Сущность игрока остается: экран GameOver рисует ее труп
		return
	}

	ctx.Log.Append(fmt.Sprintf("%s dies!", e.Name))

	deathPos := e.Pos
	if deathPos != nil {
		// Труп (возможно, заразный)
		if e.Species != nil && e.Species.HasCorpse {
			ctx.Spawn(newCorpse(e, *deathPos))
		}
		// Рюкзак высыпается на тайл смерти, экипировка снимается
		dropAllBelongings(ctx, e.ID, *deathPos)
	}

	// Убийца получает опыт
	if killer != "" {
		if k := ctx.GetEntity(killer); k != nil && k.Experience != nil && e.CombatStats != nil {
			k.Experience.XP += e.CombatStats.MaxStamina
		}
	}

	ctx.Despawn(e.ID)
}

// newCorpse создает предмет-труп на тайле смерти.
func newCorpse(dead *domain.Entity, pos domain.Position) *domain.Entity {
	corpse := &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Name:   dead.Name + " corpse",
		Pos:    &domain.Position{X: pos.X, Y: pos.Y},
		Render: &domain.RenderComponent{Atlas: "Items", Col: 0, Row: 4, ZIndex: 1},
		Corpse: &domain.CorpseComponent{},
		Edible: &domain.EdibleComponent{NutritionDiceNumber: 2, NutritionDiceSize: 6},
		Perishable: &domain.PerishableComponent{
			RotCounter: domain.StartingRotCounter,
		},
	}
	if dead.Species != nil && dead.Species.CorpseDisease != nil {
		corpse.DiseaseBearer = &domain.DiseaseBearerComponent{Kind: *dead.Species.CorpseDisease}
	}
	return corpse
}

// dropAllBelongings принудительно высыпает рюкзак умершего.
func dropAllBelongings(ctx *Context, owner domain.EntityID, at domain.Position) {
	for _, item := range ctx.Entities {
		if item.InBackpack == nil || item.InBackpack.OwnerID != owner {
			continue
		}
		item.InBackpack = nil
		item.Equipped = nil
		item.Pos = &domain.Position{X: at.X, Y: at.Y}
	}
}
