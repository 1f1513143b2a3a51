package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Порог следующего уровня растет линейно: опыт капает по max stamina
// жертвы, так что цифры маленькие.
const xpPerLevel = 20

// Advancement - проверка порогов опыта и броски прироста статов.
// Классическая схема: стат растет, только если d20 выбросил БОЛЬШЕ
// текущего максимума - чем выше стат, тем реже прирост.
func Advancement(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.Experience == nil || e.CombatStats == nil {
			continue
		}
		for e.Experience.XP >= e.Experience.Level*xpPerLevel {
			e.Experience.Level++
			stats := e.CombatStats

			gained := utils.Roll(ctx.Rng, 1, 4)
			stats.MaxStamina += gained
			stats.CurrentStamina += gained

			if utils.D20(ctx.Rng) > stats.MaxToughness {
				stats.MaxToughness++
				stats.CurrentToughness++
			}
			if utils.D20(ctx.Rng) > stats.MaxDexterity {
				stats.MaxDexterity++
				stats.CurrentDexterity++
			}

			logger.Log.WithFields(logrus.Fields{
				"entity": e.ID,
				"level":  e.Experience.Level,
			}).Debug("level up")

			if e.ID == ctx.PlayerID {
				ctx.Log.Append(fmt.Sprintf("Welcome to experience level %d!", e.Experience.Level))
			}
		}
	}
}
