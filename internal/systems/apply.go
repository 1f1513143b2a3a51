package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
)

// ApplyItems переключает включаемые предметы (фонари, факелы).
// Включение отклоняется для мокрого предмета и для пустого бака.
// Смена состояния пачкает поле зрения носителя: свет изменился.
func ApplyItems(ctx *Context) {
	for _, user := range ctx.Entities {
		if user.WantsToApply == nil {
			continue
		}
		intent := user.WantsToApply
		user.WantsToApply = nil

		item := ctx.GetEntity(intent.ItemID)
		if item == nil || item.Appliable == nil {
			continue
		}

		if item.TurnedOn != nil {
			// Выключение
			item.TurnedOn = nil
			item.TurnedOff = &domain.TurnedOffComponent{}
			ctx.Log.Append(fmt.Sprintf("%s turns off %s", user.Name, item.Name))
		} else {
			if item.Wet != nil {
				ctx.Log.Append(fmt.Sprintf("%s is too wet!", item.Name))
				continue
			}
			if item.MustBeFueled != nil && item.MustBeFueled.FuelCounter == 0 {
				ctx.Log.Append(fmt.Sprintf("%s has no fuel", item.Name))
				continue
			}
			item.TurnedOff = nil
			item.TurnedOn = &domain.TurnedOnComponent{}
			ctx.Log.Append(fmt.Sprintf("%s turns on %s", user.Name, item.Name))
		}

		if user.Viewshed != nil {
			user.Viewshed.Dirty = true
		}
		WaitAfterAction(user, 1)
	}
}

// BurnFuel сжигает топливо горящих источников света. Канистры
// (Refiller) не выгорают, бесконечное топливо (-1) не тратится.
// Носитель получает предупреждения на порогах и узнает, когда свет гаснет.
func BurnFuel(ctx *Context) {
	for _, item := range ctx.Entities {
		if item.ProducesLight == nil || item.MustBeFueled == nil || item.Refiller != nil {
			continue
		}
		if item.Appliable != nil && item.TurnedOn == nil {
			continue // выключено - не горит
		}
		fuel := item.MustBeFueled
		if fuel.FuelCounter == domain.InfiniteFuel || fuel.FuelCounter == 0 {
			continue
		}

		fuel.FuelCounter--

		carrierIsPlayer := item.InBackpack != nil && item.InBackpack.OwnerID == ctx.PlayerID

		switch fuel.FuelCounter {
		case domain.LanternFlickerThreshold, domain.LanternOutThreshold:
			if carrierIsPlayer {
				ctx.Log.Append(fmt.Sprintf("Your %s is flickering", item.Name))
			}
		case 0:
			if carrierIsPlayer {
				ctx.Log.Append(fmt.Sprintf("Your %s goes out", item.Name))
			}
			// Свет погас - носитель должен пересчитать, что видит
			if item.InBackpack != nil {
				if carrier := ctx.GetEntity(item.InBackpack.OwnerID); carrier != nil && carrier.Viewshed != nil {
					carrier.Viewshed.Dirty = true
				}
			}
		}
	}
}

// RefillItems переливает топливо из канистры в предмет.
// Цель без бака - отказ; канистра расходуется целиком и исчезает.
func RefillItems(ctx *Context) {
	for _, user := range ctx.Entities {
		if user.WantsToFuel == nil {
			continue
		}
		intent := user.WantsToFuel
		user.WantsToFuel = nil

		item := ctx.GetEntity(intent.ItemID)
		if item == nil {
			continue
		}
		if item.MustBeFueled == nil {
			ctx.Log.Append(fmt.Sprintf("%s cannot be refilled", item.Name))
			continue
		}
		if intent.WithID == "" {
			ctx.Log.Append(fmt.Sprintf("%s has nothing to refill with", user.Name))
			continue
		}
		used := ctx.GetEntity(intent.WithID)
		if used == nil || used.Refiller == nil {
			ctx.Log.Append("That cannot be used as fuel")
			continue
		}

		item.MustBeFueled.FuelCounter = used.Refiller.FuelCounter
		ctx.Despawn(used.ID)

		ctx.Log.Append(fmt.Sprintf("%s refills %s", user.Name, item.Name))
		WaitAfterAction(user, 1)
	}
}

// DigWalls обрабатывает раскопки: кости урона инструмента против
// прочности цели; по нулю тайл вскрывается в пол, цель исчезает.
func DigWalls(ctx *Context) {
	for _, digger := range ctx.Entities {
		if digger.WantsToDig == nil {
			continue
		}
		intent := digger.WantsToDig
		digger.WantsToDig = nil

		target := ctx.GetEntity(intent.TargetID)
		tool := ctx.GetEntity(intent.ToolID)
		if target == nil || target.Diggable == nil || target.Pos == nil {
			continue
		}
		if tool == nil || tool.DiggingTool == nil || tool.InflictsDamage == nil {
			ctx.Log.Append(fmt.Sprintf("%s cannot dig with that", digger.Name))
			continue
		}

		dug := utils.Roll(ctx.Rng, tool.InflictsDamage.DiceNumber, tool.InflictsDamage.DiceSize)
		target.Diggable.DigPoints -= dug

		if target.Diggable.DigPoints <= 0 {
			idx := ctx.Zone.GetIndex(target.Pos.X, target.Pos.Y)
			ctx.Zone.Tiles[idx] = domain.TileFloor
			ctx.Zone.Blocked[idx] = false
			ctx.Despawn(target.ID)
			ctx.Log.Append(fmt.Sprintf("%s breaks through!", digger.Name))
			logger.Log.WithField("tile", idx).Debug("Wall dug open")
		} else {
			ctx.Log.Append(fmt.Sprintf("%s chips away at %s", digger.Name, target.Name))
		}

		// Стены вокруг изменились
		if digger.Viewshed != nil {
			digger.Viewshed.Dirty = true
		}
		WaitAfterAction(digger, 1)
	}
}
