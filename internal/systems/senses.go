package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
)

// ProcessSounds - источники шума с шансом на тик издают реплику,
// которую слышат все существа с виджетом слуха в радиусе.
// Игроку пишем в журнал, монстрам звук лишь намекает направление
// (пока только лог, охота по звуку - задел на будущее).
func ProcessSounds(ctx *Context) {
	type heard struct {
		listener *domain.Entity
		noise    string
	}
	var pending []heard

	for _, emitter := range ctx.Entities {
		if emitter.ProducesSound == nil || emitter.Pos == nil {
			continue
		}
		if len(emitter.ProducesSound.Noises) == 0 {
			continue
		}
		if utils.D20(ctx.Rng) > emitter.ProducesSound.Chance {
			continue
		}
		noise := emitter.ProducesSound.Noises[ctx.Rng.Intn(len(emitter.ProducesSound.Noises))]

		for _, listener := range ctx.Entities {
			if listener.ListenPerception == nil || listener.Pos == nil || listener.ID == emitter.ID {
				continue
			}
			if listener.Pos.DistanceTo(*emitter.Pos) > float64(listener.ListenPerception.Radius) {
				continue
			}
			pending = append(pending, heard{listener, noise})
		}
	}

	for _, h := range pending {
		if h.listener.ID == ctx.PlayerID {
			ctx.Log.Append(fmt.Sprintf("You hear %s", h.noise))
		}
	}
}

// ProcessSmells - пассивный нюх: существо с обонянием замечает запахи
// в радиусе. Кэш LastSmelled не дает спамить одним и тем же запахом,
// пока источник не выйдет из радиуса.
func ProcessSmells(ctx *Context) {
	for _, sniffer := range ctx.Entities {
		if sniffer.SmellPerception == nil || sniffer.Pos == nil {
			continue
		}
		if sniffer.SmellPerception.LastSmelled == nil {
			sniffer.SmellPerception.LastSmelled = make(map[domain.EntityID]bool)
		}
		inRange := make(map[domain.EntityID]bool)

		for _, emitter := range ctx.Entities {
			if emitter.ProducesSmell == nil || emitter.ID == sniffer.ID {
				continue
			}
			pos := smellPosition(ctx, emitter)
			if pos == nil {
				continue
			}
			if sniffer.Pos.DistanceTo(*pos) > float64(sniffer.SmellPerception.Radius) {
				continue
			}
			inRange[emitter.ID] = true
			if sniffer.SmellPerception.LastSmelled[emitter.ID] {
				continue
			}
			sniffer.SmellPerception.LastSmelled[emitter.ID] = true
			if sniffer.ID == ctx.PlayerID {
				ctx.Log.Append(fmt.Sprintf("You smell %s", emitter.ProducesSmell.Description))
			}
		}

		// Запах ушел - забываем, чтобы заметить его снова.
		for id := range sniffer.SmellPerception.LastSmelled {
			if !inRange[id] {
				delete(sniffer.SmellPerception.LastSmelled, id)
			}
		}
	}
}

// SmellTiles - активное принюхивание к конкретному тайлу.
func SmellTiles(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.WantsToSmell == nil {
			continue
		}
		intent := e.WantsToSmell
		e.WantsToSmell = nil

		tx, ty := ctx.Zone.Coords(intent.TileIndex)
		found := false
		for _, other := range ctx.Zone.GetEntitiesAt(tx, ty) {
			if other.ProducesSmell == nil {
				continue
			}
			found = true
			if e.ID == ctx.PlayerID {
				ctx.Log.Append(fmt.Sprintf("You smell %s", other.ProducesSmell.Description))
			}
		}
		if !found && e.ID == ctx.PlayerID {
			ctx.Log.Append("You smell nothing unusual.")
		}
		WaitAfterAction(e, 1)
	}
}

// smellPosition: предмет в рюкзаке пахнет оттуда, где его носят.
func smellPosition(ctx *Context, e *domain.Entity) *domain.Position {
	if e.Pos != nil {
		return e.Pos
	}
	if e.InBackpack != nil {
		if owner := ctx.GetEntity(e.InBackpack.OwnerID); owner != nil {
			return owner.Pos
		}
	}
	return nil
}
