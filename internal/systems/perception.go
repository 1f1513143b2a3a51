package systems

import (
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
)

// MonsterThink - фаза "думания" ИИ: монстр с MyTurn, видящий цель,
// прокладывает путь Дейкстрой и вешает намерение приблизиться.
// Взглядобойцы вместо погони вешают WantsToGaze.
// Решения не трогают мир: только намерения (intent -> effect).
func MonsterThink(ctx *Context) {
	player := ctx.Player()

	for _, e := range ctx.Entities {
		if e.MyTurn == nil || e.ID == ctx.PlayerID || e.CombatStats == nil || e.Viewshed == nil || e.Pos == nil {
			continue
		}

		target := pickTarget(ctx, e, player)
		if target == nil {
			continue
		}

		// Спрятавшаяся цель не видна для погони
		if target.Hidden != nil {
			continue
		}

		targetIdx := ctx.Zone.GetIndex(target.Pos.X, target.Pos.Y)
		if !e.Viewshed.Contains(targetIdx) {
			continue
		}

		if e.Species != nil && e.Species.CanGaze {
			e.WantsToGaze = &domain.WantsToGazeComponent{TargetID: target.ID}
			continue
		}

		isAquatic := e.Species != nil && e.Species.IsAquatic
		path := FindPath(ctx.Zone, e.Pos.X, e.Pos.Y, target.Pos.X, target.Pos.Y, isAquatic)
		if len(path) < 2 {
			continue
		}

		moveX, moveY := ctx.Zone.Coords(path[1])
		e.WantsToApproach = &domain.WantsToApproachComponent{
			TargetID: target.ID,
			MoveToX:  moveX,
			MoveToY:  moveY,
		}
	}
}

// pickTarget: по умолчанию монстр охотится на игрока; если в списке
// ненависти есть видимая сущность - она приоритетнее.
func pickTarget(ctx *Context, e *domain.Entity, player *domain.Entity) *domain.Entity {
	if e.Hates != nil {
		for id := range e.Hates.List {
			hated := ctx.GetEntity(id)
			if hated == nil || hated.Pos == nil || hated.CombatStats == nil {
				continue
			}
			if e.Viewshed.Contains(ctx.Zone.GetIndex(hated.Pos.X, hated.Pos.Y)) {
				return hated
			}
		}
	}
	if player == nil || player.Pos == nil {
		return nil
	}
	return player
}

// MonsterApproach - фаза эффекта: вплотную - перекладываем намерение в
// ближний бой, иначе шагаем в заранее рассчитанную клетку. Оба исхода
// тратят ход.
func MonsterApproach(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.WantsToApproach == nil {
			continue
		}
		intent := e.WantsToApproach
		e.WantsToApproach = nil

		target := ctx.GetEntity(intent.TargetID)
		if target == nil || target.Pos == nil || e.Pos == nil {
			continue // цель исчезла: намерение сгорает без хода
		}

		if e.Pos.ChebyshevDistanceTo(*target.Pos) <= 1 && target.CombatStats != nil {
			e.WantsToMelee = &domain.WantsToMeleeComponent{TargetID: target.ID}
			continue
		}

		destIdx := ctx.Zone.GetIndex(intent.MoveToX, intent.MoveToY)
		if ctx.Zone.Blocked[destIdx] {
			// Клетку успели занять: ход сгорает на топтании
			WaitAfterAction(e, 1)
			continue
		}

		oldIdx := ctx.Zone.GetIndex(e.Pos.X, e.Pos.Y)
		e.Pos.X = intent.MoveToX
		e.Pos.Y = intent.MoveToY

		// Слой проходимости правим на месте: до переиндексации тика
		// остальные монстры должны видеть занятую клетку.
		if e.BlocksTile != nil {
			ctx.Zone.Blocked[oldIdx] = false
			ctx.Zone.Blocked[destIdx] = true
		}
		if e.Viewshed != nil {
			e.Viewshed.Dirty = true
		}

		logger.Log.WithField("entity", e.Name).Debug("Monster approaches target")
		WaitAfterAction(e, 1)
	}
}
