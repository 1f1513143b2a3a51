// Package systems содержит бесстейтовые преобразования над миром,
// запускаемые конвейером тика в строго заданном порядке. Каждая система
// просеивает сущности по наличию компонентов, собирает свою выборку и
// только потом мутирует (двухфазный паттерн: одновременная итерация с
// чужой мутацией по хранилищу небезопасна).
package systems

import (
	"math/rand"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

// Context передает системам общий мир тика.
type Context struct {
	Zone     *domain.Zone
	Entities []*domain.Entity
	Log      *domain.GameLog
	Rng      *rand.Rand
	PlayerID domain.EntityID

	// PendingTrade выставляет система торговли: движок откроет диалог.
	PendingTrade *TradeOffer

	// PlayerDied выставляет система урона: движок переведет RunState.
	PlayerDied bool

	registry  map[domain.EntityID]*domain.Entity
	spawned   []*domain.Entity
	despawned map[domain.EntityID]bool
}

// NewContext строит контекст тика и реестр сущностей.
func NewContext(zone *domain.Zone, entities []*domain.Entity, log *domain.GameLog,
	rng *rand.Rand, playerID domain.EntityID) *Context {

	ctx := &Context{
		Zone:      zone,
		Entities:  entities,
		Log:       log,
		Rng:       rng,
		PlayerID:  playerID,
		registry:  make(map[domain.EntityID]*domain.Entity, len(entities)),
		despawned: make(map[domain.EntityID]bool),
	}
	for _, e := range entities {
		ctx.registry[e.ID] = e
	}
	return ctx
}

// GetEntity ищет живую сущность по ID.
func (c *Context) GetEntity(id domain.EntityID) *domain.Entity {
	if c.despawned[id] {
		return nil
	}
	return c.registry[id]
}

// Player возвращает сущность игрока (nil после смерти).
func (c *Context) Player() *domain.Entity {
	return c.GetEntity(c.PlayerID)
}

// Spawn ставит сущность в очередь на добавление (применится на Flush).
func (c *Context) Spawn(e *domain.Entity) {
	c.spawned = append(c.spawned, e)
	c.registry[e.ID] = e
}

// Despawn помечает сущность на удаление. Мертвая сущность не должна
// попадать ни в один последующий запрос, поэтому реестр
// чистится сразу, а слайс - на Flush.
func (c *Context) Despawn(id domain.EntityID) {
	c.despawned[id] = true
}

// Alive: сущность не помечена на удаление.
func (c *Context) Alive(e *domain.Entity) bool {
	return !c.despawned[e.ID]
}

// Flush применяет отложенные спавны и удаления. Движок зовет его между
// шагами конвейера, чтобы выборки следующей системы были чистыми.
func (c *Context) Flush() {
	if len(c.spawned) == 0 && len(c.despawned) == 0 {
		return
	}

	next := c.Entities[:0]
	for _, e := range c.Entities {
		if c.despawned[e.ID] {
			delete(c.registry, e.ID)
			continue
		}
		next = append(next, e)
	}
	for _, e := range c.spawned {
		if !c.despawned[e.ID] {
			next = append(next, e)
		}
	}
	c.Entities = next
	c.spawned = nil
	c.despawned = make(map[domain.EntityID]bool)
}

// ActionCost - цена одного действия: max(1, MaxActionSpeed - speed).
func ActionCost(e *domain.Entity) int {
	speed := domain.SpeedNormal
	if e.CombatStats != nil {
		speed = e.CombatStats.Speed
	}
	cost := domain.MaxActionSpeed - int(speed)
	if cost < 1 {
		cost = 1
	}
	return cost
}

// WaitAfterAction - helper экономики действий: успешное намерение
// помечает ход потраченным, но сам маркер MyTurn живет до конца тика,
// чтобы статусные системы (голод, жажда, болезни, следы) увидели
// ходящего. Обмен на ожидание проводит планировщик.
// multiplier > 1 растягивает долгие действия (головокружение и т.п.).
func WaitAfterAction(e *domain.Entity, multiplier int) {
	if multiplier < 1 {
		multiplier = 1
	}
	cost := ActionCost(e) * multiplier
	if e.MyTurn != nil {
		e.MyTurn.SpentCost = cost
		return
	}
	e.WaitingToAct = &domain.WaitingToActComponent{TickCountdown: cost}
}
