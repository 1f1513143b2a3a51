package engine

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/systems"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/dungeon"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
)

// Instance - один забег: зона, реестр сущностей, конечный автомат
// состояний. Все методы зовутся из одной горутины сервиса; инстанс
// сам никогда не блокируется.
type Instance struct {
	Cfg   Config
	Depth int
	Tick  int64

	Zone     *domain.Zone
	Ctx      *systems.Context
	RunState domain.RunState

	// Боковые состояния ввода (инвентарь/прицеливание/диалог).
	pendingAction domain.InventoryAction
	pendingItem   domain.EntityID
	pendingOffer  *systems.TradeOffer

	// descend выставляет обработчик движения, ступивший на спуск.
	descend bool
}

// NewInstance строит зону первой глубины, населяет ее и размещает
// игрока. Начальное состояние - BeforeTick: первый прогон конвейера
// считает FOV и свет до первого ввода.
func NewInstance(cfg Config) *Instance {
	inst := &Instance{
		Cfg:      cfg,
		Depth:    1,
		RunState: domain.StateBeforeTick,
	}

	rng := rand.New(rand.NewSource(ZoneSeed(cfg.Seed, 1)))
	zone := dungeon.ForDepth(1).Build(1, rng)

	player := NewPlayer(rng)
	px, py := zone.Coords(zone.PlayerSpawnIdx)
	player.Pos = &domain.Position{X: px, Y: py}

	entities := append([]*domain.Entity{player}, PopulateZone(zone, 1, rng)...)

	inst.Zone = zone
	inst.Ctx = systems.NewContext(zone, entities, domain.NewGameLog(), rng, player.ID)

	logger.Log.WithFields(logrus.Fields{
		"seed":  cfg.Seed,
		"depth": 1,
	}).Info("Instance created")

	// Прогрев: индексы и свет должны существовать до первого расчета
	// FOV (шаг 1 конвейера читает Lit прошлого тика)
	systems.MapIndexing(inst.Ctx)
	systems.RebuildLighting(inst.Ctx)
	inst.RunTick()
	inst.RunState = domain.StateWaitingPlayerInput
	return inst
}

// Player возвращает сущность игрока (nil после смерти).
func (i *Instance) Player() *domain.Entity {
	return i.Ctx.Player()
}

// RunTick прогоняет конвейер систем ровно один раз, в жестко заданном
// порядке. Flush между шагами: выборки следующей системы не должны
// видеть сущностей, удаленных предыдущей.
func (i *Instance) RunTick() {
	i.Tick++
	ctx := i.Ctx

	// 1. FOV для грязных полей зрения
	systems.ProcessViewsheds(ctx)
	ctx.Flush()

	// 2. Индекс освещенности
	systems.RebuildLighting(ctx)
	ctx.Flush()

	// 3. Пространственные индексы
	systems.MapIndexing(ctx)
	ctx.Flush()

	// 4. ИИ: решение, затем движение
	systems.MonsterThink(ctx)
	systems.MonsterApproach(ctx)
	ctx.Flush()

	// 5. Атаки: ближний бой, стрельба/жезлы, взгляд
	systems.MeleeCombat(ctx)
	systems.RangedCombat(ctx)
	systems.ZapAttacks(ctx)
	systems.GazeAttacks(ctx)
	ctx.Flush()

	// 6. Применение урона и проверка смерти
	systems.ApplyDamage(ctx)
	ctx.Flush()
	if ctx.PlayerDied {
		return
	}

	// 7. Предметы: подбор, сброс, экипировка, включение, раскопки, торг
	systems.CollectItems(ctx)
	systems.DropItems(ctx)
	systems.EquipItems(ctx)
	systems.ApplyItems(ctx)
	systems.DigWalls(ctx)
	systems.Trading(ctx)
	ctx.Flush()

	// 8. Употребление
	systems.EatFood(ctx)
	systems.DrinkLiquids(ctx)
	ctx.Flush()

	// 9. Топливо
	systems.BurnFuel(ctx)
	systems.RefillItems(ctx)
	ctx.Flush()

	// 10. Статусы
	systems.TickDecay(ctx)
	systems.TickWetness(ctx)
	systems.DryItems(ctx)
	systems.TickHiding(ctx)
	systems.TickBlindness(ctx)
	systems.TickDiseases(ctx)
	systems.TickHunger(ctx)
	systems.TickThirst(ctx)
	systems.TickAutoHeal(ctx)
	ctx.Flush()

	// 11. Следы
	systems.EmitTrails(ctx)
	systems.ExpireTrails(ctx)
	ctx.Flush()

	// 12. Слух и нюх
	systems.ProcessSounds(ctx)
	systems.ProcessSmells(ctx)
	systems.SmellTiles(ctx)
	ctx.Flush()

	// 13. Развитие
	systems.Advancement(ctx)
	ctx.Flush()

	// 14. Планировщик
	TickScheduler(ctx)
	ctx.Flush()

	if i.Cfg.Debug {
		systems.CheckInvariants(ctx)
	}
}

// Advance крутит конвейер, пока инстанс не упрется в точку, требующую
// внешнего участия: ввод игрока, кадры анимации, диалог, конец игры.
// Шаг 15 конвейера (проверка частиц и смена состояния) живет здесь.
func (i *Instance) Advance() {
	for {
		switch i.RunState {
		case domain.StatePlayerTurn:
			i.RunState = domain.StateDoTick

		case domain.StateDoTick:
			i.RunTick()

			if i.Ctx.PlayerDied {
				i.RunState = domain.StateGameOver
				logger.Log.WithField("tick", i.Tick).Info("Game over")
				return
			}
			if i.Ctx.PendingTrade != nil {
				i.pendingOffer = i.Ctx.PendingTrade
				i.Ctx.PendingTrade = nil
				i.RunState = domain.StateShowDialog
				return
			}
			if systems.AnyParticles(i.Ctx) {
				i.RunState = domain.StateDrawParticles
				return
			}
			if i.descend {
				i.descend = false
				i.RunState = domain.StateGoToNextZone
				continue
			}
			p := i.Ctx.Player()
			if p == nil {
				// Игрока больше нет в реестре - забег закончен
				i.RunState = domain.StateGameOver
				return
			}
			if p.MyTurn != nil {
				i.RunState = domain.StateWaitingPlayerInput
				return
			}
			// Игрок еще отдыхает - следующий тик

		case domain.StateGoToNextZone:
			i.NextZone()
			if p := i.Ctx.Player(); p != nil && p.MyTurn != nil {
				i.RunState = domain.StateWaitingPlayerInput
				return
			}
			// Игрок еще отдыхает после спуска - докручиваем тики
			i.RunState = domain.StateDoTick

		default:
			return
		}
	}
}

// StepParticles продвигает анимацию на один кадр. Темп (SecondsToWait
// между кадрами) задает вызывающая сторона. Когда кадры кончились,
// конвейер продолжается.
func (i *Instance) StepParticles() {
	if i.RunState != domain.StateDrawParticles {
		return
	}
	systems.AdvanceParticles(i.Ctx)
	i.Ctx.Flush()
	if !systems.AnyParticles(i.Ctx) {
		i.RunState = domain.StateDoTick
		i.Advance()
	}
}

// NextZone - переход на следующую глубину. Удерживаются только игрок,
// его рюкзак и журнал; все остальное не переживает спуск. Новая зона
// воспроизводима: ее сид выведен из мастер-сида и глубины.
func (i *Instance) NextZone() {
	old := i.Ctx
	player := old.Player()
	if player == nil {
		return
	}

	var retained []*domain.Entity
	retained = append(retained, player)
	for _, e := range old.Entities {
		if e.InBackpack != nil && e.InBackpack.OwnerID == player.ID {
			retained = append(retained, e)
		}
	}

	i.Depth++
	rng := rand.New(rand.NewSource(ZoneSeed(i.Cfg.Seed, i.Depth)))
	zone := dungeon.ForDepth(i.Depth).Build(i.Depth, rng)

	px, py := zone.Coords(zone.PlayerSpawnIdx)
	player.Pos = &domain.Position{X: px, Y: py}
	if player.Viewshed != nil {
		player.Viewshed.Dirty = true
	}

	entities := append(retained, PopulateZone(zone, i.Depth, rng)...)

	i.Zone = zone
	i.Ctx = systems.NewContext(zone, entities, old.Log, rng, player.ID)
	i.Ctx.Log.Append("You descend deeper into the viscera...")

	logger.Log.WithFields(logrus.Fields{
		"depth":    i.Depth,
		"retained": len(retained),
	}).Info("Zone transition")

	systems.MapIndexing(i.Ctx)
	systems.RebuildLighting(i.Ctx)
	i.RunTick()
}

// Restart начинает забег заново с тем же конфигом (и тем же сидом:
// перезапуск воспроизводит подземелье, не бросок костей).
func (i *Instance) Restart() {
	fresh := NewInstance(i.Cfg)
	*i = *fresh
	logger.Log.Info("Run restarted")
}
