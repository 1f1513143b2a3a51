package engine

import (
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/systems"
)

// TickScheduler двигает экономику действий. Потраченный ход (MyTurn с
// SpentCost) обменивается на ожидание только здесь, в конце тика:
// до этого момента статусные системы видят ходящего. Свежесозданное
// ожидание тут же уменьшается на единицу - тик действия считается в
// стоимость, поэтому быстрое существо (цена 1) получает ход обратно
// сразу. Досчитавшие до нуля получают MyTurn ровно один раз.
//
// Парализованная сущность с MyTurn сжигает ход впустую; паралич
// спадает после сожженного хода.
//
// Быстрые существа (speed=3) платят за ход 1 тик, нормальные 2,
// медленные 3 - отсюда "гремлин успевает дважды между ходами игрока".
func TickScheduler(ctx *systems.Context) {
	for _, e := range ctx.Entities {
		if e.MyTurn != nil && e.MyTurn.SpentCost > 0 {
			e.WaitingToAct = &domain.WaitingToActComponent{TickCountdown: e.MyTurn.SpentCost}
			e.MyTurn = nil
		}

		if e.WaitingToAct != nil {
			e.WaitingToAct.TickCountdown--
			if e.WaitingToAct.TickCountdown <= 0 {
				e.WaitingToAct = nil
				e.MyTurn = &domain.MyTurnComponent{}
			}
			continue
		}

		if e.MyTurn != nil && e.Paralyzed != nil {
			if e.ID == ctx.PlayerID {
				ctx.Log.Append("You are paralyzed and cannot act!")
			}
			e.MyTurn = nil
			e.WaitingToAct = &domain.WaitingToActComponent{TickCountdown: systems.ActionCost(e)}
			e.Paralyzed = nil
		}
	}
}
