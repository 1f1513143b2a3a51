package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
)

// TickDiseases гоняет активные болезни обладателей MyTurn.
// Каждый вид живет по своему таймеру; по нулю таймер перезаводится и
// бросается спасбросок стойкости: успех ведет к выздоровлению за два
// шага (Improving -> снятие), провал - к эффекту вида.
func TickDiseases(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.MyTurn == nil || e.Diseases == nil || len(e.Diseases.Active) == 0 {
			continue
		}

		// Двухфазно: собираем виды, потом мутируем мапу
		var due []domain.DiseaseKind
		for kind, state := range e.Diseases.Active {
			state.TickCounter--
			if state.TickCounter <= 0 {
				due = append(due, kind)
			}
		}

		for _, kind := range due {
			state := e.Diseases.Active[kind]
			state.TickCounter = domain.MaxDiseaseTickCounter + utils.D20(ctx.Rng)

			saved := e.CombatStats != nil && utils.SavingThrow(ctx.Rng, e.CombatStats.CurrentToughness)
			if saved {
				if state.Improving {
					delete(e.Diseases.Active, kind)
					if e.ID == ctx.PlayerID {
						ctx.Log.Append(fmt.Sprintf("You have recovered from the %s!", kind))
					}
				} else {
					state.Improving = true
					if e.ID == ctx.PlayerID {
						ctx.Log.Append("You feel a little better")
					}
				}
				continue
			}

			state.Improving = false
			applyDiseaseEffect(ctx, e, kind)
		}

		if len(e.Diseases.Active) == 0 {
			e.Diseases = nil
		}
	}
}

func applyDiseaseEffect(ctx *Context, e *domain.Entity, kind domain.DiseaseKind) {
	switch kind {
	case domain.DiseaseFleshRot:
		if ctx.Rng.Intn(2) == 0 {
			e.TakeDamage(0, 1, 0, "")
			if e.Pos != nil {
				ctx.Zone.SetDecal(ctx.Zone.GetIndex(e.Pos.X, e.Pos.Y), domain.DecalBlood)
			}
			if e.ID == ctx.PlayerID {
				ctx.Log.Append("Your flesh sloughs away!")
			}
		} else {
			if e.Hunger != nil {
				e.Hunger.TickCounter -= utils.Roll(ctx.Rng, 3, 10)
				if e.Hunger.TickCounter < 0 {
					e.Hunger.TickCounter = 0
				}
			}
			if e.Pos != nil {
				ctx.Zone.SetDecal(ctx.Zone.GetIndex(e.Pos.X, e.Pos.Y), domain.DecalVomit)
			}
			if e.ID == ctx.PlayerID {
				ctx.Log.Append("You vomit helplessly!")
			}
		}

	case domain.DiseaseFever:
		if ctx.Rng.Intn(2) == 0 {
			e.TakeDamage(1, 0, 0, "")
			if e.ID == ctx.PlayerID {
				ctx.Log.Append("You stumble, burning with fever!")
			}
		} else {
			// Головокружение: следующий ход откладывается втрое дольше
			if e.MyTurn != nil {
				WaitAfterAction(e, 3)
			}
			if e.ID == ctx.PlayerID {
				ctx.Log.Append("The fever makes you dizzy...")
			}
		}

	case domain.DiseaseCalcification:
		e.TakeDamage(0, 0, 1, "")
		if e.ID == ctx.PlayerID {
			ctx.Log.Append("Your joints stiffen and crackle...")
		}
	}
}
