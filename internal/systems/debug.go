package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

// CheckInvariants - отладочный сторож. Включается флагом конфига и
// паникует на первом же нарушении: такие поломки - ошибки кода,
// продолжать игру с ними бессмысленно.
func CheckInvariants(ctx *Context) {
	for _, e := range ctx.Entities {
		// Позиция и рюкзак взаимоисключающие.
		if e.Pos != nil && e.InBackpack != nil {
			panic(fmt.Sprintf("entity %s (%s) has both Position and InBackpack", e.ID, e.Name))
		}

		if e.CombatStats != nil && e.CombatStats.CurrentStamina < 0 {
			panic(fmt.Sprintf("entity %s (%s) has negative stamina %d", e.ID, e.Name, e.CombatStats.CurrentStamina))
		}

		if e.MyTurn != nil && e.WaitingToAct != nil {
			panic(fmt.Sprintf("entity %s (%s) is both acting and waiting", e.ID, e.Name))
		}

		// Надетое обязано лежать в рюкзаке того же владельца.
		if e.Equipped != nil {
			if e.InBackpack == nil {
				panic(fmt.Sprintf("equipped item %s (%s) is not in a backpack", e.ID, e.Name))
			}
			if e.Equipped.OwnerID != e.InBackpack.OwnerID {
				panic(fmt.Sprintf("equipped item %s owner mismatch: %s vs %s",
					e.ID, e.Equipped.OwnerID, e.InBackpack.OwnerID))
			}
		}

		if e.Pos != nil && !ctx.Zone.InBounds(e.Pos.X, e.Pos.Y) {
			panic(fmt.Sprintf("entity %s (%s) is out of bounds at (%d,%d)", e.ID, e.Name, e.Pos.X, e.Pos.Y))
		}
	}

	checkEquipSlots(ctx)
	checkBlocked(ctx)
	checkFog(ctx)
}

// Конфликты слотов экипировки на одном владельце.
func checkEquipSlots(ctx *Context) {
	occupied := make(map[domain.EntityID][]domain.BodyLocation)
	for _, e := range ctx.Entities {
		if e.Equipped == nil {
			continue
		}
		for _, loc := range occupied[e.Equipped.OwnerID] {
			if loc == e.Equipped.Location || loc.ConflictsWith(e.Equipped.Location) {
				panic(fmt.Sprintf("owner %s has conflicting equipment at %v", e.Equipped.OwnerID, loc))
			}
		}
		occupied[e.Equipped.OwnerID] = append(occupied[e.Equipped.OwnerID], e.Equipped.Location)
	}
}

// blocked[i] должен ровно отражать стены и блокирующие сущности.
func checkBlocked(ctx *Context) {
	expected := make([]bool, len(ctx.Zone.Blocked))
	for i, t := range ctx.Zone.Tiles {
		expected[i] = t.IsSolid()
	}
	for _, e := range ctx.Entities {
		if e.BlocksTile != nil && e.Pos != nil {
			expected[ctx.Zone.GetIndex(e.Pos.X, e.Pos.Y)] = true
		}
	}
	for i := range expected {
		if expected[i] != ctx.Zone.Blocked[i] {
			panic(fmt.Sprintf("blocked[%d] is %v, expected %v", i, ctx.Zone.Blocked[i], expected[i]))
		}
	}
}

// Видимое всегда разведано (туман войны).
func checkFog(ctx *Context) {
	for i := range ctx.Zone.Visible {
		if ctx.Zone.Visible[i] && !ctx.Zone.Revealed[i] {
			panic(fmt.Sprintf("tile %d is visible but not revealed", i))
		}
	}
}
