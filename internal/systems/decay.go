package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

// TickDecay гниение: счетчик портящегося тает каждый тик. По нулю
// здоровый предмет становится гнилым с новым счетчиком; уже гнилой
// рассыпается в прах (носитель узнает об этом из лога).
func TickDecay(ctx *Context) {
	for _, item := range ctx.Entities {
		if item.Perishable == nil {
			continue
		}
		item.Perishable.RotCounter--
		if item.Perishable.RotCounter > 0 {
			continue
		}

		if item.Unsavoury == nil {
			item.Unsavoury = &domain.UnsavouryComponent{Rotten: true}
			item.Perishable.RotCounter = domain.StartingRotCounter
			if carriedByPlayer(ctx, item) {
				ctx.Log.Append(fmt.Sprintf("Your %s starts to smell...", item.Name))
			}
			continue
		}

		if carriedByPlayer(ctx, item) {
			ctx.Log.Append(fmt.Sprintf("Your %s rots away!", item.Name))
		}
		ctx.Despawn(item.ID)
	}
}

func carriedByPlayer(ctx *Context, item *domain.Entity) bool {
	return item.InBackpack != nil && item.InBackpack.OwnerID == ctx.PlayerID
}
