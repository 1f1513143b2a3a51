package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

// TradeOffer - подготовленная сделка, ждущая подтверждения игрока.
// Движок показывает диалог и зовет ResolveTrade по ответу "y".
type TradeOffer struct {
	TraderID domain.EntityID // кто продает (игрок)
	ItemID   domain.EntityID // что продает
	OwnerID  domain.EntityID // лавочник
	// ItemsToReceive - что лавочник отдаст взамен.
	ItemsToReceive []domain.EntityID
}

// Trading - разбирает WantsToTrade: считает цену предмета по числу
// нужных лавочнику фасетов и собирает ответные товары с прилавка.
// Сам обмен откладывается до подтверждения в диалоге.
func Trading(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.WantsToTrade == nil {
			continue
		}
		intent := e.WantsToTrade
		e.WantsToTrade = nil

		owner := ctx.GetEntity(intent.TargetID)
		item := ctx.GetEntity(intent.ItemID)
		if owner == nil || owner.ShopOwner == nil || item == nil {
			continue
		}

		sellingCost := sellingCost(owner.ShopOwner, item)
		if sellingCost == 0 {
			ctx.Log.Append(fmt.Sprintf("%s is not interested in %s", owner.Name, item.Name))
			continue
		}

		goods := collectShopGoods(ctx, owner, sellingCost)
		if len(goods) == 0 {
			ctx.Log.Append(fmt.Sprintf("%s has no items to trade", owner.Name))
			continue
		}

		ctx.PendingTrade = &TradeOffer{
			TraderID:       e.ID,
			ItemID:         item.ID,
			OwnerID:        owner.ID,
			ItemsToReceive: goods,
		}
	}
}

// sellingCost: цена = сколько нужных лавочнику фасетов несет предмет.
func sellingCost(shop *domain.ShopOwnerComponent, item *domain.Entity) int {
	cost := 0
	if shop.WantedItems[domain.WantedCorpse] && item.Corpse != nil {
		cost++
	}
	if shop.WantedItems[domain.WantedQuaffable] && item.Quaffable != nil {
		cost++
	}
	return cost
}

// collectShopGoods обходит тайлы лавки и набирает до limit предметов.
// Эфемерное без Render (следы, лужи) товаром не является.
func collectShopGoods(ctx *Context, owner *domain.Entity, limit int) []domain.EntityID {
	var goods []domain.EntityID
	for _, idx := range owner.ShopOwner.ShopTiles {
		x, y := ctx.Zone.Coords(idx)
		for _, e := range ctx.Zone.GetEntitiesAt(x, y) {
			if e.IsCreature() || e.BlocksTile != nil || e.Render == nil {
				continue
			}
			goods = append(goods, e.ID)
			if len(goods) == limit {
				return goods
			}
		}
	}
	return goods
}

// ResolveTrade выполняет подтвержденный обмен: проданный предмет
// перелетает на прилавок, товары - в рюкзак покупателя.
func ResolveTrade(ctx *Context, offer *TradeOffer) {
	trader := ctx.GetEntity(offer.TraderID)
	owner := ctx.GetEntity(offer.OwnerID)
	sold := ctx.GetEntity(offer.ItemID)
	if trader == nil || owner == nil || sold == nil {
		return
	}

	// Проданное ложится на первый тайл лавки.
	if len(owner.ShopOwner.ShopTiles) > 0 {
		x, y := ctx.Zone.Coords(owner.ShopOwner.ShopTiles[0])
		sold.InBackpack = nil
		sold.Equipped = nil
		sold.Pos = &domain.Position{X: x, Y: y}
	}

	for _, id := range offer.ItemsToReceive {
		good := ctx.GetEntity(id)
		if good == nil {
			continue
		}
		letter, ok := freeInventoryLetter(ctx, trader.ID)
		if !ok {
			ctx.Log.Append(fmt.Sprintf("%s cannot carry anymore", trader.Name))
			break
		}
		good.Pos = nil
		good.InBackpack = &domain.InBackpackComponent{
			OwnerID:      trader.ID,
			AssignedChar: letter,
		}
		ctx.Log.Append(fmt.Sprintf("%s receives %s (%c)", trader.Name, good.Name, letter))
	}
}
