package systems

import (
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
)

// --- PICKUP ---

// CollectItems обрабатывает намерения подбора: предмет обменивает
// Position на InBackpack с первой свободной буквой алфавита владельца.
// Рюкзак на 52 слота; переполнение - отказ без траты хода.
func CollectItems(ctx *Context) {
	for _, picker := range ctx.Entities {
		if picker.WantsItem == nil {
			continue
		}
		intent := picker.WantsItem
		picker.WantsItem = nil

		item := ctx.GetEntity(intent.ItemID)
		if item == nil || item.Pos == nil {
			continue
		}

		letter, ok := freeInventoryLetter(ctx, picker.ID)
		if !ok {
			ctx.Log.Append(fmt.Sprintf("%s cannot carry anymore", picker.Name))
			continue
		}

		// Атомарный обмен Position -> InBackpack
		item.Pos = nil
		item.InBackpack = &domain.InBackpackComponent{
			OwnerID:      picker.ID,
			AssignedChar: letter,
		}

		ctx.Log.Append(fmt.Sprintf("%s picks up %s (%c)", picker.Name, item.Name, letter))
		WaitAfterAction(picker, 1)
	}
}

// freeInventoryLetter выдает первую незанятую букву из 52 слотов.
func freeInventoryLetter(ctx *Context, owner domain.EntityID) (rune, bool) {
	used := make(map[rune]bool, 52)
	for _, item := range ctx.Entities {
		if item.InBackpack != nil && item.InBackpack.OwnerID == owner {
			used[item.InBackpack.AssignedChar] = true
		}
	}
	for _, letter := range domain.InventoryAlphabet {
		if !used[letter] {
			return letter, true
		}
	}
	return 0, false
}

// BackpackOf возвращает содержимое рюкзака владельца.
func BackpackOf(ctx *Context, owner domain.EntityID) []*domain.Entity {
	var items []*domain.Entity
	for _, item := range ctx.Entities {
		if item.InBackpack != nil && item.InBackpack.OwnerID == owner {
			items = append(items, item)
		}
	}
	return items
}

// --- DROP ---

// DropItems обрабатывает намерения выбросить: экипированное не
// выбрасывается (отказ), остальное обменивает InBackpack на Position
// тайла владельца.
func DropItems(ctx *Context) {
	for _, dropper := range ctx.Entities {
		if dropper.WantsToDrop == nil {
			continue
		}
		intent := dropper.WantsToDrop
		dropper.WantsToDrop = nil

		item := ctx.GetEntity(intent.ItemID)
		if item == nil || item.InBackpack == nil || item.InBackpack.OwnerID != dropper.ID {
			continue
		}
		if item.Equipped != nil {
			ctx.Log.Append(fmt.Sprintf("%s must take off %s first", dropper.Name, item.Name))
			continue
		}
		if dropper.Pos == nil {
			continue
		}

		item.InBackpack = nil
		item.Pos = &domain.Position{X: dropper.Pos.X, Y: dropper.Pos.Y}

		ctx.Log.Append(fmt.Sprintf("%s drops %s", dropper.Name, item.Name))
		WaitAfterAction(dropper, 1)
	}
}

// --- EQUIP / UNEQUIP ---

// EquipItems обрабатывает намерения экипировки. Повторная экипировка
// уже надетого предмета снимает его. Слот (с учетом конфликта
// Hands <-> LeftHand/RightHand) должен быть свободен.
func EquipItems(ctx *Context) {
	for _, owner := range ctx.Entities {
		if owner.WantsToEquip == nil {
			continue
		}
		intent := owner.WantsToEquip
		owner.WantsToEquip = nil

		item := ctx.GetEntity(intent.ItemID)
		if item == nil || item.InBackpack == nil || item.InBackpack.OwnerID != owner.ID {
			continue
		}

		// Снятие
		if item.Equipped != nil {
			item.Equipped = nil
			ctx.Log.Append(fmt.Sprintf("%s takes off %s", owner.Name, item.Name))
			WaitAfterAction(owner, 1)
			continue
		}

		if item.Equippable == nil {
			ctx.Log.Append(fmt.Sprintf("%s cannot wear %s", owner.Name, item.Name))
			continue
		}

		wanted := item.Equippable.Location
		if blockedBy := occupiedSlot(ctx, owner.ID, wanted); blockedBy != nil {
			ctx.Log.Append(fmt.Sprintf("%s is already using something on %s", owner.Name, wanted))
			logger.Log.WithField("conflicting_item", blockedBy.Name).Debug("Equip slot occupied")
			continue
		}

		item.Equipped = &domain.EquippedComponent{OwnerID: owner.ID, Location: wanted}
		ctx.Log.Append(fmt.Sprintf("%s equips %s", owner.Name, item.Name))
		WaitAfterAction(owner, 1)
	}
}

// occupiedSlot ищет уже надетый предмет, конфликтующий со слотом.
func occupiedSlot(ctx *Context, owner domain.EntityID, wanted domain.BodyLocation) *domain.Entity {
	for _, item := range ctx.Entities {
		if item.Equipped == nil || item.Equipped.OwnerID != owner {
			continue
		}
		if item.Equipped.Location.ConflictsWith(wanted) {
			return item
		}
	}
	return nil
}
