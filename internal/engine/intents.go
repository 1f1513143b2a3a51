package engine

import (
	"encoding/json"
	"fmt"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/systems"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/api"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
)

// HandleCommand превращает абстрактную команду игрока в Wants*-намерение
// или смену бокового состояния. Мир здесь не мутируется (кроме самого
// шага движения - он, как и у ИИ, эффект, а не намерение).
//
// Возвращает true, если команда потратила ход и конвейер должен
// прокрутиться.
func (i *Instance) HandleCommand(cmd api.ClientCommand) bool {
	switch cmd.Action {
	case api.ActionRestart:
		i.Restart()
		return false
	case api.ActionQuit:
		if i.RunState != domain.StateGameOver {
			i.RunState = domain.StateGameOver
			i.Ctx.Log.Append("You abandon the dungeon. Farewell.")
			logger.Log.WithField("tick", i.Tick).Info("Run abandoned")
		}
		return false
	case api.ActionInit:
		return false
	}

	switch i.RunState {
	case domain.StateWaitingPlayerInput:
		return i.handleMainInput(cmd)
	case domain.StateShowInventory:
		return i.handleInventorySelect(cmd)
	case domain.StateMouseTargeting:
		return i.handleTargeting(cmd)
	case domain.StateShowDialog:
		return i.handleDialog(cmd)
	case domain.StateGameOver:
		// После смерти принимается только RESTART (обработан выше)
		return false
	}

	logger.Log.WithField("action", cmd.Action).
		WithField("state", i.RunState.String()).
		Debug("Command ignored in current state")
	return false
}

func (i *Instance) handleMainInput(cmd api.ClientCommand) bool {
	player := i.Player()
	if player == nil || player.MyTurn == nil {
		return false
	}

	switch cmd.Action {
	case api.ActionMove:
		var p api.DirectionPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			logger.Log.WithError(err).Warn("Bad MOVE payload")
			return false
		}
		return i.tryMove(player, p.Dx, p.Dy)

	case api.ActionWait:
		systems.WaitAfterAction(player, 1)
		i.RunState = domain.StatePlayerTurn
		return true

	case api.ActionPickUp:
		return i.tryPickUp(player)

	case api.ActionInventory:
		var p api.InventoryPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			return false
		}
		i.openInventory(player, p.Purpose)
		return false

	case api.ActionDig:
		var p api.DirectionPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			return false
		}
		return i.tryDig(player, p.Dx, p.Dy)

	case api.ActionSmell:
		var p api.TargetPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			return false
		}
		if !i.Zone.InBounds(p.X, p.Y) {
			return false
		}
		player.WantsToSmell = &domain.WantsToSmellComponent{
			TileIndex: i.Zone.GetIndex(p.X, p.Y),
		}
		i.RunState = domain.StatePlayerTurn
		return true

	case api.ActionTrade:
		var p api.TradePayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			return false
		}
		return i.tryTrade(player, p)
	}

	logger.Log.WithField("action", cmd.Action).Debug("Unknown action")
	return false
}

// tryMove: шаг в одну из восьми сторон. Существо на целевой клетке
// превращает шаг в намерение ближнего боя; стена или блокирующая
// сущность отклоняет шаг без траты хода; спуск помечает переход зоны.
func (i *Instance) tryMove(player *domain.Entity, dx, dy int) bool {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return false
	}
	nx, ny := player.Pos.X+dx, player.Pos.Y+dy
	if !i.Zone.InBounds(nx, ny) {
		return false
	}

	for _, other := range i.Zone.GetEntitiesAt(nx, ny) {
		if other.IsCreature() && other.ID != player.ID {
			player.WantsToMelee = &domain.WantsToMeleeComponent{TargetID: other.ID}
			i.RunState = domain.StatePlayerTurn
			return true
		}
	}

	idx := i.Zone.GetIndex(nx, ny)
	if i.Zone.Blocked[idx] {
		i.Ctx.Log.Append("You cannot go there")
		return false
	}

	oldIdx := i.Zone.GetIndex(player.Pos.X, player.Pos.Y)
	player.Pos.X = nx
	player.Pos.Y = ny
	if player.BlocksTile != nil {
		i.Zone.Blocked[oldIdx] = false
		i.Zone.Blocked[idx] = true
	}
	if player.Viewshed != nil {
		player.Viewshed.Dirty = true
	}

	// Выход из укрытия: перемещение раскрывает
	player.Hidden = nil

	if i.Zone.Tiles[idx] == domain.TileDownPassage {
		i.descend = true
	}

	systems.WaitAfterAction(player, 1)
	i.RunState = domain.StatePlayerTurn
	return true
}

func (i *Instance) tryPickUp(player *domain.Entity) bool {
	for _, e := range i.Zone.GetEntitiesAt(player.Pos.X, player.Pos.Y) {
		if e.ID == player.ID || e.Pos == nil || e.IsCreature() || e.Diggable != nil {
			continue
		}
		player.WantsItem = &domain.WantsItemComponent{ItemID: e.ID}
		i.RunState = domain.StatePlayerTurn
		return true
	}
	i.Ctx.Log.Append("There is nothing here to pick up")
	return false
}

// openInventory переводит в боковое состояние выбора предмета.
func (i *Instance) openInventory(player *domain.Entity, purpose string) {
	action, ok := parsePurpose(purpose)
	if !ok {
		logger.Log.WithField("purpose", purpose).Warn("Unknown inventory purpose")
		return
	}
	if len(systems.BackpackOf(i.Ctx, player.ID)) == 0 &&
		action != domain.InventoryQuaff && action != domain.InventoryEat {
		i.Ctx.Log.Append("You are not carrying anything")
		return
	}
	i.pendingAction = action
	i.RunState = domain.StateShowInventory
}

func parsePurpose(purpose string) (domain.InventoryAction, bool) {
	switch purpose {
	case "drop":
		return domain.InventoryDrop, true
	case "eat":
		return domain.InventoryEat, true
	case "quaff":
		return domain.InventoryQuaff, true
	case "equip":
		return domain.InventoryEquip, true
	case "apply":
		return domain.InventoryApply, true
	case "invoke":
		return domain.InventoryInvoke, true
	case "fuel":
		return domain.InventoryFuel, true
	}
	return 0, false
}

// handleInventorySelect завершает выбор из инвентаря буквой слота.
// Буква "-" при еде и питье означает "с пола под ногами".
func (i *Instance) handleInventorySelect(cmd api.ClientCommand) bool {
	player := i.Player()
	if player == nil {
		i.RunState = domain.StateWaitingPlayerInput
		return false
	}
	if cmd.Action != api.ActionSelect {
		// Любая другая команда закрывает инвентарь
		i.RunState = domain.StateWaitingPlayerInput
		return false
	}
	var p api.SelectPayload
	if err := json.Unmarshal(cmd.Payload, &p); err != nil || p.Letter == "" {
		i.RunState = domain.StateWaitingPlayerInput
		return false
	}

	i.RunState = domain.StateWaitingPlayerInput

	if p.Letter == "-" {
		switch i.pendingAction {
		case domain.InventoryQuaff:
			return i.drinkFromGround(player)
		case domain.InventoryEat:
			return i.eatFromGround(player)
		}
	}

	item := i.itemByLetter(player.ID, rune(p.Letter[0]))
	if item == nil {
		i.Ctx.Log.Append(fmt.Sprintf("You have no item '%s'", p.Letter))
		return false
	}

	switch i.pendingAction {
	case domain.InventoryDrop:
		player.WantsToDrop = &domain.WantsToDropComponent{ItemID: item.ID}
	case domain.InventoryEat:
		player.WantsToEat = &domain.WantsToEatComponent{ItemID: item.ID}
	case domain.InventoryQuaff:
		player.WantsToDrink = &domain.WantsToDrinkComponent{ItemID: item.ID}
	case domain.InventoryEquip:
		player.WantsToEquip = &domain.WantsToEquipComponent{ItemID: item.ID}
	case domain.InventoryApply:
		player.WantsToApply = &domain.WantsToApplyComponent{ItemID: item.ID}
	case domain.InventoryFuel:
		refiller := i.firstRefiller(player.ID, item.ID)
		intent := &domain.WantsToFuelComponent{ItemID: item.ID}
		if refiller != nil {
			intent.WithID = refiller.ID
		}
		player.WantsToFuel = intent
	case domain.InventoryInvoke:
		if item.Invokable == nil && item.RangedWeapon == nil {
			i.Ctx.Log.Append("Nothing happens")
			return false
		}
		i.pendingItem = item.ID
		i.RunState = domain.StateMouseTargeting
		return false
	}

	i.RunState = domain.StatePlayerTurn
	return true
}

// drinkFromGround создает эфемерную питьевую сущность на водном тайле
// под игроком. Система питья употребит и удалит ее как обычный предмет.
func (i *Instance) drinkFromGround(player *domain.Entity) bool {
	idx := i.Zone.GetIndex(player.Pos.X, player.Pos.Y)
	if !i.Zone.Water[idx] {
		i.Ctx.Log.Append("There is nothing to drink here")
		return false
	}

	water := &domain.Entity{
		ID:        domain.EntityID(utils.GenerateID()),
		Name:      "murky water",
		Pos:       &domain.Position{X: player.Pos.X, Y: player.Pos.Y},
		Quaffable: &domain.QuaffableComponent{ThirstDiceNumber: 2, ThirstDiceSize: 4},
	}
	i.Ctx.Spawn(water)
	player.WantsToDrink = &domain.WantsToDrinkComponent{ItemID: water.ID}
	i.RunState = domain.StatePlayerTurn
	return true
}

// eatFromGround откусывает от съедобного, лежащего под ногами,
// не поднимая его. Еда с прилавка так же считается кражей.
func (i *Instance) eatFromGround(player *domain.Entity) bool {
	for _, e := range i.Zone.GetEntitiesAt(player.Pos.X, player.Pos.Y) {
		if e.ID == player.ID || e.IsCreature() || e.Edible == nil {
			continue
		}
		player.WantsToEat = &domain.WantsToEatComponent{ItemID: e.ID}
		i.RunState = domain.StatePlayerTurn
		return true
	}
	i.Ctx.Log.Append("There is nothing to eat here")
	return false
}

// handleTargeting завершает прицеливание: стрелковое оружие стреляет,
// жезл разряжается. Пустой лук перед выстрелом заряжается стрелами
// из рюкзака.
func (i *Instance) handleTargeting(cmd api.ClientCommand) bool {
	player := i.Player()
	if player == nil || cmd.Action != api.ActionTarget {
		i.pendingItem = ""
		i.RunState = domain.StateWaitingPlayerInput
		return false
	}
	var p api.TargetPayload
	if err := json.Unmarshal(cmd.Payload, &p); err != nil || !i.Zone.InBounds(p.X, p.Y) {
		i.pendingItem = ""
		i.RunState = domain.StateWaitingPlayerInput
		return false
	}

	item := i.Ctx.GetEntity(i.pendingItem)
	i.pendingItem = ""
	i.RunState = domain.StateWaitingPlayerInput
	if item == nil {
		return false
	}

	switch {
	case item.RangedWeapon != nil:
		if item.RangedWeapon.AmmoTotal == 0 {
			i.loadAmmo(player, item)
		}
		player.WantsToShoot = &domain.WantsToShootComponent{
			ItemID: item.ID, TargetX: p.X, TargetY: p.Y,
		}
	case item.Invokable != nil:
		player.WantsToZap = &domain.WantsToZapComponent{
			ItemID: item.ID, TargetX: p.X, TargetY: p.Y,
		}
	default:
		return false
	}

	i.RunState = domain.StatePlayerTurn
	return true
}

// loadAmmo перекладывает весь подходящий боезапас из рюкзака в оружие.
func (i *Instance) loadAmmo(player *domain.Entity, weapon *domain.Entity) {
	for _, e := range systems.BackpackOf(i.Ctx, player.ID) {
		if e.Ammo == nil || e.Ammo.Kind != weapon.RangedWeapon.Kind {
			continue
		}
		weapon.RangedWeapon.AmmoTotal += e.Ammo.Count
		i.Ctx.Despawn(e.ID)
		i.Ctx.Flush()
		return
	}
}

func (i *Instance) tryDig(player *domain.Entity, dx, dy int) bool {
	nx, ny := player.Pos.X+dx, player.Pos.Y+dy
	if !i.Zone.InBounds(nx, ny) {
		return false
	}

	tool := i.firstDiggingTool(player.ID)
	if tool == nil {
		i.Ctx.Log.Append("You have nothing to dig with")
		return false
	}

	for _, e := range i.Zone.GetEntitiesAt(nx, ny) {
		if e.Diggable == nil {
			continue
		}
		player.WantsToDig = &domain.WantsToDigComponent{TargetID: e.ID, ToolID: tool.ID}
		i.RunState = domain.StatePlayerTurn
		return true
	}

	i.Ctx.Log.Append("There is nothing to dig there")
	return false
}

func (i *Instance) tryTrade(player *domain.Entity, p api.TradePayload) bool {
	if p.Letter == "" {
		return false
	}
	item := i.itemByLetter(player.ID, rune(p.Letter[0]))
	if item == nil {
		i.Ctx.Log.Append(fmt.Sprintf("You have no item '%s'", p.Letter))
		return false
	}
	target := i.Ctx.GetEntity(domain.EntityID(p.TargetID))
	if target == nil || target.ShopOwner == nil {
		i.Ctx.Log.Append("There is nobody to trade with")
		return false
	}

	player.WantsToTrade = &domain.WantsToTradeComponent{
		TargetID: target.ID,
		ItemID:   item.ID,
	}
	i.RunState = domain.StatePlayerTurn
	return true
}

// handleDialog разбирает ответ на подтверждение сделки. Согласие
// проводит обмен и тратит ход; отказ бесплатен.
func (i *Instance) handleDialog(cmd api.ClientCommand) bool {
	if cmd.Action != api.ActionDialog {
		return false
	}
	var p api.DialogPayload
	if err := json.Unmarshal(cmd.Payload, &p); err != nil {
		return false
	}

	offer := i.pendingOffer
	i.pendingOffer = nil
	i.RunState = domain.StateWaitingPlayerInput

	if offer == nil {
		return false
	}
	if p.Answer != "y" {
		i.Ctx.Log.Append("You think better of it")
		return false
	}

	systems.ResolveTrade(i.Ctx, offer)
	i.Ctx.Flush()
	if player := i.Player(); player != nil {
		systems.WaitAfterAction(player, 1)
	}
	i.RunState = domain.StatePlayerTurn
	return true
}

// --- ПОИСК ПО РЮКЗАКУ ---

func (i *Instance) itemByLetter(owner domain.EntityID, letter rune) *domain.Entity {
	for _, e := range systems.BackpackOf(i.Ctx, owner) {
		if e.InBackpack.AssignedChar == letter {
			return e
		}
	}
	return nil
}

func (i *Instance) firstRefiller(owner domain.EntityID, exclude domain.EntityID) *domain.Entity {
	for _, e := range systems.BackpackOf(i.Ctx, owner) {
		if e.Refiller != nil && e.ID != exclude {
			return e
		}
	}
	return nil
}

func (i *Instance) firstDiggingTool(owner domain.EntityID) *domain.Entity {
	for _, e := range systems.BackpackOf(i.Ctx, owner) {
		if e.DiggingTool != nil {
			return e
		}
	}
	return nil
}
