package engine

import (
	"sort"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/systems"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/api"
)

// BuildSnapshot собирает наблюдаемое состояние на границе тика:
// тайлы с флагами видимости, видимые сущности в порядке z-index,
// инвентарь игрока и хвост журнала. Скрытые и невидимые сущности
// в снимок не попадают - клиент не должен знать лишнего.
func (i *Instance) BuildSnapshot() api.ServerResponse {
	z := i.Zone

	resp := api.ServerResponse{
		Type:     api.TypeUpdate,
		Tick:     i.Tick,
		Depth:    i.Depth,
		RunState: i.RunState.String(),
		Grid:     api.GridMeta{Width: z.Width, Height: z.Height},
		Logs:     append([]string(nil), i.Ctx.Log.Entries...),
	}

	switch i.RunState {
	case domain.StateGameOver:
		resp.Type = api.TypeGameOver
	case domain.StateShowDialog:
		resp.Type = api.TypeDialog
		resp.Dialog = i.dialogView()
	}

	particle := make(map[int]bool)
	for _, idx := range systems.ParticleTiles(i.Ctx) {
		particle[idx] = true
	}

	resp.Map = make([]api.TileView, len(z.Tiles))
	for idx, t := range z.Tiles {
		resp.Map[idx] = api.TileView{
			Kind:     int(t),
			Visible:  z.Visible[idx],
			Revealed: z.Revealed[idx],
			Lit:      z.Lit[idx],
			Decal:    int(z.Decals[idx]),
			Particle: particle[idx],
		}
	}

	resp.Entities = i.entityViews()
	resp.Inventory = i.inventoryViews()
	return resp
}

// entityViews отбирает сущности с позицией и рендером на видимых
// тайлах. Спрятавшиеся скрыты ото всех, кроме самого игрока.
func (i *Instance) entityViews() []api.EntityView {
	z := i.Zone
	var views []api.EntityView

	for _, e := range i.Ctx.Entities {
		if e.Pos == nil || e.Render == nil {
			continue
		}
		idx := z.GetIndex(e.Pos.X, e.Pos.Y)
		if !z.Visible[idx] {
			continue
		}
		if e.Hidden != nil && e.ID != i.Ctx.PlayerID {
			continue
		}

		view := api.EntityView{
			ID:   string(e.ID),
			Name: e.Name,
			X:    e.Pos.X,
			Y:    e.Pos.Y,
			Render: api.RenderView{
				Atlas:  e.Render.Atlas,
				Col:    e.Render.Col,
				Row:    e.Render.Row,
				ZIndex: e.Render.ZIndex,
			},
		}
		if e.ID == i.Ctx.PlayerID {
			view.Stats = statsView(e)
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(a, b int) bool {
		return views[a].Render.ZIndex < views[b].Render.ZIndex
	})
	return views
}

func statsView(e *domain.Entity) *api.StatsView {
	if e.CombatStats == nil {
		return nil
	}
	s := &api.StatsView{
		Stamina:      e.CombatStats.CurrentStamina,
		MaxStamina:   e.CombatStats.MaxStamina,
		Toughness:    e.CombatStats.CurrentToughness,
		MaxToughness: e.CombatStats.MaxToughness,
		Dexterity:    e.CombatStats.CurrentDexterity,
		MaxDexterity: e.CombatStats.MaxDexterity,
	}
	if e.Hunger != nil {
		s.Hunger = hungerLabel(e.Hunger.Status)
	}
	if e.Thirst != nil {
		s.Thirst = thirstLabel(e.Thirst.Status)
	}
	if e.Experience != nil {
		s.Level = e.Experience.Level
		s.XP = e.Experience.XP
	}
	return s
}

func hungerLabel(s domain.HungerStatus) string {
	switch s {
	case domain.HungerSatiated:
		return "Satiated"
	case domain.HungerHungry:
		return "Hungry"
	case domain.HungerStarved:
		return "Starved"
	}
	return ""
}

func thirstLabel(s domain.ThirstStatus) string {
	switch s {
	case domain.ThirstQuenched:
		return "Quenched"
	case domain.ThirstThirsty:
		return "Thirsty"
	case domain.ThirstDehydrated:
		return "Dehydrated"
	}
	return ""
}

func (i *Instance) inventoryViews() []api.ItemView {
	player := i.Player()
	if player == nil {
		return nil
	}

	items := systems.BackpackOf(i.Ctx, player.ID)
	sort.Slice(items, func(a, b int) bool {
		return slotOrder(items[a].InBackpack.AssignedChar) <
			slotOrder(items[b].InBackpack.AssignedChar)
	})

	views := make([]api.ItemView, 0, len(items))
	for _, item := range items {
		v := api.ItemView{
			Letter: string(item.InBackpack.AssignedChar),
			Name:   item.Name,
		}
		if item.Equipped != nil {
			v.Equipped = true
			v.Location = item.Equipped.Location.String()
		}
		views = append(views, v)
	}
	return views
}

// slotOrder: порядок алфавита инвентаря ('a'..'z' раньше 'A'..'Z').
func slotOrder(letter rune) int {
	for pos, r := range domain.InventoryAlphabet {
		if r == letter {
			return pos
		}
	}
	return len(domain.InventoryAlphabet)
}

func (i *Instance) dialogView() *api.DialogView {
	if i.pendingOffer == nil {
		return nil
	}
	owner := i.Ctx.GetEntity(i.pendingOffer.OwnerID)
	sold := i.Ctx.GetEntity(i.pendingOffer.ItemID)
	if owner == nil || sold == nil {
		return nil
	}
	return &api.DialogView{
		Prompt: owner.Name + " offers a trade for your " + sold.Name + ". Accept? [y/n]",
	}
}
