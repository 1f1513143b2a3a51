package engine

import (
	"math/rand"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
)

// Фабрики сущностей. Каждая создает полностью собранную Entity без
// позиции; позицию ставит населяющий зону код.

// NewPlayer создает героя со стартовым статблоком 8 + 1d4.
func NewPlayer(rng *rand.Rand) *domain.Entity {
	stamina := 8 + utils.Roll(rng, 1, 4)
	toughness := 8 + utils.Roll(rng, 1, 4)
	dexterity := 8 + utils.Roll(rng, 1, 4)

	return &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Name:   "Adventurer",
		Render: &domain.RenderComponent{Atlas: "Creatures", Col: 0, Row: 0, ZIndex: 3},
		CombatStats: &domain.CombatStatsComponent{
			CurrentStamina: stamina, MaxStamina: stamina,
			CurrentToughness: toughness, MaxToughness: toughness,
			CurrentDexterity: dexterity, MaxDexterity: dexterity,
			UnarmedAttackDice: 2,
			Speed:             domain.SpeedNormal,
		},
		Viewshed:         &domain.ViewshedComponent{Radius: domain.BaseViewRadius, Dirty: true},
		Hunger:           &domain.HungerComponent{TickCounter: domain.MaxHungerTickCounter, Status: domain.HungerNormal},
		Thirst:           &domain.ThirstComponent{TickCounter: domain.MaxThirstTickCounter, Status: domain.ThirstNormal},
		AutoHeal:         &domain.AutoHealComponent{},
		Experience:       &domain.ExperienceComponent{Level: 1},
		Hates:            &domain.HatesComponent{},
		SmellPerception:  &domain.SmellPerceptionComponent{Radius: 4},
		ListenPerception: &domain.ListenPerceptionComponent{Radius: 10},
		BlocksTile:       &domain.BlocksTileComponent{},
		MyTurn:           &domain.MyTurnComponent{},
	}
}

// --- МОНСТРЫ ---

func NewDeepOne(rng *rand.Rand) *domain.Entity {
	rot := domain.DiseaseFleshRot
	return &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Name:   "deep one",
		Render: &domain.RenderComponent{Atlas: "Creatures", Col: 1, Row: 0, ZIndex: 3},
		CombatStats: &domain.CombatStatsComponent{
			CurrentStamina: 3 + utils.Roll(rng, 1, 4), MaxStamina: 7,
			CurrentToughness: 8, MaxToughness: 8,
			CurrentDexterity: 9, MaxDexterity: 9,
			UnarmedAttackDice: 4,
			Speed:             domain.SpeedNormal,
		},
		Viewshed: &domain.ViewshedComponent{Radius: domain.BaseMonsterViewRadius, Dirty: true},
		Species: &domain.SpeciesComponent{
			Kind: "deep_one", IsAquatic: true,
			HasCorpse: true, CorpseDisease: &rot,
		},
		ProducesSmell: &domain.ProducesSmellComponent{Description: "a briny stench"},
		ProducesSound: &domain.ProducesSoundComponent{
			Noises: []string{"a wet flapping", "a guttural croak"},
			Chance: 3,
		},
		Hates:      &domain.HatesComponent{},
		BlocksTile: &domain.BlocksTileComponent{},
		MyTurn:     &domain.MyTurnComponent{},
	}
}

func NewGremlin(rng *rand.Rand) *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Name:   "gremlin",
		Render: &domain.RenderComponent{Atlas: "Creatures", Col: 2, Row: 0, ZIndex: 3},
		CombatStats: &domain.CombatStatsComponent{
			CurrentStamina: 2 + utils.Roll(rng, 1, 3), MaxStamina: 5,
			CurrentToughness: 6, MaxToughness: 6,
			CurrentDexterity: 14, MaxDexterity: 14,
			UnarmedAttackDice: 3,
			Speed:             domain.SpeedFast,
		},
		Viewshed:   &domain.ViewshedComponent{Radius: domain.BaseMonsterViewRadius, Dirty: true},
		Species:    &domain.SpeciesComponent{Kind: "gremlin", HasCorpse: true},
		CanHide:    &domain.CanHideComponent{},
		Hates:      &domain.HatesComponent{},
		BlocksTile: &domain.BlocksTileComponent{},
		MyTurn:     &domain.MyTurnComponent{},
	}
}

func NewMudWasp(rng *rand.Rand) *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Name:   "mud wasp",
		Render: &domain.RenderComponent{Atlas: "Creatures", Col: 3, Row: 0, ZIndex: 3},
		CombatStats: &domain.CombatStatsComponent{
			CurrentStamina: 1 + utils.Roll(rng, 1, 3), MaxStamina: 4,
			CurrentToughness: 5, MaxToughness: 5,
			CurrentDexterity: 12, MaxDexterity: 12,
			UnarmedAttackDice: 3,
			Speed:             domain.SpeedFast,
		},
		Viewshed: &domain.ViewshedComponent{Radius: domain.BaseMonsterViewRadius, Dirty: true},
		Species:  &domain.SpeciesComponent{Kind: "mud_wasp"},
		ProducesSound: &domain.ProducesSoundComponent{
			Noises: []string{"an angry buzzing"},
			Chance: 6,
		},
		Hates:      &domain.HatesComponent{},
		BlocksTile: &domain.BlocksTileComponent{},
		MyTurn:     &domain.MyTurnComponent{},
	}
}

// NewLurkingEye - взглядобоец: не сближается, слепит с дистанции.
func NewLurkingEye(rng *rand.Rand) *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Name:   "lurking eye",
		Render: &domain.RenderComponent{Atlas: "Creatures", Col: 4, Row: 0, ZIndex: 3},
		CombatStats: &domain.CombatStatsComponent{
			CurrentStamina: 4 + utils.Roll(rng, 1, 4), MaxStamina: 8,
			CurrentToughness: 7, MaxToughness: 7,
			CurrentDexterity: 6, MaxDexterity: 6,
			UnarmedAttackDice: 2,
			Speed:             domain.SpeedSlow,
		},
		Viewshed:   &domain.ViewshedComponent{Radius: domain.BaseMonsterViewRadius, Dirty: true},
		Species:    &domain.SpeciesComponent{Kind: "lurking_eye", CanGaze: true},
		Hates:      &domain.HatesComponent{},
		BlocksTile: &domain.BlocksTileComponent{},
		MyTurn:     &domain.MyTurnComponent{},
	}
}

func NewGiantSnail(rng *rand.Rand) *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Name:   "giant snail",
		Render: &domain.RenderComponent{Atlas: "Creatures", Col: 5, Row: 0, ZIndex: 3},
		CombatStats: &domain.CombatStatsComponent{
			CurrentStamina: 3 + utils.Roll(rng, 1, 4), MaxStamina: 7,
			CurrentToughness: 10, MaxToughness: 10,
			CurrentDexterity: 3, MaxDexterity: 3,
			UnarmedAttackDice: 2,
			Speed:             domain.SpeedSlow,
		},
		Viewshed:   &domain.ViewshedComponent{Radius: domain.BaseMonsterViewRadius, Dirty: true},
		Species:    &domain.SpeciesComponent{Kind: "giant_snail", HasCorpse: true},
		LeaveTrail: &domain.LeaveTrailComponent{Decal: domain.DecalSlime, Lifetime: 10},
		Hates:      &domain.HatesComponent{},
		BlocksTile: &domain.BlocksTileComponent{},
		MyTurn:     &domain.MyTurnComponent{},
	}
}

// NewChicken - фауна: без Viewshed, поэтому ИИ-погоня ее не трогает.
func NewChicken() *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Name:   "chicken",
		Render: &domain.RenderComponent{Atlas: "Creatures", Col: 0, Row: 1, ZIndex: 2},
		CombatStats: &domain.CombatStatsComponent{
			CurrentStamina: 1, MaxStamina: 1,
			CurrentToughness: 2, MaxToughness: 2,
			CurrentDexterity: 8, MaxDexterity: 8,
			UnarmedAttackDice: 1,
			Speed:             domain.SpeedNormal,
		},
		Species: &domain.SpeciesComponent{Kind: "chicken", HasCorpse: true},
		ProducesSound: &domain.ProducesSoundComponent{
			Noises: []string{"a nervous clucking"},
			Chance: 5,
		},
		MyTurn: &domain.MyTurnComponent{},
	}
}

// NewShopkeeper создает лавочника. Прилавок (shopTiles) размечает
// населяющий код, он же выкладывает товар.
func NewShopkeeper(shopTiles []int) *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Name:   "Shopkeeper",
		Render: &domain.RenderComponent{Atlas: "Creatures", Col: 1, Row: 1, ZIndex: 3},
		CombatStats: &domain.CombatStatsComponent{
			CurrentStamina: 12, MaxStamina: 12,
			CurrentToughness: 14, MaxToughness: 14,
			CurrentDexterity: 10, MaxDexterity: 10,
			UnarmedAttackDice: 6,
			Speed:             domain.SpeedNormal,
		},
		Viewshed: &domain.ViewshedComponent{Radius: domain.BaseMonsterViewRadius, Dirty: true},
		Species:  &domain.SpeciesComponent{Kind: "shopkeeper"},
		ShopOwner: &domain.ShopOwnerComponent{
			ShopTiles: shopTiles,
			WantedItems: map[domain.WantedKind]bool{
				domain.WantedCorpse:    true,
				domain.WantedQuaffable: true,
			},
		},
		Hates:      &domain.HatesComponent{},
		BlocksTile: &domain.BlocksTileComponent{},
		MyTurn:     &domain.MyTurnComponent{},
	}
}

// --- ПРЕДМЕТЫ ---

func NewLantern() *domain.Entity {
	return &domain.Entity{
		ID:            domain.EntityID(utils.GenerateID()),
		Name:          "lantern",
		Render:        &domain.RenderComponent{Atlas: "Items", Col: 0, Row: 0, ZIndex: 1},
		ProducesLight: &domain.ProducesLightComponent{Radius: domain.LanternRadius},
		MustBeFueled:  &domain.MustBeFueledComponent{FuelCounter: 300},
		Appliable:     &domain.AppliableComponent{},
		TurnedOff:     &domain.TurnedOffComponent{},
		Metallic:      &domain.MetallicComponent{},
	}
}

func NewTorch() *domain.Entity {
	return &domain.Entity{
		ID:            domain.EntityID(utils.GenerateID()),
		Name:          "torch",
		Render:        &domain.RenderComponent{Atlas: "Items", Col: 1, Row: 0, ZIndex: 1},
		ProducesLight: &domain.ProducesLightComponent{Radius: 4},
		MustBeFueled:  &domain.MustBeFueledComponent{FuelCounter: 150},
		Appliable:     &domain.AppliableComponent{},
		TurnedOff:     &domain.TurnedOffComponent{},
	}
}

func NewOilFlask() *domain.Entity {
	return &domain.Entity{
		ID:       domain.EntityID(utils.GenerateID()),
		Name:     "oil flask",
		Render:   &domain.RenderComponent{Atlas: "Items", Col: 2, Row: 0, ZIndex: 1},
		Refiller: &domain.RefillerComponent{FuelCounter: 300},
	}
}

func NewRations() *domain.Entity {
	return &domain.Entity{
		ID:         domain.EntityID(utils.GenerateID()),
		Name:       "iron rations",
		Render:     &domain.RenderComponent{Atlas: "Items", Col: 3, Row: 0, ZIndex: 1},
		Edible:     &domain.EdibleComponent{NutritionDiceNumber: 3, NutritionDiceSize: 6},
		Perishable: &domain.PerishableComponent{RotCounter: domain.StartingRotCounter * 4},
	}
}

// NewMushroom: каждый шестой гриб смертелен. На вид они одинаковы.
func NewMushroom(rng *rand.Rand) *domain.Entity {
	m := &domain.Entity{
		ID:         domain.EntityID(utils.GenerateID()),
		Name:       "mushroom",
		Render:     &domain.RenderComponent{Atlas: "Items", Col: 4, Row: 0, ZIndex: 1},
		Edible:     &domain.EdibleComponent{NutritionDiceNumber: 1, NutritionDiceSize: 6},
		Perishable: &domain.PerishableComponent{RotCounter: domain.StartingRotCounter},
	}
	if rng.Intn(6) == 0 {
		m.Deadly = &domain.DeadlyComponent{}
	}
	return m
}

func NewWaterskin() *domain.Entity {
	return &domain.Entity{
		ID:        domain.EntityID(utils.GenerateID()),
		Name:      "waterskin",
		Render:    &domain.RenderComponent{Atlas: "Items", Col: 5, Row: 0, ZIndex: 1},
		Quaffable: &domain.QuaffableComponent{ThirstDiceNumber: 2, ThirstDiceSize: 6},
	}
}

func NewShovel() *domain.Entity {
	return &domain.Entity{
		ID:             domain.EntityID(utils.GenerateID()),
		Name:           "shovel",
		Render:         &domain.RenderComponent{Atlas: "Items", Col: 0, Row: 1, ZIndex: 1},
		DiggingTool:    &domain.DiggingToolComponent{},
		InflictsDamage: &domain.InflictsDamageComponent{DiceNumber: 2, DiceSize: 6},
		Metallic:       &domain.MetallicComponent{},
		Bulky:          &domain.BulkyComponent{},
	}
}

func NewShortBow() *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Name:   "short bow",
		Render: &domain.RenderComponent{Atlas: "Items", Col: 1, Row: 1, ZIndex: 1},
		RangedWeapon: &domain.RangedWeaponComponent{
			AttackDice: 6,
			Kind:       domain.AmmoArrow,
			AmmoTotal:  0,
		},
		Equippable: &domain.EquippableComponent{Location: domain.LocationHands},
	}
}

func NewArrows(count int) *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Name:   "arrows",
		Render: &domain.RenderComponent{Atlas: "Items", Col: 2, Row: 1, ZIndex: 1},
		Ammo:   &domain.AmmoComponent{Kind: domain.AmmoArrow, Count: count},
	}
}

func NewZapWand() *domain.Entity {
	return &domain.Entity{
		ID:             domain.EntityID(utils.GenerateID()),
		Name:           "crooked wand",
		Render:         &domain.RenderComponent{Atlas: "Items", Col: 3, Row: 1, ZIndex: 1},
		Invokable:      &domain.InvokableComponent{Kind: domain.InvokableZapWand},
		InflictsDamage: &domain.InflictsDamageComponent{DiceNumber: 2, DiceSize: 6},
	}
}

func NewSword() *domain.Entity {
	return &domain.Entity{
		ID:          domain.EntityID(utils.GenerateID()),
		Name:        "short sword",
		Render:      &domain.RenderComponent{Atlas: "Items", Col: 4, Row: 1, ZIndex: 1},
		MeleeWeapon: &domain.MeleeWeaponComponent{AttackDice: 6},
		Equippable:  &domain.EquippableComponent{Location: domain.LocationRightHand},
		Metallic:    &domain.MetallicComponent{},
	}
}

func NewMailShirt() *domain.Entity {
	return &domain.Entity{
		ID:         domain.EntityID(utils.GenerateID()),
		Name:       "mail shirt",
		Render:     &domain.RenderComponent{Atlas: "Items", Col: 5, Row: 1, ZIndex: 1},
		Armor:      &domain.ArmorComponent{Value: 3},
		Equippable: &domain.EquippableComponent{Location: domain.LocationTorso},
		Metallic:   &domain.MetallicComponent{},
	}
}

func NewLeatherCap() *domain.Entity {
	return &domain.Entity{
		ID:         domain.EntityID(utils.GenerateID()),
		Name:       "leather cap",
		Render:     &domain.RenderComponent{Atlas: "Items", Col: 6, Row: 1, ZIndex: 1},
		Armor:      &domain.ArmorComponent{Value: 1},
		Equippable: &domain.EquippableComponent{Location: domain.LocationHead},
	}
}

// NewBrazierFlame - сущность огня на тайле жаровни: вечный свет.
func NewBrazierFlame() *domain.Entity {
	return &domain.Entity{
		ID:            domain.EntityID(utils.GenerateID()),
		Name:          "brazier flame",
		Render:        &domain.RenderComponent{Atlas: "Tiles", Col: 5, Row: 0, ZIndex: 0},
		ProducesLight: &domain.ProducesLightComponent{Radius: domain.LanternRadius},
		MustBeFueled:  &domain.MustBeFueledComponent{FuelCounter: domain.InfiniteFuel},
	}
}

// NewCrackedWall - раскапываемая сущность на треснувшем тайле.
func NewCrackedWall() *domain.Entity {
	return &domain.Entity{
		ID:       domain.EntityID(utils.GenerateID()),
		Name:     "cracked wall",
		Render:   &domain.RenderComponent{Atlas: "Tiles", Col: 6, Row: 0, ZIndex: 0},
		Diggable: &domain.DiggableComponent{DigPoints: 20},
	}
}

// monsterTable - взвешенный выбор монстра по глубине.
func monsterTable(depth int, rng *rand.Rand) *domain.Entity {
	roll := rng.Intn(10) + min(depth, 5)
	switch {
	case roll < 3:
		return NewGiantSnail(rng)
	case roll < 6:
		return NewMudWasp(rng)
	case roll < 9:
		return NewGremlin(rng)
	case roll < 12:
		return NewDeepOne(rng)
	default:
		return NewLurkingEye(rng)
	}
}

func itemTable(rng *rand.Rand) *domain.Entity {
	switch rng.Intn(12) {
	case 0:
		return NewLantern()
	case 1, 2:
		return NewTorch()
	case 3:
		return NewOilFlask()
	case 4, 5:
		return NewRations()
	case 6:
		return NewWaterskin()
	case 7:
		return NewShovel()
	case 8:
		return NewShortBow()
	case 9:
		return NewArrows(5 + rng.Intn(10))
	case 10:
		return NewZapWand()
	default:
		return NewMushroom(rng)
	}
}

// PopulateZone создает сущности по точкам спавна зоны и по тайлам,
// требующим компаньона-сущности (жаровни, треснувшие стены).
// Игрока здесь нет: его размещает движок отдельно.
func PopulateZone(z *domain.Zone, depth int, rng *rand.Rand) []*domain.Entity {
	var entities []*domain.Entity

	place := func(e *domain.Entity, idx int) {
		x, y := z.Coords(idx)
		e.Pos = &domain.Position{X: x, Y: y}
		entities = append(entities, e)
	}

	for _, idx := range z.MonsterSpawns {
		place(monsterTable(depth, rng), idx)
	}
	for _, idx := range z.ItemSpawns {
		place(itemTable(rng), idx)
	}
	for _, idx := range z.FaunaSpawns {
		place(NewChicken(), idx)
	}

	for idx, t := range z.Tiles {
		switch t {
		case domain.TileBrazier:
			place(NewBrazierFlame(), idx)
		case domain.TileCrackedWall:
			place(NewCrackedWall(), idx)
		}
	}

	// Лавка: в зонах с комнатами последняя комната становится прилавком.
	if len(z.Rooms) > 1 && rng.Intn(2) == 0 {
		entities = append(entities, stockShop(z, rng)...)
	}

	return entities
}

// stockShop размечает прилавок в последней комнате и выкладывает товар.
func stockShop(z *domain.Zone, rng *rand.Rand) []*domain.Entity {
	room := z.Rooms[len(z.Rooms)-1]

	var tiles []int
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			idx := z.GetIndex(x, y)
			if z.Tiles[idx] == domain.TileFloor {
				tiles = append(tiles, idx)
			}
		}
	}
	if len(tiles) < 2 {
		return nil
	}

	keeper := NewShopkeeper(tiles)
	kx, ky := z.Coords(tiles[0])
	keeper.Pos = &domain.Position{X: kx, Y: ky}

	entities := []*domain.Entity{keeper}
	for i := 1; i < len(tiles) && i <= 3; i++ {
		ware := itemTable(rng)
		wx, wy := z.Coords(tiles[i])
		ware.Pos = &domain.Position{X: wx, Y: wy}
		entities = append(entities, ware)
	}
	return entities
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
