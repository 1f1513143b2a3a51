package domain

// Entity - непрозрачный идентификатор + набор компонентов.
// Если указатель nil - свойство отсутствует. Это та же схема, что и в
// остальном движке: "сущность" сама по себе ничего не умеет, поведение
// складывается из систем, просеивающих сущности по наличию компонентов.
type Entity struct {
	ID   EntityID `json:"id"`
	Name string   `json:"name"`

	// Position и InBackpack взаимоисключающие:
	// предмет либо лежит в мире, либо в чьем-то рюкзаке.
	Pos        *Position            `json:"pos,omitempty"`
	InBackpack *InBackpackComponent `json:"inBackpack,omitempty"`

	Render *RenderComponent `json:"render,omitempty"`

	// --- Существа ---
	CombatStats      *CombatStatsComponent      `json:"combatStats,omitempty"`
	Viewshed         *ViewshedComponent         `json:"viewshed,omitempty"`
	SufferingDamage  *SufferingDamageComponent  `json:"-"`
	Species          *SpeciesComponent          `json:"species,omitempty"`
	Hates            *HatesComponent            `json:"-"`
	Hunger           *HungerComponent           `json:"hunger,omitempty"`
	Thirst           *ThirstComponent           `json:"thirst,omitempty"`
	AutoHeal         *AutoHealComponent         `json:"-"`
	Diseases         *DiseasesComponent         `json:"-"`
	Blind            *BlindComponent            `json:"-"`
	Paralyzed        *ParalyzedComponent        `json:"-"`
	Wet              *WetComponent              `json:"-"`
	Hidden           *HiddenComponent           `json:"-"`
	CanHide          *CanHideComponent          `json:"-"`
	ProducesSmell    *ProducesSmellComponent    `json:"-"`
	ProducesSound    *ProducesSoundComponent    `json:"-"`
	SmellPerception  *SmellPerceptionComponent  `json:"-"`
	ListenPerception *ListenPerceptionComponent `json:"-"`
	LeaveTrail       *LeaveTrailComponent       `json:"-"`
	TrailPlaceholder *TrailPlaceholderComponent `json:"-"`
	Experience       *ExperienceComponent       `json:"experience,omitempty"`
	BlocksTile       *BlocksTileComponent       `json:"-"`
	ShopOwner        *ShopOwnerComponent        `json:"-"`

	// --- Планировщик ---
	MyTurn       *MyTurnComponent       `json:"-"`
	WaitingToAct *WaitingToActComponent `json:"-"`

	// --- Фасеты предметов ---
	Edible         *EdibleComponent         `json:"edible,omitempty"`
	Quaffable      *QuaffableComponent      `json:"quaffable,omitempty"`
	Equippable     *EquippableComponent     `json:"equippable,omitempty"`
	Equipped       *EquippedComponent       `json:"equipped,omitempty"`
	MeleeWeapon    *MeleeWeaponComponent    `json:"meleeWeapon,omitempty"`
	RangedWeapon   *RangedWeaponComponent   `json:"rangedWeapon,omitempty"`
	Ammo           *AmmoComponent           `json:"ammo,omitempty"`
	Armor          *ArmorComponent          `json:"armor,omitempty"`
	ProducesLight  *ProducesLightComponent  `json:"producesLight,omitempty"`
	MustBeFueled   *MustBeFueledComponent   `json:"mustBeFueled,omitempty"`
	Refiller       *RefillerComponent       `json:"refiller,omitempty"`
	TurnedOn       *TurnedOnComponent       `json:"-"`
	TurnedOff      *TurnedOffComponent      `json:"-"`
	Appliable      *AppliableComponent      `json:"-"`
	Invokable      *InvokableComponent      `json:"invokable,omitempty"`
	InflictsDamage *InflictsDamageComponent `json:"inflictsDamage,omitempty"`
	Perishable     *PerishableComponent     `json:"-"`
	Unsavoury      *UnsavouryComponent      `json:"unsavoury,omitempty"`
	Deadly         *DeadlyComponent         `json:"-"`
	Metallic       *MetallicComponent       `json:"-"`
	Bulky          *BulkyComponent          `json:"-"`
	Eroded         *ErodedComponent         `json:"-"`
	DiggingTool    *DiggingToolComponent    `json:"-"`
	Diggable       *DiggableComponent       `json:"-"`
	Corpse         *CorpseComponent         `json:"-"`
	DiseaseBearer  *DiseaseBearerComponent  `json:"-"`

	// --- Намерения (живут не дольше одного тика) ---
	WantsItem       *WantsItemComponent       `json:"-"`
	WantsToEquip    *WantsToEquipComponent    `json:"-"`
	WantsToEat      *WantsToEatComponent      `json:"-"`
	WantsToDrink    *WantsToDrinkComponent    `json:"-"`
	WantsToDrop     *WantsToDropComponent     `json:"-"`
	WantsToMelee    *WantsToMeleeComponent    `json:"-"`
	WantsToZap      *WantsToZapComponent      `json:"-"`
	WantsToShoot    *WantsToShootComponent    `json:"-"`
	WantsToDig      *WantsToDigComponent      `json:"-"`
	WantsToFuel     *WantsToFuelComponent     `json:"-"`
	WantsToApproach *WantsToApproachComponent `json:"-"`
	WantsToSmell    *WantsToSmellComponent    `json:"-"`
	WantsToGaze     *WantsToGazeComponent     `json:"-"`
	WantsToTrade    *WantsToTradeComponent    `json:"-"`
	WantsToApply    *WantsToApplyComponent    `json:"-"`

	// --- Эффекты ---
	ParticleAnimation *ParticleAnimationComponent `json:"-"`
}

// IsLit: источник света активен - включен (или не выключаемый вовсе)
// и топливо не на нуле.
func (e *Entity) IsLit() bool {
	if e.ProducesLight == nil {
		return false
	}
	if e.Appliable != nil && e.TurnedOn == nil {
		return false
	}
	if e.MustBeFueled != nil && e.MustBeFueled.FuelCounter == 0 {
		return false
	}
	return true
}

// IsCreature: у сущности есть тело, умеющее получать урон.
func (e *Entity) IsCreature() bool {
	return e.CombatStats != nil
}

// TakeDamage добавляет урон в аккумулятор (создавая его при надобности).
// Сам урон применит система damage одним проходом - так исключается
// двойное применение эффектов внутри тика.
func (e *Entity) TakeDamage(stamina, toughness, dexterity int, source EntityID) {
	if e.SufferingDamage == nil {
		e.SufferingDamage = &SufferingDamageComponent{}
	}
	e.SufferingDamage.StaminaDamage += stamina
	e.SufferingDamage.ToughnessDamage += toughness
	e.SufferingDamage.DexterityDamage += dexterity
	if source != "" {
		e.SufferingDamage.SourceID = source
	}
}
