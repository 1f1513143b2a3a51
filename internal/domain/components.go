package domain

// --- КОМПОНЕНТЫ СУЩЕСТВ ---
// Компоненты - чистые данные. Если указатель nil - свойства нет.

// RenderComponent - визуализация (клиент).
// Спрайт адресуется (col,row) внутри логического атласа.
type RenderComponent struct {
	Atlas  string `json:"atlas"` // "Creatures", "Tiles", "Items", "Particles"
	Col    int    `json:"col"`
	Row    int    `json:"row"`
	ZIndex int    `json:"zIndex"`
}

// CombatStatsComponent - боевые характеристики и ресурсы.
type CombatStatsComponent struct {
	CurrentStamina   int `json:"currentStamina"`
	MaxStamina       int `json:"maxStamina"`
	CurrentToughness int `json:"currentToughness"`
	MaxToughness     int `json:"maxToughness"`
	CurrentDexterity int `json:"currentDexterity"`
	MaxDexterity     int `json:"maxDexterity"`

	BaseArmor         int   `json:"baseArmor"`
	UnarmedAttackDice int   `json:"unarmedAttackDice"` // размер кости безоружной атаки (1dN)
	Speed             Speed `json:"speed"`
}

// ViewshedComponent - кэш поля зрения.
type ViewshedComponent struct {
	Radius int `json:"radius"`

	// VisibleTiles - индексы видимых тайлов, отсортированы по дистанции
	// от наблюдателя (ИИ полагается на этот порядок).
	VisibleTiles []int `json:"-"`
	Dirty        bool  `json:"-"`
}

// Contains проверяет, видит ли наблюдатель тайл idx.
func (v *ViewshedComponent) Contains(idx int) bool {
	for _, t := range v.VisibleTiles {
		if t == idx {
			return true
		}
	}
	return false
}

// SufferingDamageComponent - аккумулятор урона за текущий тик.
// Урон копится здесь и применяется одним системным проходом.
type SufferingDamageComponent struct {
	StaminaDamage   int
	ToughnessDamage int
	DexterityDamage int
	SourceID        EntityID // кто нанес (пусто, если среда)
}

// SpeciesComponent - видовая метка.
type SpeciesComponent struct {
	Kind      string `json:"kind"` // "deep_one", "gremlin", "rat"...
	IsAquatic bool   `json:"isAquatic"`
	// HasCorpse: после смерти остается труп-предмет.
	HasCorpse bool `json:"hasCorpse"`
	// CorpseDisease: труп заражен (охота на падальщиков).
	CorpseDisease *DiseaseKind `json:"-"`
	// CanGaze: атакует взглядом вместо сближения.
	CanGaze bool `json:"canGaze"`
}

// HatesComponent - кого сущность ненавидит (растет от урона и краж).
type HatesComponent struct {
	List map[EntityID]bool `json:"-"`
}

func (h *HatesComponent) Add(id EntityID) {
	if h.List == nil {
		h.List = make(map[EntityID]bool)
	}
	h.List[id] = true
}

// HungerComponent / ThirstComponent - счетчики потребностей.
type HungerComponent struct {
	TickCounter int          `json:"tickCounter"`
	Status      HungerStatus `json:"status"`
}

type ThirstComponent struct {
	TickCounter int          `json:"tickCounter"`
	Status      ThirstStatus `json:"status"`
}

// AutoHealComponent - пассивная регенерация выносливости.
type AutoHealComponent struct {
	TickCounter int `json:"tickCounter"`
}

// DiseaseState - одна активная болезнь.
type DiseaseState struct {
	TickCounter int  `json:"tickCounter"`
	Improving   bool `json:"improving"`
}

// DiseasesComponent - активные болезни по видам.
type DiseasesComponent struct {
	Active map[DiseaseKind]*DiseaseState `json:"-"`
}

// BlindComponent - временная слепота. Счетчик уменьшается каждый тик.
type BlindComponent struct {
	TicksLeft int `json:"ticksLeft"`
}

// ParalyzedComponent - маркер паралича: ход сгорает впустую.
type ParalyzedComponent struct{}

// WetComponent - промокание. Мокрые предметы не зажигаются.
type WetComponent struct {
	Countdown int `json:"countdown"`
}

// HiddenComponent - сущность спряталась.
type HiddenComponent struct {
	TurnCounter int `json:"turnCounter"`
}

// CanHideComponent - умение прятаться с перезарядкой после раскрытия.
type CanHideComponent struct {
	CooldownTicks int `json:"cooldownTicks"`
}

// ProducesSmellComponent / ProducesSoundComponent - сенсорные следы.
type ProducesSmellComponent struct {
	Description string `json:"description"` // "a briny stench"
}

type ProducesSoundComponent struct {
	Noises []string `json:"noises"` // реплики для слуха: "a wet flapping"
	Chance int      `json:"chance"` // шанс из 20 издать звук за тик
}

// SmellPerceptionComponent / ListenPerceptionComponent - восприятие.
type SmellPerceptionComponent struct {
	Radius int `json:"radius"`
	// LastSmelled - кэш, чтобы не спамить одинаковыми сообщениями.
	LastSmelled map[EntityID]bool `json:"-"`
}

type ListenPerceptionComponent struct {
	Radius int `json:"radius"`
}

// LeaveTrailComponent - сущность оставляет след (слизь, кровь).
type LeaveTrailComponent struct {
	Decal    DecalKind `json:"decal"`
	Lifetime int       `json:"lifetime"` // тиков жизни каждой метки
}

// TrailPlaceholderComponent - сама метка следа на тайле.
type TrailPlaceholderComponent struct {
	TicksLeft int `json:"ticksLeft"`
}

// ExperienceComponent - опыт и уровень.
type ExperienceComponent struct {
	XP    int `json:"xp"`
	Level int `json:"level"`
}

// BlocksTileComponent - маркер: сущность занимает тайл целиком.
type BlocksTileComponent struct{}

// ShopOwnerComponent - торговец и его прилавок.
type ShopOwnerComponent struct {
	ShopTiles   []int               `json:"-"` // индексы тайлов лавки
	WantedItems map[WantedKind]bool `json:"-"`
}

// --- МАРКЕРЫ ПЛАНИРОВЩИКА ---

// MyTurnComponent - сущность вправе решить действие в этом тике.
// SpentCost > 0 означает "ход уже потрачен": маркер доживает до конца
// тика (статусные системы должны увидеть ходящего), а планировщик
// обменяет его на ожидание этой стоимости.
type MyTurnComponent struct {
	SpentCost int `json:"spentCost"`
}

// WaitingToActComponent - сущность отдыхает после действия.
type WaitingToActComponent struct {
	TickCountdown int `json:"tickCountdown"`
}

// ParticleAnimationComponent - покадровая анимация (снаряды, лучи).
// Каждый кадр - список тайлов, которые нужно подсветить.
type ParticleAnimationComponent struct {
	Frames       [][]int `json:"-"`
	CurrentFrame int     `json:"-"`
}
