package domain

// EntityID - идентификатор сущности в реестре.
type EntityID string

// TileKind перечисляет виды тайлов зоны.
type TileKind int

const (
	TileFloor TileKind = iota
	TileWall
	TileCrackedWall
	TileDownPassage
	TileUpPassage
	TileBrazier
	TileWater
	TileFieldFence
	TileMushroomField
)

// IsOpaqueTile: взгляд блокируют только сплошные стены.
// Треснувшие стены, вода и грибные поля прозрачны.
func (t TileKind) IsOpaque() bool {
	return t == TileWall
}

// IsSolid: непроходимые тайлы независимо от сущностей на них.
func (t TileKind) IsSolid() bool {
	switch t {
	case TileWall, TileCrackedWall, TileBrazier, TileFieldFence:
		return true
	}
	return false
}

// DecalKind - накладка на тайл (не блокирует движение).
type DecalKind int

const (
	DecalNone DecalKind = iota
	DecalBlood
	DecalVomit
	DecalSlime
)

// DiseaseKind - виды болезней.
type DiseaseKind int

const (
	DiseaseFleshRot DiseaseKind = iota
	DiseaseFever
	DiseaseCalcification
)

func (d DiseaseKind) String() string {
	switch d {
	case DiseaseFleshRot:
		return "flesh rot"
	case DiseaseFever:
		return "fever"
	case DiseaseCalcification:
		return "calcification"
	}
	return "unknown"
}

// HungerStatus / ThirstStatus - дискретные статусы потребностей.
type HungerStatus int

const (
	HungerSatiated HungerStatus = iota
	HungerNormal
	HungerHungry
	HungerStarved
)

type ThirstStatus int

const (
	ThirstQuenched ThirstStatus = iota
	ThirstNormal
	ThirstThirsty
	ThirstDehydrated
)

// BodyLocation - слот экипировки.
type BodyLocation int

const (
	LocationHead BodyLocation = iota
	LocationTorso
	LocationLegs
	LocationLeftHand
	LocationRightHand
	// LocationHands занимает обе руки и конфликтует с каждой из них.
	LocationHands
)

func (b BodyLocation) String() string {
	switch b {
	case LocationHead:
		return "head"
	case LocationTorso:
		return "torso"
	case LocationLegs:
		return "legs"
	case LocationLeftHand:
		return "left hand"
	case LocationRightHand:
		return "right hand"
	case LocationHands:
		return "hands"
	}
	return "unknown"
}

// ConflictsWith проверяет конфликт слотов: Hands пересекается с обеими руками.
func (b BodyLocation) ConflictsWith(other BodyLocation) bool {
	if b == other {
		return true
	}
	if b == LocationHands && (other == LocationLeftHand || other == LocationRightHand) {
		return true
	}
	if other == LocationHands && (b == LocationLeftHand || b == LocationRightHand) {
		return true
	}
	return false
}

// InvokableKind - виды активируемых предметов.
type InvokableKind int

const (
	InvokableZapWand InvokableKind = iota
)

// AmmoKind - виды боеприпасов.
type AmmoKind int

const (
	AmmoArrow AmmoKind = iota
	AmmoSlingStone
)

// WantedKind - что принимает торговец в оплату.
type WantedKind int

const (
	WantedCorpse WantedKind = iota
	WantedQuaffable
)
