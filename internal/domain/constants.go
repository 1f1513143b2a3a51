package domain

// Геометрия зоны и рендера
const (
	MapWidth  = 56
	MapHeight = 34
	TileSize  = 24
)

// Экономика действий
const (
	// MaxActionSpeed задает стоимость хода: cost = max(1, MaxActionSpeed - speed)
	MaxActionSpeed = 4

	// SecondsToWait - пауза рендера между тиками (анимации частиц)
	SecondsToWait = 0.1
)

// Speed определяет, как часто сущность получает ход.
type Speed int

const (
	SpeedSlow   Speed = 1
	SpeedNormal Speed = 2
	SpeedFast   Speed = 3
)

// Счетчики состояний
const (
	MaxHungerTickCounter      = 151
	MaxThirstTickCounter      = 151
	MaxStaminaHealTickCounter = 4
	MaxDiseaseTickCounter     = 51
	MaxWetTickCounter         = 21
	MaxHiddenTurns            = 21
	StartingRotCounter        = 51
)

// Зрение и свет
const (
	LanternRadius         = 6
	BaseViewRadius        = 6
	BaseMonsterViewRadius = 8

	// LanternFlickerThreshold и LanternOutThreshold - значения топлива,
	// при которых носитель получает предупреждение в лог.
	LanternFlickerThreshold = 25
	LanternOutThreshold     = 1

	// InfiniteFuel - маркер бесконечного топлива (жаровни, грибы)
	InfiniteFuel = -1
)

// Лог сообщений
const MaxMessagesInLog = 4

// InventoryAlphabet - 52 слота рюкзака, 'a'..'z' затем 'A'..'Z'
const InventoryAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
