// Package api определяет проводной протокол между ядром симуляции и
// клиентом-рендерером: команды игрока внутрь, снимок наблюдаемого
// состояния на границе тика наружу.
package api

// Типы исходящих сообщений.
const (
	TypeUpdate   = "UPDATE"
	TypeDialog   = "DIALOG"
	TypeGameOver = "GAME_OVER"
)

// GridMeta - геометрия зоны.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView - один тайл снимка. Particle подсвечивает тайлы текущего
// кадра анимации частиц.
type TileView struct {
	Kind     int  `json:"kind"`
	Visible  bool `json:"visible"`
	Revealed bool `json:"revealed"`
	Lit      bool `json:"lit"`
	Decal    int  `json:"decal,omitempty"`
	Particle bool `json:"particle,omitempty"`
}

// RenderView - адрес спрайта: (col,row) внутри логического атласа.
type RenderView struct {
	Atlas  string `json:"atlas"`
	Col    int    `json:"col"`
	Row    int    `json:"row"`
	ZIndex int    `json:"z"`
}

// StatsView показывается только для собственной сущности наблюдателя.
type StatsView struct {
	Stamina      int    `json:"st"`
	MaxStamina   int    `json:"maxSt"`
	Toughness    int    `json:"to"`
	MaxToughness int    `json:"maxTo"`
	Dexterity    int    `json:"de"`
	MaxDexterity int    `json:"maxDe"`
	Hunger       string `json:"hunger,omitempty"`
	Thirst       string `json:"thirst,omitempty"`
	Level        int    `json:"level,omitempty"`
	XP           int    `json:"xp,omitempty"`
}

// EntityView - видимая сущность с позицией и рендером.
type EntityView struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	X      int        `json:"x"`
	Y      int        `json:"y"`
	Render RenderView `json:"render"`
	Stats  *StatsView `json:"stats,omitempty"`
}

// ItemView - строка инвентаря.
type ItemView struct {
	Letter   string `json:"letter"`
	Name     string `json:"name"`
	Equipped bool   `json:"equipped,omitempty"`
	Location string `json:"location,omitempty"`
}

// DialogView - ожидающий подтверждения вопрос (y/n).
type DialogView struct {
	Prompt string `json:"prompt"`
}

// ServerResponse - снимок на границе тика. Map идет в порядке
// y*Width+x; Entities отсортированы по возрастанию z-index, чтобы
// клиент рисовал их в порядке прихода.
type ServerResponse struct {
	Type      string       `json:"type"`
	Tick      int64        `json:"tick"`
	Depth     int          `json:"depth"`
	RunState  string       `json:"runState"`
	Grid      GridMeta     `json:"grid"`
	Map       []TileView   `json:"map,omitempty"`
	Entities  []EntityView `json:"entities,omitempty"`
	Inventory []ItemView   `json:"inventory,omitempty"`
	Dialog    *DialogView  `json:"dialog,omitempty"`
	Logs      []string     `json:"logs,omitempty"`
}
