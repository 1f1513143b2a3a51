package api

import "encoding/json"

// ClientCommand - входящая команда клиента. Payload разбирается
// обработчиком действия по своей структуре.
type ClientCommand struct {
	Token   string          `json:"token,omitempty"`
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Действия клиента. Набор закрыт: неизвестное действие отбрасывается
// с предупреждением в операционный лог.
const (
	ActionInit      = "INIT"
	ActionMove      = "MOVE"
	ActionWait      = "WAIT"
	ActionPickUp    = "PICK_UP"
	ActionInventory = "INVENTORY"
	ActionSelect    = "SELECT"
	ActionTarget    = "TARGET"
	ActionDig       = "DIG"
	ActionSmell     = "SMELL"
	ActionTrade     = "TRADE"
	ActionDialog    = "DIALOG"
	ActionRestart   = "RESTART"
	ActionQuit      = "QUIT"
)

// DirectionPayload - восемь направлений, dx/dy из {-1,0,1}.
// Используется MOVE и DIG.
type DirectionPayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// InventoryPayload - с какой целью открывается инвентарь.
type InventoryPayload struct {
	Purpose string `json:"purpose"` // drop|eat|quaff|equip|apply|invoke|fuel
}

// SelectPayload - выбранная буква слота.
type SelectPayload struct {
	Letter string `json:"letter"`
}

// TargetPayload - тайл, завершающий прицеливание или принюхивание.
type TargetPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TradePayload - кому и что предлагается.
type TradePayload struct {
	TargetID string `json:"targetId"`
	Letter   string `json:"letter"`
}

// DialogPayload - ответ на диалог подтверждения.
type DialogPayload struct {
	Answer string `json:"answer"` // "y" | "n"
}
