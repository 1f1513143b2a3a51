package domain

// RunState - единственная процессная переменная, управляющая конвейером.
//
// BeforeTick -> WaitingPlayerInput -> PlayerTurn -> DoTick* ->
//   (GameOver | DrawParticles | GoToNextZone | WaitingPlayerInput)
//
// Инвентарь/диалог/прицеливание - боковые состояния, возвращающие
// управление в WaitingPlayerInput.
type RunState int

const (
	StateBeforeTick RunState = iota
	StateWaitingPlayerInput
	StatePlayerTurn
	StateDoTick
	StateShowInventory
	StateShowDialog
	StateMouseTargeting
	StateDrawParticles
	StateGoToNextZone
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StateBeforeTick:
		return "BeforeTick"
	case StateWaitingPlayerInput:
		return "WaitingPlayerInput"
	case StatePlayerTurn:
		return "PlayerTurn"
	case StateDoTick:
		return "DoTick"
	case StateShowInventory:
		return "ShowInventory"
	case StateShowDialog:
		return "ShowDialog"
	case StateMouseTargeting:
		return "MouseTargeting"
	case StateDrawParticles:
		return "DrawParticles"
	case StateGoToNextZone:
		return "GoToNextZone"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// InventoryAction - что игрок собирается сделать с выбранным предметом.
type InventoryAction int

const (
	InventoryDrop InventoryAction = iota
	InventoryEat
	InventoryQuaff
	InventoryEquip
	InventoryApply
	InventoryInvoke
	InventoryFuel
)
