package domain

// --- КОМПОНЕНТЫ-НАМЕРЕНИЯ ---
// Решения (игрок или ИИ) никогда не меняют мир напрямую: они вешают
// Wants*-компонент, а выделенная система применяет эффект и снимает
// намерение. Одно успешное намерение = один потраченный ход.

// WantsItemComponent - подобрать предмет.
type WantsItemComponent struct {
	ItemID EntityID
}

// WantsToEquipComponent - надеть/снять предмет.
type WantsToEquipComponent struct {
	ItemID EntityID
}

// WantsToEatComponent / WantsToDrinkComponent - употребить.
type WantsToEatComponent struct {
	ItemID EntityID
}

type WantsToDrinkComponent struct {
	ItemID EntityID
}

// WantsToDropComponent - выбросить предмет.
type WantsToDropComponent struct {
	ItemID EntityID
}

// WantsToMeleeComponent - ударить в ближнем бою.
type WantsToMeleeComponent struct {
	TargetID EntityID
}

// WantsToZapComponent - разрядить жезл в точку.
type WantsToZapComponent struct {
	ItemID  EntityID
	TargetX int
	TargetY int
}

// WantsToShootComponent - выстрелить из стрелкового оружия.
type WantsToShootComponent struct {
	ItemID  EntityID
	TargetX int
	TargetY int
}

// WantsToDigComponent - копать треснувшую стену.
type WantsToDigComponent struct {
	TargetID EntityID
	ToolID   EntityID
}

// WantsToFuelComponent - заправить предмет.
// WithID пуст - заправка невозможна и будет отклонена с логом.
type WantsToFuelComponent struct {
	ItemID EntityID
	WithID EntityID
}

// WantsToApproachComponent - ИИ: двигаться к цели.
// MoveTo - следующий шаг уже рассчитанного пути.
type WantsToApproachComponent struct {
	TargetID EntityID
	MoveToX  int
	MoveToY  int
}

// WantsToSmellComponent - принюхаться к тайлу.
type WantsToSmellComponent struct {
	TileIndex int
}

// WantsToGazeComponent - атака взглядом (требует зрительного контакта).
type WantsToGazeComponent struct {
	TargetID EntityID
}

// WantsToTradeComponent - предложить предмет торговцу.
type WantsToTradeComponent struct {
	TargetID EntityID
	ItemID   EntityID
}

// WantsToApplyComponent - включить/выключить предмет.
type WantsToApplyComponent struct {
	ItemID EntityID
}
