package domain

// --- КОМПОНЕНТЫ ПРЕДМЕТОВ ---
// Предмет - обычная Entity. Роли предмета задаются набором фасетов;
// один предмет может быть сразу едой, оружием и источником света.

// InBackpackComponent - предмет лежит в рюкзаке.
// Взаимоисключим с Position: предмет либо на земле, либо у владельца.
type InBackpackComponent struct {
	OwnerID      EntityID `json:"ownerId"`
	AssignedChar rune     `json:"assignedChar"` // слот 'a'..'z','A'..'Z'
}

// EdibleComponent - можно съесть.
type EdibleComponent struct {
	NutritionDiceNumber int `json:"nutritionDiceNumber"`
	NutritionDiceSize   int `json:"nutritionDiceSize"`
}

// QuaffableComponent - можно выпить.
type QuaffableComponent struct {
	ThirstDiceNumber int `json:"thirstDiceNumber"`
	ThirstDiceSize   int `json:"thirstDiceSize"`
}

// EquippableComponent - можно надеть в указанный слот.
type EquippableComponent struct {
	Location BodyLocation `json:"location"`
}

// EquippedComponent - надето. Owner обязан совпадать с InBackpack.Owner.
type EquippedComponent struct {
	OwnerID  EntityID     `json:"ownerId"`
	Location BodyLocation `json:"location"`
}

// MeleeWeaponComponent - оружие ближнего боя.
type MeleeWeaponComponent struct {
	AttackDice int `json:"attackDice"` // 1dN
}

// RangedWeaponComponent - стрелковое оружие.
type RangedWeaponComponent struct {
	AttackDice int      `json:"attackDice"`
	Kind       AmmoKind `json:"kind"`
	AmmoTotal  int      `json:"ammoTotal"`
}

// AmmoComponent - боеприпасы.
type AmmoComponent struct {
	Kind  AmmoKind `json:"kind"`
	Count int      `json:"count"`
}

// ArmorComponent - броня.
type ArmorComponent struct {
	Value int `json:"value"`
}

// ProducesLightComponent - источник света.
type ProducesLightComponent struct {
	Radius int `json:"radius"`
}

// MustBeFueledComponent - свет требует топлива.
// FuelCounter 0 гасит источник, InfiniteFuel(-1) - вечный огонь.
type MustBeFueledComponent struct {
	FuelCounter int `json:"fuelCounter"`
}

// RefillerComponent - канистра: переливает топливо в MustBeFueled.
type RefillerComponent struct {
	FuelCounter int `json:"fuelCounter"`
}

// TurnedOnComponent / TurnedOffComponent - состояние включаемого предмета.
type TurnedOnComponent struct{}
type TurnedOffComponent struct{}

// AppliableComponent - предмет можно включать/выключать.
type AppliableComponent struct{}

// InvokableComponent - предмет с активируемым эффектом (жезлы).
type InvokableComponent struct {
	Kind InvokableKind `json:"kind"`
}

// InflictsDamageComponent - кости урона эффекта (жезл, инструмент).
type InflictsDamageComponent struct {
	DiceNumber int `json:"diceNumber"`
	DiceSize   int `json:"diceSize"`
}

// PerishableComponent - портящийся предмет.
type PerishableComponent struct {
	RotCounter int `json:"rotCounter"`
}

// UnsavouryComponent - несъедобное: гнилое и/или ядовитое.
type UnsavouryComponent struct {
	Rotten    bool `json:"rotten"`
	Poisonous bool `json:"poisonous"`
}

// DeadlyComponent - смертельно при употреблении.
type DeadlyComponent struct{}

// MetallicComponent / BulkyComponent - физические свойства.
type MetallicComponent struct{}
type BulkyComponent struct{}

// ErodedComponent - износ: штраф к значению брони.
type ErodedComponent struct {
	Penalty int `json:"penalty"`
}

// DiggingToolComponent - инструмент для раскопок.
type DiggingToolComponent struct{}

// DiggableComponent - сущность, которую можно раскопать (треснувшая стена).
type DiggableComponent struct {
	DigPoints int `json:"digPoints"`
}

// CorpseComponent - труп.
type CorpseComponent struct{}

// DiseaseBearerComponent - переносчик болезни (испорченное мясо).
type DiseaseBearerComponent struct {
	Kind DiseaseKind `json:"kind"`
}
