package utils

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// Roll бросает numberOfDice костей с sizeOfDice гранями и возвращает сумму.
// Roll(rng, 3, 10) == 3d10.
func Roll(rng *mrand.Rand, numberOfDice, sizeOfDice int) int {
	if numberOfDice < 1 || sizeOfDice < 1 {
		return 0
	}
	total := 0
	for i := 0; i < numberOfDice; i++ {
		total += rng.Intn(sizeOfDice) + 1
	}
	return total
}

// D20 бросает один двадцатигранник.
func D20(rng *mrand.Rand) int {
	return rng.Intn(20) + 1
}

// SavingThrow бросает d20 против характеристики.
// Спасбросок удался, если выпало не больше значения характеристики.
func SavingThrow(rng *mrand.Rand, stat int) bool {
	return D20(rng) <= stat
}

// RandRange возвращает случайное число в диапазоне [min, max] включительно.
func RandRange(rng *mrand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}
