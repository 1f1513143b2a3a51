package engine

import (
	"encoding/binary"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Config - параметры запуска движка.
type Config struct {
	// Seed - мастер-сид забега; все зоны выводятся из него.
	Seed int64

	// Debug включает проверку кросс-системных инвариантов каждый тик.
	Debug bool
}

// NewConfig создает конфиг со случайным мастер-сидом.
func NewConfig() Config {
	return Config{
		Seed: time.Now().UnixNano(),
	}
}

// ZoneSeed детерминированно выводит сид зоны из мастер-сида и глубины.
// Хэш вместо сложения: соседние глубины не должны давать коррелированные
// потоки случайности.
func ZoneSeed(master int64, depth int) int64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(master))
	binary.LittleEndian.PutUint64(buf[8:], uint64(depth))
	return int64(xxhash.Sum64(buf[:]))
}
