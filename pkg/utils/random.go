package utils

import "math/rand"

// DeriveSeed выводит зерно уровня из мастер-зерна партии.
// Один и тот же (master, level) всегда дает одно и то же зерно, соседние уровни не коррелируют.
func DeriveSeed(master int64, level int) int64 {
	// splitmix64
	z := uint64(master) + uint64(level+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	return int64(z)
}

// NewRng создает локальный генератор. Глобальный rand в симуляции не используется.
func NewRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandRange возвращает число из [min, max] включительно.
func RandRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}
