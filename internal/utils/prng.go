// internal/utils/prng.go
package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// PRNGService - это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float возвращает равномерно распределённое число в [min, max).
// При min == max всегда возвращается min.
// Перевёрнутые границы считаются ошибкой программиста.
func (s *PRNGService) Float(min, max float64) float64 {
	if min > max {
		panic(fmt.Sprintf("utils: inverted float range [%v, %v]", min, max))
	}
	return min + s.rng.Float64()*(max-min)
}

// Int возвращает случайное целое в [min, max] включительно.
func (s *PRNGService) Int(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("utils: inverted int range [%d, %d]", min, max))
	}
	return min + s.rng.Intn(max-min+1)
}
