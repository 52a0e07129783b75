package slot

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource yields floats in [0, 1).
type RandomSource interface {
	Float64() float64
}

type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

func DefaultSource() RandomSource { return cryptoSource{} }

type seededSource struct{ r *rand.Rand }

// NewSeededSource is reproducible; use it in tests and simulations.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }

// IntN returns a uniform integer in [0, n).
func IntN(src RandomSource, n int) int {
	if n <= 1 {
		return 0
	}
	if src == nil {
		src = DefaultSource()
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Shuffle is Fisher-Yates over n elements.
func Shuffle(src RandomSource, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := IntN(src, i+1)
		swap(i, j)
	}
}
