// Package random provides the seeded random stream that makes a board reproducible from its seed string,
// together with the primitives that consume it, and crypto-random helpers for fresh seeds.
package random

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math/big"
	mathrand "math/rand/v2"
)

var allowedLetters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// seedBytes is the amount of entropy in a generated seed.
const seedBytes = 16

// Letters returns n crypto-random ASCII letters.
func Letters(n uint) (string, error) {
	letters := make([]rune, n)
	for i := range letters {
		letterIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(allowedLetters))))
		if err != nil {
			return "", err //nolint:wrapcheck // crypto/rand errors are already descriptive
		}
		letters[i] = allowedLetters[letterIndex.Int64()]
	}
	return string(letters), nil
}

// Seed generates a fresh unpredictable seed as 32 hexadecimal characters.
func Seed() (string, error) {
	b := make([]byte, seedBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err //nolint:wrapcheck // crypto/rand errors are already descriptive
	}
	return hex.EncodeToString(b), nil
}

// Float64Source is a stream of uniform draws in [0, 1).
type Float64Source interface {
	Float64() float64
}

// Source is a deterministic stream keyed by a seed string.
//
// The same seed yields the same sequence on every platform. Source is not safe for concurrent use.
type Source struct {
	seed string
	rng  *mathrand.Rand
}

// NewSource returns the stream for seed.
func NewSource(seed string) *Source {
	sum := sha256.Sum256([]byte(seed))
	pcg := mathrand.NewPCG(binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16]))
	return &Source{
		seed: seed,
		rng:  mathrand.New(pcg),
	}
}

// Seed returns the seed string the stream was created with.
func (s *Source) Seed() string {
	return s.seed
}

// Float64 returns the next draw in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// index draws an integer in [0, n) from src.
func index(src Float64Source, n int) int {
	i := int(src.Float64() * float64(n))
	// Guard against rounding up to n for sources returning values extremely close to 1.
	if i >= n {
		i = n - 1
	}
	return i
}

// Shuffle permutes s in place with the Fisher-Yates algorithm.
func Shuffle[T any](src Float64Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := index(src, i+1)
		s[i], s[j] = s[j], s[i]
	}
}

// Sample returns k distinct elements of s in selection order. s is left unmodified.
// k is clamped to len(s).
func Sample[T any](src Float64Source, s []T, k int) []T {
	if k > len(s) {
		k = len(s)
	}
	if k <= 0 {
		return []T{}
	}
	pool := make([]T, len(s))
	copy(pool, s)
	// Partial Fisher-Yates: each step moves one selected element to the front.
	for i := range k {
		j := i + index(src, len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Choice returns one uniformly chosen element of s, or false when s is empty.
func Choice[T any](src Float64Source, s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[index(src, len(s))], true
}
