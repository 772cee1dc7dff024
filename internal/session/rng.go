package session

import (
	"crypto/rand"
	"math/big"
)

// RNG is the injectable randomness source: answer options and the duel
// queue are shuffled uniformly at random through it, so tests can swap in
// a deterministic implementation.
type RNG interface {
	Shuffle(n int, swap func(i, j int))
}

// cryptoRNG is the production RNG, grounded on the teacher's
// crypto/rand-based Fisher-Yates in celebrity.go's startGameLocked.
type cryptoRNG struct{}

// CryptoRNG is the default, non-deterministic RNG.
func CryptoRNG() RNG { return cryptoRNG{} }

func (cryptoRNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			continue
		}
		swap(i, int(j.Int64()))
	}
}

// ShuffleStrings shuffles s in place using rng.
func ShuffleStrings(rng RNG, s []string) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
