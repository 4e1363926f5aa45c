package dice

import (
	crand "crypto/rand"
	"math/rand/v2"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/bip39dice/internal/dice Roller

// Roller draws uniform random indices, standing in for physical dice
type Roller interface {
	// Index returns a uniform value in [0, n)
	Index(n int) int
}

// ChaChaRoller provides dice rolling functionality
type ChaChaRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed *[32]byte
}

// New creates a new dice roller
func New(cfg *Config) *ChaChaRoller {
	var seed [32]byte
	if cfg != nil && cfg.Seed != nil {
		seed = *cfg.Seed
	} else if _, err := crand.Read(seed[:]); err != nil {
		panic("dice: cannot read system randomness: " + err.Error())
	}

	return &ChaChaRoller{
		random: rand.New(rand.NewChaCha8(seed)),
	}
}

// Index returns a uniform value in [0, n)
func (r *ChaChaRoller) Index(n int) int {
	if n < 1 {
		n = Faces
	}
	return r.random.IntN(n)
}
