package main

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
	"strconv"

	"schnapsen-arena/sim/engine"
)

//
// ===== randomness =====
//

// deriveSeed hashes base|label|index and takes the high 8 bytes as a
// big-endian integer. A pure function of its inputs: no call-order or
// process-state dependence, and distinct labels give unrelated digests.
func deriveSeed(base, label string, index int) uint64 {
	sum := sha256.Sum256([]byte(base + "|" + label + "|" + strconv.Itoa(index)))
	return binary.BigEndian.Uint64(sum[:8])
}

// seedStream is splitmix64: cheap, well-distributed deck seeds from one
// base value.
type seedStream struct{ state uint64 }

func newSeedStream(base uint64) seedStream { return seedStream{state: base} }
func (s *seedStream) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z ^= z >> 30
	z *= 0xBF58476D1CE4E5B9
	z ^= z >> 27
	z *= 0x94D049BB133111EB
	z ^= z >> 31
	return z
}

// deckSeeds generates the tournament's shared deck-seed sequence. Game
// index i uses seeds[i] in every pairing, so all pairings face the same
// card distributions. Seeds are truncated to 32 bits to keep them
// friendly to external tooling.
func deckSeeds(base uint64, n int) []uint64 {
	s := newSeedStream(base)
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(uint32(s.next()))
	}
	return out
}

// BotSpec names a bot variant and knows how to build a fresh instance.
type BotSpec struct {
	Label string
	New   func(*rand.Rand, string) engine.Bot
}

// createBot constructs a per-game agent with its own deterministic
// random source, derived from (base seed, label, game index) only.
func createBot(spec BotSpec, gameIndex int) engine.Bot {
	seed := deriveSeed(strconv.Itoa(baseSeed), spec.Label, gameIndex)
	rng := rand.New(rand.NewSource(int64(seed)))
	return spec.New(rng, spec.Label)
}
