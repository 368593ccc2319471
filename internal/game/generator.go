package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/google/uuid"

	"horsemanager/internal/domain"
)

// Generator produces random shop stock. Two generators built from the same
// seed and salt produce the same sequence of items, IDs included.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator for seed. The salt separates independent
// streams drawn from one game seed, such as the stock of different days.
func NewGenerator(seed uint64, salt string) *Generator {
	// Non-cryptographic PRNG is intentional for reproducible games.
	// #nosec G404
	return &Generator{rng: rand.New(rand.NewPCG(seedWord(seed, salt+":a"), seedWord(seed, salt+":b")))}
}

func seedWord(seed uint64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Read fills p from the generator so IDs are reproducible too.
func (g *Generator) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := g.rng.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g)
	if err != nil {
		// Read never fails.
		panic(err)
	}
	return id.String()
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// RollRarity draws a tier with weights 5/3/2/1 out of 11.
func (g *Generator) RollRarity() domain.Rarity {
	switch n := g.rng.IntN(11); {
	case n < 5:
		return domain.RarityCommon
	case n < 8:
		return domain.RarityRare
	case n < 10:
		return domain.RarityEpic
	default:
		return domain.RarityLegendary
	}
}

// ---------------------------------------------------------------------------
// Horses
// ---------------------------------------------------------------------------

// Horse defaults for freshly generated stock.
const (
	HorseEnergy = 100
	HorseAge    = 10
)

// SpeedRange is the inclusive speed range of a tier.
func SpeedRange(r domain.Rarity) (lo, hi int) {
	switch r {
	case domain.RarityRare:
		return 10, 15
	case domain.RarityEpic:
		return 15, 20
	case domain.RarityLegendary:
		return 20, 30
	default:
		return 5, 10
	}
}

// HorsePrice is the canonical price of a horse of tier r and speed. Each of
// the lower tiers has a cheap and an expensive bracket.
func HorsePrice(r domain.Rarity, speed int) int {
	switch r {
	case domain.RarityCommon:
		if speed <= 7 {
			return 500
		}
		return 600
	case domain.RarityRare:
		if speed <= 12 {
			return 700
		}
		return 800
	case domain.RarityEpic:
		if speed <= 17 {
			return 900
		}
		return 1000
	case domain.RarityLegendary:
		return 1300
	}
	return 0
}

// Resistance derives a horse's resistance from its speed and age.
func Resistance(speed, age int) int {
	return (speed + age) / 2
}

// Horse generates a random horse.
func (g *Generator) Horse() domain.Horse {
	rarity := g.RollRarity()
	speed := g.between(SpeedRange(rarity))
	return domain.Horse{
		ID:         g.newID(),
		Name:       g.pick(horseNames) + " " + g.pick(horseNames),
		Rarity:     rarity,
		Energy:     HorseEnergy,
		Resistance: Resistance(speed, HorseAge),
		Speed:      speed,
		Age:        HorseAge,
		Price:      HorsePrice(rarity, speed),
	}
}

// ---------------------------------------------------------------------------
// Jockeys
// ---------------------------------------------------------------------------

// SkillRange is the inclusive skill range (a percentage) of a tier.
func SkillRange(r domain.Rarity) (lo, hi int) {
	switch r {
	case domain.RarityRare:
		return 40, 60
	case domain.RarityEpic:
		return 60, 80
	case domain.RarityLegendary:
		return 80, 100
	default:
		return 20, 40
	}
}

// JockeyPrice mirrors HorsePrice: a cheap and an expensive bracket per tier,
// split at the middle of the tier's skill range.
func JockeyPrice(r domain.Rarity, skill int) int {
	lo, hi := SkillRange(r)
	cheap := skill <= (lo+hi)/2
	switch r {
	case domain.RarityCommon:
		if cheap {
			return 400
		}
		return 450
	case domain.RarityRare:
		if cheap {
			return 600
		}
		return 650
	case domain.RarityEpic:
		if cheap {
			return 800
		}
		return 900
	case domain.RarityLegendary:
		return 1200
	}
	return 0
}

// Jockey generates a random jockey aged 18 to 40.
func (g *Generator) Jockey() domain.Jockey {
	rarity := g.RollRarity()
	skill := g.between(SkillRange(rarity))
	return domain.Jockey{
		ID:     g.newID(),
		Name:   g.pick(jockeyFirstNames) + " " + g.pick(jockeyLastNames),
		Rarity: rarity,
		Skill:  skill,
		Age:    g.between(18, 40),
		Price:  JockeyPrice(rarity, skill),
	}
}

func (g *Generator) pick(names []string) string {
	return names[g.rng.IntN(len(names))]
}
