package employee

import (
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"
)

// Generator produces synthetic employee profiles for seeding the vector
// index. A fixed seed yields a reproducible dataset.
type Generator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		rng:   rand.New(rand.NewSource(int64(seed))),
	}
}

// Generate returns n random profiles. Every profile has at least one skill
// and one past project; experience is between 1 and 15 years.
func (g *Generator) Generate(n int) []Profile {
	profiles := make([]Profile, 0, n)
	for i := 0; i < n; i++ {
		profiles = append(profiles, Profile{
			Name:            g.faker.Name(),
			Skills:          g.sample(AllSkills, 1+g.rng.Intn(5)),
			ExperienceYears: 1 + g.rng.Intn(15),
			PastProjects:    g.sample(AllPastProjects, 1+g.rng.Intn(3)),
			Availability:    AvailabilityOptions[g.rng.Intn(len(AvailabilityOptions))],
		})
	}
	return profiles
}

// sample picks n distinct items from pool.
func (g *Generator) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	idx := g.rng.Perm(len(pool))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}
