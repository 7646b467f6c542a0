// Package firid produces the human readable case identifiers FIR-YYYYMMDD-NNN.
package firid

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Adityakk9031/FirAgent/models"
)

const (
	minSuffix = 100
	maxSuffix = 999
)

// Generator does not check uniqueness: the store rejects a duplicate id with a conflict.
type Generator struct {
	now  func() time.Time
	intN func(n int) int
}

func NewGenerator() Generator {
	return Generator{
		now:  time.Now,
		intN: rand.IntN,
	}
}

// NewGeneratorWith is used by tests to pin the clock and the random source.
func NewGeneratorWith(now func() time.Time, intN func(n int) int) Generator {
	return Generator{now: now, intN: intN}
}

func (g Generator) New() string {
	date := g.now().UTC().Format(models.FirIdDateLayout)
	suffix := minSuffix + g.intN(maxSuffix-minSuffix+1)
	return fmt.Sprintf("FIR-%s-%03d", date, suffix)
}
