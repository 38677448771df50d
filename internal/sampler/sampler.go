// Package sampler splits a requested quiz size into per-difficulty
// quotas. The draw itself happens in the question collection via
// $sample; this package only does the arithmetic and the final shuffle.
package sampler

import (
	"math"
	"math/rand"

	"naukrivacancy/internal/models"
)

// Quota computes the per-level counts for a requested total: 20%
// difficult and 30% moderate (each at least 1), the remainder easy.
// For very small totals the floors can push easy to zero and the sum
// above or below the request; callers live with the shortfall.
func Quota(total int) (difficult, moderate, easy int) {
	difficult = int(math.Floor(float64(total) * 0.2))
	if difficult < 1 {
		difficult = 1
	}
	moderate = int(math.Floor(float64(total) * 0.3))
	if moderate < 1 {
		moderate = 1
	}
	easy = total - difficult - moderate
	if easy < 0 {
		easy = 0
	}
	return difficult, moderate, easy
}

// Shuffle permutes the combined strata in place so the response does
// not reveal difficulty ordering.
func Shuffle(questions []models.Question) {
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
