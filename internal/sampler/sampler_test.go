package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"naukrivacancy/internal/models"
)

func TestQuota(t *testing.T) {
	cases := []struct {
		total     int
		difficult int
		moderate  int
		easy      int
	}{
		{20, 4, 6, 10},
		{10, 2, 3, 5},
		{18, 3, 5, 10},
		{4, 1, 1, 2},
		{3, 1, 1, 1},
		{2, 1, 1, 0},
		{1, 1, 1, 0},
	}
	for _, tc := range cases {
		difficult, moderate, easy := Quota(tc.total)
		assert.Equal(t, tc.difficult, difficult, "difficult for total %d", tc.total)
		assert.Equal(t, tc.moderate, moderate, "moderate for total %d", tc.total)
		assert.Equal(t, tc.easy, easy, "easy for total %d", tc.total)
	}
}

func TestQuotaSmallTotalsOvershoot(t *testing.T) {
	// The minimum-1 floors mean a request for 1 question still yields
	// quotas summing to 2; the draw returns what the collection has.
	difficult, moderate, easy := Quota(1)
	assert.Equal(t, 2, difficult+moderate+easy)
}

func TestShufflePreservesQuestions(t *testing.T) {
	questions := make([]models.Question, 30)
	for i := range questions {
		questions[i] = models.Question{QuestionName: string(rune('a' + i))}
	}

	seen := make(map[string]int, len(questions))
	for _, q := range questions {
		seen[q.QuestionName]++
	}

	Shuffle(questions)

	assert.Len(t, questions, 30)
	for _, q := range questions {
		seen[q.QuestionName]--
	}
	for name, count := range seen {
		assert.Zero(t, count, "question %s lost or duplicated", name)
	}
}
