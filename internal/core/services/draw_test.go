package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawOutcomeDistribution(t *testing.T) {
	safeSet := make(map[string]bool, len(safeVideos))
	for _, v := range safeVideos {
		safeSet[v] = true
	}

	const trials = 1_000_000
	wins := 0
	for i := 0; i < trials; i++ {
		isWinner, link := drawOutcome()
		if isWinner {
			wins++
			require.Equal(t, winningVideo, link, "a win must pair with the winning link")
		} else {
			require.True(t, safeSet[link], "a non-win must pair with a safe link, got %q", link)
			require.NotEqual(t, winningVideo, link)
		}
	}

	// Expected wins: trials * 0.0001 = 100, stddev = 10. Six standard
	// deviations keeps the flake rate negligible.
	assert.GreaterOrEqual(t, wins, 40, "win rate far below 0.01%%")
	assert.LessOrEqual(t, wins, 160, "win rate far above 0.01%%")
}

func TestSafeVideoPoolSize(t *testing.T) {
	assert.Len(t, safeVideos, 10)
	for _, v := range safeVideos {
		assert.NotEqual(t, winningVideo, v)
	}
}
