package services

import "math/rand/v2"

// winProbability is the fixed chance of a winning entry (1 in 10,000).
const winProbability = 0.0001

// winningVideo is the single link that marks a winner.
const winningVideo = "https://www.youtube.com/watch?v=7Gw57AxsgMY"

var safeVideos = []string{
	"https://www.youtube.com/watch?v=RzVvThhjAKw",
	"https://www.youtube.com/watch?v=AKeUssuu3Is",
	"https://www.youtube.com/watch?v=oSfVgn7oC_I",
	"https://www.youtube.com/watch?v=LjCzPp-MK48",
	"https://www.youtube.com/watch?v=FV9a4ro5ecw",
	"https://www.youtube.com/watch?v=pZVdQLn_E5w",
	"https://www.youtube.com/watch?v=8dRnTwuFYS4",
	"https://www.youtube.com/watch?v=VNu15Qqomt8",
	"https://www.youtube.com/watch?v=KLuTLF3x9sA",
	"https://www.youtube.com/watch?v=UV0mhY2Dxr0",
}

// drawOutcome decides one entry's fate: a win paired with the winning link,
// or a uniformly chosen safe link. math/rand/v2's global source is ChaCha8
// seeded, which is enough for a fairness-sensitive giveaway.
func drawOutcome() (isWinner bool, videoLink string) {
	if rand.Float64() < winProbability {
		return true, winningVideo
	}
	return false, safeVideos[rand.IntN(len(safeVideos))]
}
