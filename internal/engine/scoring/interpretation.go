package scoring

import "github.com/culturiq/engine/internal/domain/assessment"

// Band boundaries on the 0-100 overall scale.  Each band is inclusive of its
// lower bound; Thriving is inclusive of 100.
const (
	developingFloor  = 40
	establishedFloor = 60
	thrivingFloor    = 80
)

var interpretations = map[assessment.Band]assessment.Interpretation{
	assessment.BandNascent: {
		Level:       assessment.BandNascent,
		Description: "Foundational resilience capacities are still forming. Focus on the fundamentals: reserves, documentation, and community relationships.",
		Color:       "#ef4444",
	},
	assessment.BandDeveloping: {
		Level:       assessment.BandDeveloping,
		Description: "Core capacities exist but are uneven. Strengthening your weakest constructs will yield the largest resilience gains.",
		Color:       "#f59e0b",
	},
	assessment.BandEstablished: {
		Level:       assessment.BandEstablished,
		Description: "Solid resilience across most dimensions. Targeted improvements and synergy between capacities can push you further.",
		Color:       "#3b82f6",
	},
	assessment.BandThriving: {
		Level:       assessment.BandThriving,
		Description: "Exemplary cultural innovation resilience. Maintain your systems and consider mentoring others in your community.",
		Color:       "#22c55e",
	},
}

// Interpret maps an overall score to its qualitative band.  The function is
// total over float64: scores below the scale clamp to Nascent and scores
// above it clamp to Thriving.
func Interpret(score float64) assessment.Interpretation {
	switch {
	case score < developingFloor:
		return interpretations[assessment.BandNascent]
	case score < establishedFloor:
		return interpretations[assessment.BandDeveloping]
	case score < thrivingFloor:
		return interpretations[assessment.BandEstablished]
	default:
		return interpretations[assessment.BandThriving]
	}
}
