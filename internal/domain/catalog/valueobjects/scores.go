package valueobjects

import "fmt"

const (
	minScore = 1
	maxScore = 10
)

// EvaluationScores holds the editorial sub-scores for a tool. All sub-scores
// are on a 1-10 scale.
type EvaluationScores struct {
	easeOfUse   float64
	features    float64
	support     float64
	pricing     float64
	integration float64
}

func NewEvaluationScores(easeOfUse, features, support, pricing, integration float64) (*EvaluationScores, error) {
	for name, v := range map[string]float64{
		"ease_of_use": easeOfUse,
		"features":    features,
		"support":     support,
		"pricing":     pricing,
		"integration": integration,
	} {
		if v < minScore || v > maxScore {
			return nil, fmt.Errorf("%s score must be between %d and %d, got %g", name, minScore, maxScore, v)
		}
	}

	return &EvaluationScores{
		easeOfUse:   easeOfUse,
		features:    features,
		support:     support,
		pricing:     pricing,
		integration: integration,
	}, nil
}

func (s *EvaluationScores) EaseOfUse() float64   { return s.easeOfUse }
func (s *EvaluationScores) Features() float64    { return s.features }
func (s *EvaluationScores) Support() float64     { return s.support }
func (s *EvaluationScores) Pricing() float64     { return s.pricing }
func (s *EvaluationScores) Integration() float64 { return s.integration }

// Overall is the arithmetic mean of the sub-scores.
func (s *EvaluationScores) Overall() float64 {
	return (s.easeOfUse + s.features + s.support + s.pricing + s.integration) / 5
}
