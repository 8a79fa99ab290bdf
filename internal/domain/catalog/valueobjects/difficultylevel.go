package valueobjects

import "fmt"

// DifficultyLevel describes how much expertise a tool assumes.
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "Beginner"
	DifficultyIntermediate DifficultyLevel = "Intermediate"
	DifficultyExpert       DifficultyLevel = "Expert"
)

var validDifficultyLevels = map[DifficultyLevel]bool{
	DifficultyBeginner:     true,
	DifficultyIntermediate: true,
	DifficultyExpert:       true,
}

func NewDifficultyLevel(s string) (DifficultyLevel, error) {
	dl := DifficultyLevel(s)
	if !validDifficultyLevels[dl] {
		return "", fmt.Errorf("invalid difficulty level: %s", s)
	}
	return dl, nil
}

// ParseDifficultyLevel returns nil for values outside the enumerated set.
func ParseDifficultyLevel(s string) *DifficultyLevel {
	if dl, err := NewDifficultyLevel(s); err == nil {
		return &dl
	}
	return nil
}

func (d DifficultyLevel) String() string {
	return string(d)
}
