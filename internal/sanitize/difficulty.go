package sanitize

import "strings"

// Difficulty is the closed set of quiz difficulty levels.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Expert       Difficulty = "expert"
)

var AllDifficulties = []Difficulty{
	Beginner,
	Intermediate,
	Expert,
}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

// ParseDifficulty maps a raw value onto the closed set, case
// insensitively. Anything else, including the empty string, is
// Beginner.
func ParseDifficulty(raw string) Difficulty {
	d := Difficulty(strings.ToLower(strings.TrimSpace(raw)))
	if d.IsValid() {
		return d
	}
	return Beginner
}
