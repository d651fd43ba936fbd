package domain

import "errors"

var ErrInvalidLevel = errors.New("invalid level (must be beginner, intermediate, or advanced)")

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// routineCatalog maps a training level to its fixed daily routine. The
// catalog is static; assignment depends only on the user's level.
var routineCatalog = map[string]string{
	LevelBeginner:     "10 squats, 10 push-ups, 20s plank, 5 min stretching",
	LevelIntermediate: "20 squats, 20 push-ups, 45s plank, 15 burpees, 10 min stretching",
	LevelAdvanced:     "40 squats, 40 push-ups, 90s plank, 30 burpees, 3x15 lunges, 15 min stretching",
}

func ValidateLevel(level string) error {
	if _, ok := routineCatalog[level]; !ok {
		return ErrInvalidLevel
	}
	return nil
}

// RoutineForLevel returns the daily routine text assigned to a level.
func RoutineForLevel(level string) (string, error) {
	routine, ok := routineCatalog[level]
	if !ok {
		return "", ErrInvalidLevel
	}
	return routine, nil
}
