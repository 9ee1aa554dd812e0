// Package grading converts academic grades between scales so rule
// comparisons always happen on a common percentage basis.
package grading

import (
	"fmt"

	"github.com/jonathan/resume-screener/internal/types"
)

// Scale bounds for sanity checks on raw values.
const (
	maxPercentage = 100.0
	maxCGPA10     = 10.0
	maxGPA4       = 4.0
)

// UnknownScaleError indicates a grade scale outside the supported set.
type UnknownScaleError struct {
	Scale types.GradeScale
}

func (e *UnknownScaleError) Error() string {
	return fmt.Sprintf("unknown grade scale: %q", e.Scale)
}

// ToPercentage converts a grade from the given scale to the 0-100 percentage
// basis.
func ToPercentage(value float64, scale types.GradeScale) (float64, error) {
	switch scale {
	case types.GradeScalePercentage:
		return value, nil
	case types.GradeScaleCGPA10:
		return value * 10, nil
	case types.GradeScaleGPA4:
		return value / 4 * 100, nil
	default:
		return 0, &UnknownScaleError{Scale: scale}
	}
}

// FromPercentage converts a percentage-basis grade back into the given
// scale. It is the algebraic inverse of ToPercentage.
func FromPercentage(percentage float64, scale types.GradeScale) (float64, error) {
	switch scale {
	case types.GradeScalePercentage:
		return percentage, nil
	case types.GradeScaleCGPA10:
		return percentage / 10, nil
	case types.GradeScaleGPA4:
		return percentage / 100 * 4, nil
	default:
		return 0, &UnknownScaleError{Scale: scale}
	}
}

// MaxValue returns the upper bound of the scale's raw values.
func MaxValue(scale types.GradeScale) (float64, error) {
	switch scale {
	case types.GradeScalePercentage:
		return maxPercentage, nil
	case types.GradeScaleCGPA10:
		return maxCGPA10, nil
	case types.GradeScaleGPA4:
		return maxGPA4, nil
	default:
		return 0, &UnknownScaleError{Scale: scale}
	}
}
