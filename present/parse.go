package present

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/solarlune/rotations"
)

// Kind identifies one of the three rotation representations.
type Kind int

const (
	KindEuler      Kind = iota // Three Euler angles, in degrees
	KindQuaternion             // Four quaternion components, X, Y, Z, W
	KindAxisAngle              // Three axis components and an angle in degrees
)

// Kinds lists every Kind in the order the fields are shown and checked.
var Kinds = []Kind{KindEuler, KindQuaternion, KindAxisAngle}

// String returns the name the Kind is shown to users with.
func (kind Kind) String() string {
	switch kind {
	case KindEuler:
		return "Euler angles"
	case KindQuaternion:
		return "quaternion"
	case KindAxisAngle:
		return "axis-angle"
	}
	return "Kind(" + strconv.Itoa(int(kind)) + ")"
}

// Arity returns how many numbers are needed to write down a rotation of the given Kind.
func (kind Kind) Arity() int {
	if kind == KindEuler {
		return 3
	}
	return 4
}

// InputFormatError is returned when text for a rotation doesn't hold the right count of numbers, or holds something that
// isn't a finite number. It never reaches the converter.
type InputFormatError struct {
	Kind   Kind   // The representation the text was parsed as
	Input  string // The text, as given
	Reason string // What was wrong with it
}

func (err *InputFormatError) Error() string {
	return fmt.Sprintf("invalid %s format %q: %s", err.Kind, err.Input, err.Reason)
}

// Message returns the error the way it's displayed to users.
func (err *InputFormatError) Message() string {
	return fmt.Sprintf("Invalid %s format. Provide %d numbers separated by commas.", err.Kind, err.Kind.Arity())
}

// parseNumbers splits comma-separated text into exactly kind.Arity() finite numbers. Whitespace around each number is ignored.
func parseNumbers(kind Kind, text string) ([]float64, error) {

	fields := strings.Split(text, ",")

	if len(fields) != kind.Arity() {
		return nil, &InputFormatError{
			Kind:   kind,
			Input:  text,
			Reason: fmt.Sprintf("expected %d numbers, got %d", kind.Arity(), len(fields)),
		}
	}

	values := make([]float64, 0, len(fields))

	for i, field := range fields {

		field = strings.TrimSpace(field)

		v, err := strconv.ParseFloat(field, 64)

		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &InputFormatError{
				Kind:   kind,
				Input:  text,
				Reason: fmt.Sprintf("value %d (%q) is not a finite number", i+1, field),
			}
		}

		values = append(values, v)

	}

	return values, nil

}

// ParseEuler parses "x, y, z" (in degrees) into EulerAngles.
func ParseEuler(text string) (rotations.EulerAngles, error) {
	v, err := parseNumbers(KindEuler, text)
	if err != nil {
		return rotations.EulerAngles{}, err
	}
	return rotations.NewEulerAngles(v[0], v[1], v[2]), nil
}

// ParseQuaternion parses "x, y, z, w" into a Quaternion. The components are returned as written; a quaternion with
// no length at all is rejected, as it can't be normalized into a rotation.
func ParseQuaternion(text string) (rotations.Quaternion, error) {

	v, err := parseNumbers(KindQuaternion, text)
	if err != nil {
		return rotations.Quaternion{}, err
	}

	q := rotations.NewQuaternion(v[0], v[1], v[2], v[3])

	if q.Magnitude() < 1e-8 {
		return rotations.Quaternion{}, &InputFormatError{
			Kind:   KindQuaternion,
			Input:  text,
			Reason: "quaternion has zero length",
		}
	}

	return q, nil

}

// ParseAxisAngle parses "ax, ay, az, angle" (angle in degrees). The axis is returned as written; normalizing it (and
// rejecting a zero axis) is the converter's job.
func ParseAxisAngle(text string) (rotations.Vector, float64, error) {
	v, err := parseNumbers(KindAxisAngle, text)
	if err != nil {
		return rotations.Vector{}, 0, err
	}
	return rotations.NewVector(v[0], v[1], v[2]), v[3], nil
}
