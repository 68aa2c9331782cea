package present

import (
	"errors"
	"fmt"
	"strings"

	"github.com/solarlune/rotations"
)

// ErrNoInput is returned by Compute when none of a Request's fields hold anything.
var ErrNoInput = errors.New("please enter at least one rotation representation")

// Request holds the text of up to three representations of a rotation. Only the first non-blank one is used,
// checked in Euler, Quaternion, AxisAngle order.
type Request struct {
	Euler      string // "x, y, z" in degrees
	Quaternion string // "x, y, z, w"
	AxisAngle  string // "ax, ay, az, angle" with angle in degrees
}

// Text returns the text of the given Kind's field.
func (req Request) Text(kind Kind) string {
	switch kind {
	case KindEuler:
		return req.Euler
	case KindQuaternion:
		return req.Quaternion
	case KindAxisAngle:
		return req.AxisAngle
	}
	return ""
}

// WithText returns a copy of the Request with the given Kind's field replaced.
func (req Request) WithText(kind Kind, text string) Request {
	switch kind {
	case KindEuler:
		req.Euler = text
	case KindQuaternion:
		req.Quaternion = text
	case KindAxisAngle:
		req.AxisAngle = text
	}
	return req
}

// Source returns the Kind of the field that Compute would use, or false if every field is blank.
func (req Request) Source() (Kind, bool) {
	for _, kind := range Kinds {
		if strings.TrimSpace(req.Text(kind)) != "" {
			return kind, true
		}
	}
	return 0, false
}

// Result is one rotation in all three representations.
type Result struct {
	Source     Kind                  // Which representation the rotation was given in
	Euler      rotations.EulerAngles // In degrees
	Quaternion rotations.Quaternion  // As given, if the source was a quaternion; otherwise unit-length
	AxisAngle  rotations.AxisAngle   // Angle in degrees
}

// IdentityResult returns the Result shown before anything has been entered.
func IdentityResult() Result {
	q := rotations.NewQuaternionIdentity()
	return Result{
		Source:     KindQuaternion,
		Euler:      rotations.QuaternionToEuler(q),
		Quaternion: q,
		AxisAngle:  rotations.QuaternionToAxisAngle(q),
	}
}

// Canonical returns the unit Quaternion that renderers should orient things with.
func (r Result) Canonical() rotations.Quaternion {
	return r.Quaternion.Normalized()
}

// Compute parses the Request's source field and converts it into the other two representations with conv.
// Parsing failures return an *InputFormatError; a zero axis returns a *rotations.DegenerateAxisError.
func Compute(conv rotations.Converter, req Request) (Result, error) {

	kind, ok := req.Source()

	if !ok {
		return Result{}, ErrNoInput
	}

	return ComputeKind(conv, kind, req.Text(kind))

}

// ComputeKind parses the text given as a rotation of the given Kind and converts it into the other two representations.
func ComputeKind(conv rotations.Converter, kind Kind, text string) (Result, error) {

	result := Result{Source: kind}

	switch kind {

	case KindEuler:

		euler, err := ParseEuler(text)
		if err != nil {
			return Result{}, err
		}

		result.Euler = euler
		result.Quaternion = conv.EulerToQuaternion(euler)
		result.AxisAngle = conv.QuaternionToAxisAngle(result.Quaternion)

	case KindQuaternion:

		q, err := ParseQuaternion(text)
		if err != nil {
			return Result{}, err
		}

		result.Quaternion = q
		result.Euler = conv.QuaternionToEuler(q)
		result.AxisAngle = conv.QuaternionToAxisAngle(q)

	case KindAxisAngle:

		axis, angle, err := ParseAxisAngle(text)
		if err != nil {
			return Result{}, err
		}

		// The entered angle is kept as-is (rather than re-extracted into 0-360) so it reads back the way it was typed.
		aa, err := rotations.NewAxisAngle(axis, angle)
		if err != nil {
			return Result{}, fmt.Errorf("axis-angle %q: %w", text, err)
		}

		q, err := conv.AxisAngleToQuaternion(aa.Axis, aa.Angle)
		if err != nil {
			return Result{}, fmt.Errorf("axis-angle %q: %w", text, err)
		}

		result.Quaternion = q
		result.Euler = conv.QuaternionToEuler(q)
		result.AxisAngle = aa

	default:
		return Result{}, fmt.Errorf("unknown rotation kind %d", int(kind))

	}

	return result, nil

}

// UserMessage returns the text to show a user for an error out of Compute.
func UserMessage(err error) string {

	var formatErr *InputFormatError
	if errors.As(err, &formatErr) {
		return formatErr.Message()
	}

	if errors.Is(err, rotations.ErrDegenerateAxis) {
		return "Invalid axis-angle: the axis can't be all zeroes."
	}

	if errors.Is(err, ErrNoInput) {
		return "Please enter at least one rotation representation."
	}

	return err.Error()

}
