package present

import (
	"strconv"
	"strings"
)

// Decimal places results are displayed with.
const (
	ComponentPrecision = 4 // Quaternion and axis components
	AnglePrecision     = 2 // Angles, in degrees
)

// Lines holds a Result formatted for display, one comma-separated line per representation.
type Lines struct {
	Euler      string
	Quaternion string
	AxisAngle  string
}

// Format formats the Result's three representations for display.
func Format(r Result) Lines {
	return Lines{
		Euler: join(
			fixed(r.Euler.X, AnglePrecision),
			fixed(r.Euler.Y, AnglePrecision),
			fixed(r.Euler.Z, AnglePrecision),
		),
		Quaternion: join(
			fixed(r.Quaternion.X, ComponentPrecision),
			fixed(r.Quaternion.Y, ComponentPrecision),
			fixed(r.Quaternion.Z, ComponentPrecision),
			fixed(r.Quaternion.W, ComponentPrecision),
		),
		AxisAngle: join(
			fixed(r.AxisAngle.Axis.X, ComponentPrecision),
			fixed(r.AxisAngle.Axis.Y, ComponentPrecision),
			fixed(r.AxisAngle.Axis.Z, ComponentPrecision),
			fixed(r.AxisAngle.Angle, AnglePrecision),
		),
	}
}

// Line returns the line for the given Kind.
func (l Lines) Line(kind Kind) string {
	switch kind {
	case KindEuler:
		return l.Euler
	case KindQuaternion:
		return l.Quaternion
	case KindAxisAngle:
		return l.AxisAngle
	}
	return ""
}

// Label returns the label a Kind's line is displayed under.
func Label(kind Kind) string {
	switch kind {
	case KindEuler:
		return "Euler Angles (degrees)"
	case KindQuaternion:
		return "Quaternion (x, y, z, w)"
	case KindAxisAngle:
		return "Axis-Angle (x, y, z, degrees)"
	}
	return kind.String()
}

// Text returns all three lines, each under its label.
func (l Lines) Text() string {
	var sb strings.Builder
	for _, kind := range Kinds {
		sb.WriteString(Label(kind))
		sb.WriteString(": ")
		sb.WriteString(l.Line(kind))
		sb.WriteString("\n")
	}
	return sb.String()
}

func fixed(v float64, precision int) string {
	// Exact zero prints without a sign; small negatives still print as "-0.00".
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func join(values ...string) string {
	return strings.Join(values, ", ")
}
