package present

import (
	"errors"
	"testing"

	"github.com/solarlune/rotations"
)

func TestParseEuler(t *testing.T) {

	e, err := ParseEuler(" 10, -20.5 ,30e0")
	if err != nil {
		t.Fatal(err)
	}

	if e != rotations.NewEulerAngles(10, -20.5, 30) {
		t.Errorf("got %s", e)
	}

}

func TestParseRejectsMalformedInput(t *testing.T) {

	tests := []struct {
		kind Kind
		text string
	}{
		{KindEuler, "1,2"},
		{KindEuler, "1,2,3,4"},
		{KindEuler, "1,a,3"},
		{KindEuler, "1,,3"},
		{KindEuler, "NaN,0,0"},
		{KindQuaternion, "0,0,1"},
		{KindQuaternion, "0,0,0,Inf"},
		{KindQuaternion, "0,0,0,0"},
		{KindAxisAngle, "1,0,0"},
		{KindAxisAngle, "x,y,z,90"},
	}

	for _, test := range tests {

		var err error

		switch test.kind {
		case KindEuler:
			_, err = ParseEuler(test.text)
		case KindQuaternion:
			_, err = ParseQuaternion(test.text)
		case KindAxisAngle:
			_, _, err = ParseAxisAngle(test.text)
		}

		var formatErr *InputFormatError
		if !errors.As(err, &formatErr) {
			t.Errorf("%s %q: expected an InputFormatError, got %v", test.kind, test.text, err)
			continue
		}

		if formatErr.Kind != test.kind || formatErr.Input != test.text {
			t.Errorf("%s %q: error describes %s %q", test.kind, test.text, formatErr.Kind, formatErr.Input)
		}

	}

}

func TestInputFormatErrorMessage(t *testing.T) {

	_, err := ParseEuler("1,2")

	var formatErr *InputFormatError
	if !errors.As(err, &formatErr) {
		t.Fatal(err)
	}

	if want := "Invalid Euler angles format. Provide 3 numbers separated by commas."; formatErr.Message() != want {
		t.Errorf("got %q, want %q", formatErr.Message(), want)
	}

	_, _, err = ParseAxisAngle("1")
	if want := "Invalid axis-angle format. Provide 4 numbers separated by commas."; UserMessage(err) != want {
		t.Errorf("got %q, want %q", UserMessage(err), want)
	}

	_, err = ParseQuaternion("1")
	if want := "Invalid quaternion format. Provide 4 numbers separated by commas."; UserMessage(err) != want {
		t.Errorf("got %q, want %q", UserMessage(err), want)
	}

}

func TestParseAxisAngleKeepsAxis(t *testing.T) {

	axis, angle, err := ParseAxisAngle("0, 0, 2, 45")
	if err != nil {
		t.Fatal(err)
	}

	if axis != rotations.NewVector(0, 0, 2) || angle != 45 {
		t.Errorf("got %s, %v", axis, angle)
	}

	// A zero axis parses fine; the converter is what rejects it.
	if _, _, err := ParseAxisAngle("0,0,0,45"); err != nil {
		t.Errorf("expected a zero axis to parse, got %v", err)
	}

}
