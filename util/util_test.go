package util

import "testing"

func TestUnpack(t *testing.T) {
	var a, b, c string
	Unpack([]string{"one", "two"}, &a, &b, &c)
	if a != "one" || b != "two" || c != "" {
		t.Errorf("short slice unpacked to %q %q %q", a, b, c)
	}

	var x, y string
	Unpack([]string{"one", "two", "three"}, &x, &y)
	if x != "one" || y != "two" {
		t.Errorf("long slice unpacked to %q %q", x, y)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5.0, 0, 10); got != 5 {
		t.Errorf("in-range value moved to %v", got)
	}
	if got := Clamp(-3.0, 0, 10); got != 0 {
		t.Errorf("low clamp gave %v", got)
	}
	if got := Clamp(42.0, 0, 10); got != 10 {
		t.Errorf("high clamp gave %v", got)
	}
	// Degenerate range collapses to the lower bound
	if got := Clamp(7.0, 0, -5); got != 0 {
		t.Errorf("degenerate range gave %v", got)
	}
}
