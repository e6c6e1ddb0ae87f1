package core

import "testing"

func TestAddColors_NeverNegative(t *testing.T) {
	values := []float64{-10, -1, -0.25, 0, 0.3, 1, 7}

	for _, a := range values {
		for _, b := range values {
			c := AddColors(Color{a, b, a, b}, Color{b, a, -b, -a})
			if c.R < 0 || c.G < 0 || c.B < 0 || c.A < 0 {
				t.Fatalf("AddColors produced negative channel %v from %f, %f", c, a, b)
			}
		}
	}
}

func TestAddColors_FloorsOperands(t *testing.T) {
	tests := []struct {
		name     string
		one, two Color
		expected Color
	}{
		{"both positive", Color{0.25, 0.5, 0.125, 1}, Color{0.25, 0.25, 0.5, 1}, Color{0.5, 0.75, 0.625, 2}},
		{"negative discarded", Color{-0.5, 0.5, -2, 0}, Color{0.25, -0.25, 0.5, 1}, Color{0.25, 0.5, 0.5, 1}},
		{"unbounded above", Color{0.9, 0.9, 0.9, 1}, Color{0.9, 0.9, 0.9, 1}, Color{1.8, 1.8, 1.8, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddColors(tt.one, tt.two); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAddColors3_LeftAssociative(t *testing.T) {
	a := Color{0.1, -0.2, 0.3, 1}
	b := Color{-0.4, 0.5, 0.1, 0}
	c := Color{0.2, 0.2, -0.9, 0.5}

	if got, want := AddColors3(a, b, c), AddColors(AddColors(a, b), c); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestMultiplyAndScaleColors(t *testing.T) {
	got := MultiplyColors(Color{0.5, 1, 0, 1}, Color{0.4, 0.32, 0.7, 0})
	if got != (Color{0.2, 0.32, 0, 0}) {
		t.Errorf("MultiplyColors: got %v", got)
	}

	scaled := ScaleColor(-2, Color{0.5, 0.25, 1, 1})
	if scaled != (Color{-1, -0.5, -2, -2}) {
		t.Errorf("ScaleColor should allow negative results, got %v", scaled)
	}
}

func TestColor_Clamp(t *testing.T) {
	got := Color{-0.5, 0.5, 1.5, 2}.Clamp(0, 1)
	if got != (Color{0, 0.5, 1, 1}) {
		t.Errorf("Clamp: got %v", got)
	}
}
