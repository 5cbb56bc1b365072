package core

import "testing"

func TestWindowToWorld(t *testing.T) {
	dims := Vec2{X: 1280, Y: 720}
	tests := []struct {
		px, py float32
		want   Vec2
	}{
		{640, 360, Vec2{}},
		{0, 0, Vec2{X: -640, Y: 360}},
		{1280, 720, Vec2{X: 640, Y: -360}},
		{1160, 40, Vec2{X: 520, Y: 320}},
	}

	for _, tt := range tests {
		got := WindowToWorld(tt.px, tt.py, dims)
		if got != tt.want {
			t.Errorf("WindowToWorld(%v, %v) = %v, expected %v", tt.px, tt.py, got, tt.want)
		}
		px, py := WorldToWindow(got, dims)
		if px != tt.px || py != tt.py {
			t.Errorf("WorldToWindow(%v) = (%v, %v), expected (%v, %v)", got, px, py, tt.px, tt.py)
		}
	}
}

func TestInWindow(t *testing.T) {
	dims := Vec2{X: 100, Y: 50}
	tests := []struct {
		px, py float32
		want   bool
	}{
		{0, 0, true},
		{99, 49, true},
		{100, 10, false},
		{10, 50, false},
		{-1, 10, false},
	}

	for _, tt := range tests {
		if got := InWindow(tt.px, tt.py, dims); got != tt.want {
			t.Errorf("InWindow(%v, %v) = %v, expected %v", tt.px, tt.py, got, tt.want)
		}
	}
}
