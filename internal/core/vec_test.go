package core

import (
	"math"
	"testing"
)

const vecEpsilon = 1e-9

func vecClose(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < vecEpsilon && math.Abs(a.Y-b.Y) < vecEpsilon
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); !vecClose(got, Vec2{X: 4, Y: 2}) {
		t.Errorf("Add = %+v, expected (4, 2)", got)
	}
	if got := a.Sub(b); !vecClose(got, Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub = %+v, expected (2, 6)", got)
	}
	if got := a.Scale(2); !vecClose(got, Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale = %+v, expected (6, 8)", got)
	}
	if got := a.Dot(b); math.Abs(got-(-5)) > vecEpsilon {
		t.Errorf("Dot = %f, expected -5", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if got := v.Length(); math.Abs(got-5) > vecEpsilon {
		t.Errorf("Length = %f, expected 5", got)
	}
	if got := (Vec2{}).Length(); got != 0 {
		t.Errorf("zero vector Length = %f, expected 0", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	n := v.Normalize()
	if math.Abs(n.Length()-1) > vecEpsilon {
		t.Errorf("normalized length = %f, expected 1", n.Length())
	}
	if !vecClose(n, Vec2{X: 0.6, Y: 0.8}) {
		t.Errorf("Normalize = %+v, expected (0.6, 0.8)", n)
	}

	// The zero vector has no direction
	if got := (Vec2{}).Normalize(); !vecClose(got, Vec2{}) {
		t.Errorf("zero vector Normalize = %+v, expected zero", got)
	}
}

func TestVec2Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		normal   Vec2
		expected Vec2
	}{
		{
			name:     "bounce off floor",
			v:        Vec2{X: 1, Y: 1},
			normal:   Vec2{X: 0, Y: -1},
			expected: Vec2{X: 1, Y: -1},
		},
		{
			name:     "bounce off left wall",
			v:        Vec2{X: -2, Y: 3},
			normal:   Vec2{X: 1, Y: 0},
			expected: Vec2{X: 2, Y: 3},
		},
		{
			name:     "non-unit normal is normalized",
			v:        Vec2{X: 1, Y: 1},
			normal:   Vec2{X: 0, Y: -5},
			expected: Vec2{X: 1, Y: -1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Reflect(tc.normal)
			if !vecClose(got, tc.expected) {
				t.Errorf("Reflect = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := RectF{X: 10, Y: 20, W: 30, H: 40}

	if r.Left() != 10 {
		t.Errorf("Left() = %f, expected 10", r.Left())
	}
	if r.Right() != 40 {
		t.Errorf("Right() = %f, expected 40", r.Right())
	}
	if r.Top() != 20 {
		t.Errorf("Top() = %f, expected 20", r.Top())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %f, expected 60", r.Bottom())
	}

	c := r.Center()
	if !vecClose(c, Vec2{X: 25, Y: 40}) {
		t.Errorf("Center() = %+v, expected (25, 40)", c)
	}
}
