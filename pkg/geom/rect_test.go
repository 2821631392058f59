package geom

import (
	"errors"
	"testing"
)

func TestRectContains(t *testing.T) {
	r, err := NewRect(0, 0, 5, 5)
	if err != nil {
		t.Fatalf("NewRect() error = %v", err)
	}

	if !r.ContainsXY(4, 4) {
		t.Error("expected (4,4) to be contained")
	}
	if r.ContainsXY(5, 5) {
		t.Error("expected (5,5) to be outside the rect")
	}
}

func TestRectDerivedEdges(t *testing.T) {
	r, err := NewRect(2, 3, 4, 5)
	if err != nil {
		t.Fatalf("NewRect() error = %v", err)
	}
	if r.Right() != 5 {
		t.Errorf("expected Right()=5, got %d", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("expected Bottom()=7, got %d", r.Bottom())
	}
}

func TestNewRectRejectsNegative(t *testing.T) {
	tests := []struct {
		name                string
		x, y, width, height int
	}{
		{"negative x", -1, 0, 5, 5},
		{"negative y", 0, -1, 5, 5},
		{"negative width", 0, 0, -5, 5},
		{"negative height", 0, 0, 5, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRect(tt.x, tt.y, tt.width, tt.height)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestNewPointRejectsNegative(t *testing.T) {
	if _, err := NewPoint(-1, 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
	p, err := NewPoint(3, 4)
	if err != nil {
		t.Fatalf("NewPoint() error = %v", err)
	}
	if p.X != 3 || p.Y != 4 {
		t.Errorf("expected (3,4), got (%d,%d)", p.X, p.Y)
	}
}

func TestRectOverlaps(t *testing.T) {
	a, _ := NewRect(0, 0, 5, 5)
	b, _ := NewRect(4, 4, 5, 5)
	c, _ := NewRect(10, 10, 2, 2)

	if !a.Overlaps(b) {
		t.Error("expected a and b to overlap")
	}
	if a.Overlaps(c) {
		t.Error("expected a and c to not overlap")
	}
}

func TestRectCenter(t *testing.T) {
	r, _ := NewRect(0, 0, 5, 5)
	c := r.Center()
	if c.X != 2 || c.Y != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", c.X, c.Y)
	}
}
