package core

import "testing"

func TestRectIntersects(t *testing.T) {
	// An 8x9 board drawn at (2,1) with 4-column cells spans 32x9 screen cells.
	board := NewRect(2, 1, 32, 9)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{
			name:     "HUD panel to the right of the board",
			other:    NewRect(36, 1, 20, 9),
			expected: false,
		},
		{
			name:     "HUD panel flush against the board edge",
			other:    NewRect(34, 1, 20, 9),
			expected: false,
		},
		{
			name:     "overlay covering the top rows",
			other:    NewRect(0, 0, 40, 3),
			expected: true,
		},
		{
			name:     "status line below the board",
			other:    NewRect(2, 10, 32, 1),
			expected: false,
		},
		{
			name:     "single cell inside the board",
			other:    NewRect(6, 4, 4, 1),
			expected: true,
		},
		{
			name:     "corner touching by one cell",
			other:    NewRect(33, 9, 10, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := board.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.other.Intersects(board); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	// Interior of a bordered 8x9 board frame.
	r := NewRect(3, 2, 32, 9)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"first cell", 3, 2, true},
		{"last cell of the bottom row", 34, 10, true},
		{"right edge (exclusive)", 35, 10, false},
		{"bottom edge (exclusive)", 34, 11, false},
		{"left border column", 2, 5, false},
		{"top border row", 10, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 1, 32, 9)

	if r.Right() != 34 {
		t.Errorf("Right() = %d, expected 34", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %d, expected 10", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 18 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (18, 5)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	// Cursor clamping on an 8x9 board.
	tests := []struct {
		val, min, max, expected int
	}{
		{4, 0, 7, 4},   // within the column range
		{-3, 0, 7, 0},  // walked off the left edge
		{12, 0, 7, 7},  // walked off the right edge
		{0, 0, 8, 0},   // top row
		{8, 0, 8, 8},   // bottom row
		{20, 0, 8, 8},  // held down past the bottom
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	// Opacity and fall interpolation stay inside [0, 1].
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.6, 0.0, 1.0, 0.6},
		{-0.25, 0.0, 1.0, 0.0},
		{1.4, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 8) != 3 {
		t.Error("Min(3, 8) should be 3")
	}
	if Min(8, 3) != 3 {
		t.Error("Min(8, 3) should be 3")
	}
	if Max(3, 8) != 8 {
		t.Error("Max(3, 8) should be 8")
	}
	if Max(8, 3) != 8 {
		t.Error("Max(8, 3) should be 8")
	}
}

func TestAbs(t *testing.T) {
	if Abs(6) != 6 {
		t.Error("Abs(6) should be 6")
	}
	if Abs(-6) != 6 {
		t.Error("Abs(-6) should be 6")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
