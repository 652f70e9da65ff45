package region

import "testing"

// TestAdvanceWraps verifies row wrapping at the region's own width, with the
// column returning to the region's origin column.
func TestAdvanceWraps(t *testing.T) {
	testCases := []struct {
		name   string
		region Region
		steps  int
		want   Cursor
	}{
		{"no wrap", Region{OriginX: 0, OriginY: 0, Width: 10}, 3, Cursor{X: 3, Y: 0}},
		{"wrap at width", Region{OriginX: 0, OriginY: 0, Width: 4}, 4, Cursor{X: 0, Y: 1}},
		{"two rows down", Region{OriginX: 0, OriginY: 0, Width: 4}, 9, Cursor{X: 1, Y: 2}},
		{"offset origin", Region{OriginX: 5, OriginY: 7, Width: 3}, 3, Cursor{X: 5, Y: 8}},
		{"width 1 walks a column", Region{OriginX: 2, OriginY: 0, Width: 1}, 5, Cursor{X: 2, Y: 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cur := tc.region.Start()
			for i := 0; i < tc.steps; i++ {
				cur = tc.region.Advance(cur)
			}
			if cur != tc.want {
				t.Errorf("after %d steps: got %+v, want %+v", tc.steps, cur, tc.want)
			}
		})
	}
}

// TestCellAtAgreesWithAdvance verifies the closed form and the iterative walk
// visit cells in the identical order — the decode side depends on it.
func TestCellAtAgreesWithAdvance(t *testing.T) {
	regions := []Region{
		{OriginX: 0, OriginY: 0, Width: 8},
		{OriginX: 3, OriginY: 10, Width: 5},
		{OriginX: 1, OriginY: 1, Width: 1},
	}

	for _, r := range regions {
		cur := r.Start()
		for i := 0; i < 100; i++ {
			if got := r.CellAt(i); got != cur {
				t.Fatalf("region %+v index %d: CellAt=%+v, walk=%+v", r, i, got, cur)
			}
			cur = r.Advance(cur)
		}
	}
}

// TestOverlaps covers the startup non-overlap validation for the two
// directions of one conversation.
func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Region
		maxCells int
		want     bool
	}{
		{
			name:     "reference layout: rows 0 and 10 apart",
			a:        Region{OriginX: 0, OriginY: 0, Width: 256},
			b:        Region{OriginX: 0, OriginY: 10, Width: 256},
			maxCells: 256 * 10, // exactly fills the band between the origins
			want:     false,
		},
		{
			name:     "same origin",
			a:        Region{OriginX: 0, OriginY: 0, Width: 8},
			b:        Region{OriginX: 0, OriginY: 0, Width: 8},
			maxCells: 1,
			want:     true,
		},
		{
			name:     "narrow region wraps into the other's row",
			a:        Region{OriginX: 0, OriginY: 0, Width: 2},
			b:        Region{OriginX: 0, OriginY: 3, Width: 2},
			maxCells: 8, // region a reaches row 3 by its 7th cell
			want:     true,
		},
		{
			name:     "side by side columns never collide",
			a:        Region{OriginX: 0, OriginY: 0, Width: 4},
			b:        Region{OriginX: 4, OriginY: 0, Width: 4},
			maxCells: 64,
			want:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b, tc.maxCells); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			// Symmetric by construction.
			if got := tc.b.Overlaps(tc.a, tc.maxCells); got != tc.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestValidate rejects degenerate geometry.
func TestValidate(t *testing.T) {
	if err := (Region{OriginX: 0, OriginY: 0, Width: 0}).Validate(); err == nil {
		t.Error("expected error for zero width")
	}
	if err := (Region{OriginX: -1, OriginY: 0, Width: 4}).Validate(); err == nil {
		t.Error("expected error for negative origin")
	}
	if err := (Region{OriginX: 0, OriginY: 0, Width: 4}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
