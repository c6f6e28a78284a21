package pagination

import "testing"

func TestNewAppliesBounds(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
		wantOffset          int
	}{
		{0, 0, 1, 20, 0},
		{3, 10, 3, 10, 20},
		{-2, 500, 1, 100, 0},
		{2, 100, 2, 100, 100},
	}
	for _, tc := range cases {
		p := New(tc.page, tc.limit)
		if p.Page != tc.wantPage || p.Limit != tc.wantLimit || p.Offset != tc.wantOffset {
			t.Errorf("New(%d, %d) = %+v", tc.page, tc.limit, p)
		}
	}
}

func TestNewMeta(t *testing.T) {
	m := NewMeta(2, 20, 45)
	if m.TotalPages != 3 || !m.HasNext || !m.HasPrev {
		t.Errorf("unexpected meta %+v", m)
	}

	m = NewMeta(1, 20, 0)
	if m.TotalPages != 0 || m.HasNext || m.HasPrev {
		t.Errorf("unexpected empty meta %+v", m)
	}
}
