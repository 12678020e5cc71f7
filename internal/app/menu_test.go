package app

import "testing"

func TestMenuCyclicSymmetry(t *testing.T) {
	for n := 1; n <= 5; n++ {
		items := make([]string, n)
		for start := 0; start < n; start++ {
			m := NewMenu(items)
			for i := 0; i < start; i++ {
				m.Next()
			}
			if m.Selected() != start {
				t.Fatalf("n=%d: setup reached %d, want %d", n, m.Selected(), start)
			}

			m.Previous()
			m.Next()
			if m.Selected() != start {
				t.Errorf("n=%d start=%d: previous then next gave %d", n, start, m.Selected())
			}

			m.Next()
			m.Previous()
			if m.Selected() != start {
				t.Errorf("n=%d start=%d: next then previous gave %d", n, start, m.Selected())
			}
		}
	}
}

func TestMenuWraps(t *testing.T) {
	m := NewMenu(DefaultMenuItems)

	m.Previous()
	if m.Selected() != len(DefaultMenuItems)-1 {
		t.Errorf("Expected wrap to last, got %d", m.Selected())
	}

	m.Next()
	if m.Selected() != 0 {
		t.Errorf("Expected wrap to first, got %d", m.Selected())
	}
}

func TestMenuEmpty(t *testing.T) {
	m := NewMenu(nil)
	m.Next()
	m.Previous()
	if m.Selected() != 0 {
		t.Errorf("Expected 0 for empty menu, got %d", m.Selected())
	}
}
