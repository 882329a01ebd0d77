package triplet

import "testing"

func TestMulVec(t *testing.T) {
	// [ 1 0 2 ]
	// [ 0 3 0 ]
	m := New(2, 3)
	m.Append(0, 0, 1)
	m.Append(0, 2, 1.5)
	m.Append(1, 1, 3)
	m.Append(0, 2, 0.5)
	if m.Len() != 4 {
		t.Errorf("unexpected length, want 4, got %v", m.Len())
	}

	dst := []float64{7, 7}
	m.MulVec(dst, []float64{1, 2, 3})
	if dst[0] != 7 || dst[1] != 6 {
		t.Errorf("unexpected A*x, want [7 6], got %v", dst)
	}
}

func TestDoOrder(t *testing.T) {
	m := New(3, 3)
	m.Grow(3)
	m.Append(2, 0, 1)
	m.Append(0, 1, 2)
	m.Append(2, 0, 3)
	var got []float64
	m.Do(func(i, j int, v float64) {
		got = append(got, v)
	})
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("contributions not visited in append order, got %v", got)
	}
}

func TestAppendPanics(t *testing.T) {
	m := New(2, 2)
	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Append(%v, %v): expected panic", ij[0], ij[1])
				}
			}()
			m.Append(ij[0], ij[1], 1)
		}()
	}
}
