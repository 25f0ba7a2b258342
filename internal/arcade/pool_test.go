package arcade

import "testing"

func TestPoolAcquireRelease(t *testing.T) {
	p := NewPool[int](3)

	if p.Cap() != 3 || p.Live() != 0 {
		t.Fatalf("new pool: cap %d live %d", p.Cap(), p.Live())
	}

	idx0, v, ok := p.Acquire()
	if !ok || idx0 != 0 {
		t.Fatalf("first Acquire() = %d, %v; expected index 0", idx0, ok)
	}
	*v = 42

	idx1, _, _ := p.Acquire()
	idx2, _, _ := p.Acquire()
	if idx1 != 1 || idx2 != 2 {
		t.Errorf("indices handed out = %d, %d; expected 1, 2", idx1, idx2)
	}

	if _, _, ok := p.Acquire(); ok {
		t.Error("Acquire() on full pool should fail")
	}
	if p.Live() != 3 {
		t.Errorf("Live() = %d, expected 3", p.Live())
	}

	p.Release(idx1)
	p.Release(idx1) // no-op
	p.Release(99)   // no-op
	if p.Live() != 2 {
		t.Errorf("Live() after release = %d, expected 2", p.Live())
	}

	reused, _, ok := p.Acquire()
	if !ok || reused != idx1 {
		t.Errorf("Acquire() after release = %d, %v; expected reuse of %d", reused, ok, idx1)
	}
}

func TestPoolEachLiveRelease(t *testing.T) {
	p := NewPool[int](5)
	for i := 0; i < 5; i++ {
		_, v, _ := p.Acquire()
		*v = i
	}

	// Release odd values while iterating
	p.EachLive(func(idx int, v *int) {
		if *v%2 == 1 {
			p.Release(idx)
		}
	})

	if p.Live() != 3 {
		t.Errorf("Live() = %d, expected 3", p.Live())
	}

	var seen []int
	p.EachLive(func(_ int, v *int) {
		seen = append(seen, *v)
	})
	if len(seen) != 3 || seen[0] != 0 || seen[1] != 2 || seen[2] != 4 {
		t.Errorf("live values = %v, expected [0 2 4]", seen)
	}
}
