package runtime

import "testing"

func TestTimerSetAndGet(t *testing.T) {
	var now uint64 = 1000
	clock := FuncClock(func() uint64 { return now })
	ts := NewTimerStore(clock)

	ts.Set("t", 250)
	elapsed, ok := ts.Get("t")
	if !ok {
		t.Fatal("expected timer to exist")
	}
	if elapsed != 250 {
		t.Fatalf("expected elapsed 250, got %d", elapsed)
	}

	now += 100
	elapsed, _ = ts.Get("t")
	if elapsed != 350 {
		t.Fatalf("expected elapsed 350 after advancing clock, got %d", elapsed)
	}
}

func TestTimerCreateStartsAtZero(t *testing.T) {
	var now uint64 = 500
	clock := FuncClock(func() uint64 { return now })
	ts := NewTimerStore(clock)
	ts.Create("t")
	elapsed, ok := ts.Get("t")
	if !ok || elapsed != 0 {
		t.Fatalf("expected fresh timer elapsed 0, got %d ok=%v", elapsed, ok)
	}
}

func TestTimerRemove(t *testing.T) {
	clock := FuncClock(func() uint64 { return 0 })
	ts := NewTimerStore(clock)
	ts.Create("t")
	ts.Remove("t")
	if ts.Exists("t") {
		t.Fatal("expected timer removed")
	}
}
