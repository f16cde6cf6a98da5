package runtime

import "testing"

func TestPauseSuspendsUntilDeadline(t *testing.T) {
	var now uint64
	rt := New(FuncClock(func() uint64 { return now }))

	rt.Pause(100)
	if proceed, _ := rt.Resume(); proceed {
		t.Fatal("expected paused runtime to not proceed")
	}

	now = 99
	if proceed, _ := rt.Resume(); proceed {
		t.Fatal("expected still paused just before deadline")
	}

	now = 100
	proceed, terminate := rt.Resume()
	if !proceed || terminate {
		t.Fatalf("expected resume at deadline, got proceed=%v terminate=%v", proceed, terminate)
	}
	if rt.Phase() != PhaseRunning {
		t.Fatalf("expected RUNNING after pause elapses, got %s", rt.Phase())
	}
}

func TestTimeoutCallbackTrueResumes(t *testing.T) {
	var now uint64
	rt := New(FuncClock(func() uint64 { return now }))

	ran := false
	rt.Timeout(50, func() bool {
		ran = true
		return true
	})

	now = 50
	proceed, terminate := rt.Resume()
	if !ran {
		t.Fatal("expected timeout callback to run")
	}
	if !proceed || terminate {
		t.Fatalf("expected proceed=true terminate=false, got proceed=%v terminate=%v", proceed, terminate)
	}
}

func TestTimeoutCallbackFalseTerminates(t *testing.T) {
	var now uint64
	rt := New(FuncClock(func() uint64 { return now }))

	rt.Timeout(50, func() bool { return false })

	now = 50
	proceed, terminate := rt.Resume()
	if proceed || !terminate {
		t.Fatalf("expected proceed=false terminate=true, got proceed=%v terminate=%v", proceed, terminate)
	}
}

func TestClearTimeoutDisarms(t *testing.T) {
	var now uint64
	rt := New(FuncClock(func() uint64 { return now }))
	rt.Timeout(50, func() bool { return false })
	rt.ClearTimeout()
	if rt.Phase() != PhaseRunning {
		t.Fatalf("expected RUNNING after clear, got %s", rt.Phase())
	}
	now = 1000
	proceed, terminate := rt.Resume()
	if !proceed || terminate {
		t.Fatal("expected cleared timeout not to terminate later")
	}
}
