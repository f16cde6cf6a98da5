package runtime

import (
	"testing"

	"uosteam/argument"
)

func TestListPushPopOrder(t *testing.T) {
	s := NewListStore()
	a1 := argument.Virtual("1")
	a2 := argument.Virtual("2")
	s.PushBack("l", a1, false)
	s.PushBack("l", a2, false)
	if s.Length("l") != 2 {
		t.Fatalf("expected length 2, got %d", s.Length("l"))
	}
	v, ok := s.PopFront("l")
	if !ok || v.Literal != "1" {
		t.Fatalf("expected front 1, got %+v ok=%v", v, ok)
	}
	v, ok = s.PopFront("l")
	if !ok || v.Literal != "2" {
		t.Fatalf("expected front 2, got %+v ok=%v", v, ok)
	}
}

func TestListPopEmptyIsNoOp(t *testing.T) {
	s := NewListStore()
	s.Create("l")
	if _, ok := s.PopBack("l"); ok {
		t.Fatal("expected pop on empty list to report false")
	}
}

func TestListPushUniqueNeverDuplicates(t *testing.T) {
	s := NewListStore()
	a := argument.Virtual("x")
	s.PushBack("l", a, true)
	s.PushBack("l", argument.Virtual("x"), true)
	if s.Length("l") != 1 {
		t.Fatalf("expected unique push to dedupe, got length %d", s.Length("l"))
	}
}

func TestListDrainAll(t *testing.T) {
	s := NewListStore()
	s.PushBack("l", argument.Virtual("1"), false)
	s.PushBack("l", argument.Virtual("2"), false)
	drained := s.DrainAll("l")
	if len(drained) != 2 {
		t.Fatalf("expected 2 drained elements, got %d", len(drained))
	}
	if s.Length("l") != 0 {
		t.Fatalf("expected list empty after drain, got %d", s.Length("l"))
	}
}
