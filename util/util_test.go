package util

import (
	"sort"
	"testing"
)

func TestPtrDeref(t *testing.T) {
	p := Ptr(42)
	if p == nil || *p != 42 {
		t.Fatalf("expected pointer to 42, got %v", p)
	}
	if got := Deref(p); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := Deref[int](nil); got != 0 {
		t.Errorf("expected zero value for nil pointer, got %d", got)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "fallback", "later"); got != "fallback" {
		t.Errorf("expected first non-zero value, got %q", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("expected zero when all values are zero, got %d", got)
	}
	if got := Coalesce("set", "fallback"); got != "set" {
		t.Errorf("expected the set value to win, got %q", got)
	}
}

func TestKeys(t *testing.T) {
	keys := Keys(map[string]int{"a": 1, "b": 2})
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("expected [a b], got %v", keys)
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"x", "y"}, "y") {
		t.Error("expected to find y")
	}
	if Contains([]int{1, 2}, 3) {
		t.Error("did not expect to find 3")
	}
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{"a", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if out := Dedupe([]int(nil)); len(out) != 0 {
		t.Errorf("expected empty result for nil input, got %v", out)
	}
}
