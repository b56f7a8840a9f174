package lock

import "testing"

func TestUnlockOverridesLock(t *testing.T) {
	r := New()
	r.Lock("The Ox")
	if !r.IsLocked("The Ox") {
		t.Fatalf("expected The Ox to be locked")
	}
	r.Unlock("The Ox")
	if r.IsLocked("The Ox") {
		t.Fatalf("expected unlock to override lock")
	}
}

func TestLockIsIdempotent(t *testing.T) {
	r := New()
	r.Lock("The Ox")
	r.Lock("The Ox")
	if len(r.locked) != 1 {
		t.Fatalf("expected Lock to dedupe, got %d entries", len(r.locked))
	}
}

func TestInitLocksAnteGating(t *testing.T) {
	r := New()
	r.InitLocks(1, false, false)
	if !r.IsLocked("The Mouth") {
		t.Fatalf("expected ordinary bosses locked before ante 2")
	}
	if !r.IsLocked("The Tooth") {
		t.Fatalf("expected The Tooth locked before ante 3")
	}
	if !r.IsLocked("The Plant") {
		t.Fatalf("expected The Plant locked before ante 4")
	}

	r2 := New()
	r2.InitLocks(6, false, false)
	if r2.IsLocked("The Ox") {
		t.Fatalf("expected The Ox unlocked by ante 6 init")
	}
}

func TestInitUnlocksAtExactAnte(t *testing.T) {
	r := New()
	r.InitLocks(1, false, false)
	r.InitUnlocks(2, false)
	if r.IsLocked("The Mouth") {
		t.Fatalf("expected ordinary bosses unlocked at ante 2")
	}
	if r.IsLocked("Negative Tag") {
		t.Fatalf("expected Negative Tag unlocked at ante 2 when not fresh profile")
	}
}

func TestFreshProfileLocksNegativeTag(t *testing.T) {
	r := New()
	r.InitLocks(1, true, false)
	r.InitUnlocks(2, true)
	if !r.IsLocked("Negative Tag") {
		t.Fatalf("expected Negative Tag to remain locked for a fresh profile at ante 2")
	}
}

func TestLockLevelTwoVouchersCount(t *testing.T) {
	r := New()
	r.LockLevelTwoVouchers()
	for _, name := range levelTwoVouchers {
		if !r.IsLocked(name) {
			t.Fatalf("expected %q to be locked after LockLevelTwoVouchers", name)
		}
	}
	if len(levelTwoVouchers) != 16 {
		t.Fatalf("expected 16 tier-2 vouchers, got %d", len(levelTwoVouchers))
	}
}
