package entity

import "testing"

func TestManagerSpawnAndDestroy(t *testing.T) {
	m := NewManager()
	m.Spawn(NewEntity(1, KindMob, 54, 0, 64, 0))
	m.Spawn(NewEntity(2, KindPlayer, 0, 1, 64, 1))

	if m.Len() != 2 {
		t.Fatalf("got %d entities, want 2", m.Len())
	}
	if e := m.Get(1); e == nil || e.Kind != KindMob {
		t.Fatalf("entity 1 not tracked correctly: %+v", e)
	}

	m.Destroy(1)
	if m.Len() != 1 {
		t.Fatalf("after destroy, got %d entities, want 1", m.Len())
	}
	if m.Get(1) != nil {
		t.Fatalf("destroyed entity 1 still tracked")
	}
}

func TestApplyRelativeMove(t *testing.T) {
	e := NewEntity(1, KindMob, 0, 10, 20, 30)
	e.ApplyRelativeMove(1.5, -2, 0.25)
	if e.X != 11.5 || e.Y != 18 || e.Z != 30.25 {
		t.Fatalf("got (%v,%v,%v)", e.X, e.Y, e.Z)
	}
}
