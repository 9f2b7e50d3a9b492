package sprint

import "testing"

func TestAddBerryAssignsIDs(t *testing.T) {
	var st SceneState
	a, b := &Berry{}, &Berry{}
	st.addBerry(a)
	st.addBerry(b)
	if a.ID == 0 || a.ID == b.ID {
		t.Errorf("IDs = %d, %d, want distinct non-zero", a.ID, b.ID)
	}
	if st.Berry(b.ID) != b || st.Berry(999) != nil {
		t.Error("Berry lookup mismatch")
	}
}

func TestMarkEatenIsMonotonic(t *testing.T) {
	var st SceneState
	b := &Berry{}
	if !st.markEaten(b) || st.markEaten(b) {
		t.Error("markEaten should succeed once")
	}
	if st.Score != 1 {
		t.Errorf("Score = %d, want 1", st.Score)
	}
}

func TestCompact(t *testing.T) {
	var st SceneState
	for i := 0; i < 6; i++ {
		st.addBerry(&Berry{Eaten: i%2 == 0})
	}

	if n := st.Compact(6); n != 0 || len(st.Berries) != 6 {
		t.Fatalf("at threshold: removed %d, len %d, want 0 and 6", n, len(st.Berries))
	}
	if n := st.Compact(5); n != 3 {
		t.Errorf("removed = %d, want 3", n)
	}
	for i, b := range st.Berries {
		if b.Eaten {
			t.Errorf("berry %d kept while eaten", b.ID)
		}
		if want := uint32(2*i + 2); b.ID != want {
			t.Errorf("order: index %d has ID %d, want %d", i, b.ID, want)
		}
	}
	if st.LiveBerries() != 3 {
		t.Errorf("LiveBerries = %d, want 3", st.LiveBerries())
	}
}
