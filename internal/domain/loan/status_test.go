package loan

import "testing"

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusActive, StatusCompleted, StatusDefaulted, StatusRejected} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []Status{"", "pending", "SHREDDED"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	terminal := map[Status]bool{
		StatusPending:   false,
		StatusActive:    false,
		StatusCompleted: true,
		StatusDefaulted: true,
		StatusRejected:  true,
	}
	for s, want := range terminal {
		if got := s.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", s, got, want)
		}
	}
}

func TestTypeValid(t *testing.T) {
	if !TypePersonal.Valid() || !TypeOther.Valid() {
		t.Error("known types should be valid")
	}
	if Type("YACHT").Valid() {
		t.Error("unknown type should be invalid")
	}
}
