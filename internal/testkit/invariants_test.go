package testkit

import "testing"

func TestCheckTableInvariants(t *testing.T) {
	if err := CheckTableInvariants(); err != nil {
		t.Fatalf("table invariants: %v", err)
	}
}
