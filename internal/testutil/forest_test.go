package testutil

import "testing"

func TestShapeNestsChildren(t *testing.T) {
	if got := Shape(ABCD()); got != "A[B C] D" {
		t.Fatalf("unexpected shape %q", got)
	}
}
