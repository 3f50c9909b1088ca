package main

import "testing"

func TestParseSteps(t *testing.T) {
	got, err := parseSteps(" 3, 10,,42 ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, n := range []int{3, 10, 42} {
		if !got[n] {
			t.Errorf("Expected step %d to be set", n)
		}
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 steps, got %d", len(got))
	}
}

func TestParseStepsRejectsGarbage(t *testing.T) {
	if _, err := parseSteps("1,two"); err == nil {
		t.Error("Expected an error for a non-numeric step")
	}
}
