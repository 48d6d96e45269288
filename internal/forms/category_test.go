package forms

import "testing"

func TestNormalizeCategoryIDsMixedShapes(t *testing.T) {
	got := NormalizeCategoryIDs([]CategoryInput{
		RawID("d1"),
		CategoryRef{ID: "d2", Name: "Billing"},
		RawID("d3"),
	})
	want := []string{"d1", "d2", "d3"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNormalizeCategoryIDsDropsEmptyAndDuplicates(t *testing.T) {
	got := NormalizeCategoryIDs([]CategoryInput{
		RawID(""),
		CategoryRef{ID: "", Name: "nameless"},
		RawID("d1"),
		CategoryRef{ID: "d1", Name: "dup"},
		nil,
	})
	if len(got) != 1 || got[0] != "d1" {
		t.Errorf("expected [d1], got %v", got)
	}
}

func TestNormalizeCategoryIDsEmptyInput(t *testing.T) {
	if got := NormalizeCategoryIDs(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
