package services

import (
	"testing"

	"github.com/NibirNd/Safebite-App/models"
)

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

func TestClassifyMutualExclusion(t *testing.T) {
	p := NewProfile("p1", models.AuthGuest)
	p.CustomAvoidanceList = []string{"Garlic", "Onion"}

	p = Classify(p, "Garlic", true)
	if !contains(p.SafeFoodList, "Garlic") {
		t.Fatalf("expected Garlic in safe list, got %v", p.SafeFoodList)
	}
	if contains(p.CustomAvoidanceList, "Garlic") {
		t.Fatalf("expected Garlic removed from avoidance list, got %v", p.CustomAvoidanceList)
	}
	if !contains(p.CustomAvoidanceList, "Onion") {
		t.Fatalf("expected Onion untouched, got %v", p.CustomAvoidanceList)
	}

	p = Classify(p, "Garlic", false)
	if contains(p.SafeFoodList, "Garlic") {
		t.Fatalf("expected Garlic removed from safe list, got %v", p.SafeFoodList)
	}
	if !contains(p.CustomAvoidanceList, "Garlic") {
		t.Fatalf("expected Garlic back in avoidance list, got %v", p.CustomAvoidanceList)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	p := NewProfile("p1", models.AuthGuest)

	once := Classify(p, "Oatmeal", true)
	twice := Classify(once, "Oatmeal", true)

	if len(twice.SafeFoodList) != 1 || twice.SafeFoodList[0] != "Oatmeal" {
		t.Fatalf("expected safe list [Oatmeal], got %v", twice.SafeFoodList)
	}
	if len(twice.CustomAvoidanceList) != 0 {
		t.Fatalf("expected empty avoidance list, got %v", twice.CustomAvoidanceList)
	}
}

func TestClassifyNoDuplicatesUnderMixedOps(t *testing.T) {
	p := NewProfile("p1", models.AuthGuest)
	ops := []struct {
		food string
		safe bool
	}{
		{"Rice", true}, {"Rice", false}, {"Rice", true},
		{"Milk", false}, {"Milk", false},
		{"Rice", true},
	}
	for _, op := range ops {
		p = Classify(p, op.food, op.safe)
	}

	for _, list := range [][]string{p.SafeFoodList, p.CustomAvoidanceList} {
		seen := map[string]bool{}
		for _, v := range list {
			if seen[v] {
				t.Fatalf("duplicate %q in %v", v, list)
			}
			seen[v] = true
		}
	}
	if !contains(p.SafeFoodList, "Rice") || contains(p.CustomAvoidanceList, "Rice") {
		t.Fatalf("expected Rice safe only: safe=%v avoid=%v", p.SafeFoodList, p.CustomAvoidanceList)
	}
	if !contains(p.CustomAvoidanceList, "Milk") {
		t.Fatalf("expected Milk in avoidance list, got %v", p.CustomAvoidanceList)
	}
}

func TestClassifyIsCaseSensitive(t *testing.T) {
	p := NewProfile("p1", models.AuthGuest)
	p = Classify(p, "garlic", true)
	p = Classify(p, "Garlic", true)

	if len(p.SafeFoodList) != 2 {
		t.Fatalf("expected two distinct entries, got %v", p.SafeFoodList)
	}
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	p := NewProfile("p1", models.AuthGuest)
	p.CustomAvoidanceList = []string{"Wheat"}

	_ = Classify(p, "Wheat", true)

	if !contains(p.CustomAvoidanceList, "Wheat") {
		t.Fatalf("input profile was mutated: %v", p.CustomAvoidanceList)
	}
	if len(p.SafeFoodList) != 0 {
		t.Fatalf("input profile was mutated: %v", p.SafeFoodList)
	}
}

func TestRemoveFromList(t *testing.T) {
	p := NewProfile("p1", models.AuthGuest)
	p.SafeFoodList = []string{"Rice"}
	p.CustomAvoidanceList = []string{"Milk"}
	p.GeneratedAvoidanceList = []string{"Onion"}

	cases := []struct {
		list string
		item string
	}{
		{ListSafe, "Rice"},
		{ListCustomAvoid, "Milk"},
		{ListGenerated, "Onion"},
	}
	for _, tc := range cases {
		var err error
		p, err = RemoveFromList(p, tc.item, tc.list)
		if err != nil {
			t.Fatalf("remove %q from %s: %v", tc.item, tc.list, err)
		}
	}
	if len(p.SafeFoodList)+len(p.CustomAvoidanceList)+len(p.GeneratedAvoidanceList) != 0 {
		t.Fatalf("expected all lists empty: %v %v %v", p.SafeFoodList, p.CustomAvoidanceList, p.GeneratedAvoidanceList)
	}

	if _, err := RemoveFromList(p, "x", "NOPE"); err == nil {
		t.Fatalf("expected error for unknown list selector")
	}
}
