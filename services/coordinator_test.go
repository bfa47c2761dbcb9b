package services

import (
	"testing"

	"github.com/NibirNd/Safebite-App/models"
)

func TestCoordinatorStartsAtIntro(t *testing.T) {
	flow := NewCoordinator()
	if flow.View() != ViewIntro {
		t.Fatalf("expected INTRO, got %s", flow.View())
	}
}

func TestCoordinatorTransitions(t *testing.T) {
	flow := NewCoordinator()

	steps := []AppView{ViewOnboarding, ViewLoading, ViewDashboard, ViewMyDiet, ViewDashboard, ViewJournal}
	for _, to := range steps {
		if err := flow.Transition(to); err != nil {
			t.Fatalf("transition to %s: %v", to, err)
		}
	}
	if flow.View() != ViewJournal {
		t.Fatalf("expected JOURNAL, got %s", flow.View())
	}
}

func TestCoordinatorRejectsIllegalTransition(t *testing.T) {
	flow := NewCoordinator()

	if err := flow.Transition(ViewSettings); err == nil {
		t.Fatalf("expected INTRO -> SETTINGS to be rejected")
	}
	if flow.View() != ViewIntro {
		t.Fatalf("failed transition must not move the view, got %s", flow.View())
	}
}

func TestCoordinatorLeavingResultDropsResult(t *testing.T) {
	flow := NewCoordinator()
	flow.Force(ViewResult)
	flow.SetResult(&models.AnalysisResult{FoodName: "Ramen", ThreatLevel: models.ThreatMedium})

	if err := flow.Transition(ViewDashboard); err != nil {
		t.Fatalf("transition to dashboard: %v", err)
	}
	if flow.Result() != nil {
		t.Fatalf("expected result dropped after leaving result screen")
	}

	// Force away behaves the same as navigation.
	flow.Force(ViewResult)
	flow.SetResult(&models.AnalysisResult{FoodName: "Ramen", ThreatLevel: models.ThreatMedium})
	flow.Force(ViewDashboard)
	if flow.Result() != nil {
		t.Fatalf("expected result dropped after forced view change")
	}
}

func TestCoordinatorResetDropsResult(t *testing.T) {
	flow := NewCoordinator()
	flow.Force(ViewResult)
	flow.SetResult(&models.AnalysisResult{FoodName: "Ramen", ThreatLevel: models.ThreatMedium})

	if flow.Result() == nil {
		t.Fatalf("expected pending result")
	}

	flow.Reset()
	if flow.View() != ViewIntro {
		t.Fatalf("expected INTRO after reset, got %s", flow.View())
	}
	if flow.Result() != nil {
		t.Fatalf("expected result dropped after reset")
	}
}
