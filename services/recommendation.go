package services

import "github.com/NibirNd/Safebite-App/models"

// AggregateAvoidances is the combined avoidance view: explicit
// allergies, then AI-generated avoidances, then user-declared unsafe
// foods, in that fixed order. It is used for display grouping and as
// avoidance context in analysis prompts, so overlap between the source
// lists is preserved rather than deduplicated.
func AggregateAvoidances(p *models.UserProfile) []string {
	out := make([]string, 0, len(p.Allergies)+len(p.GeneratedAvoidanceList)+len(p.CustomAvoidanceList))
	out = append(out, p.Allergies...)
	out = append(out, p.GeneratedAvoidanceList...)
	out = append(out, p.CustomAvoidanceList...)
	return out
}

// ApplyRecommendations replaces the generated avoidance list wholesale
// with the output of a fresh recommendation run. Regeneration is a
// full reinference, not a merge: items the user previously removed may
// come back.
func ApplyRecommendations(p *models.UserProfile, newList []string) *models.UserProfile {
	out := *p
	if newList == nil {
		newList = []string{}
	}
	out.GeneratedAvoidanceList = newList
	return &out
}

// RemoveGeneratedItem discards a single AI-suggested avoidance. The
// removal is local; it does not feed back into regeneration.
func RemoveGeneratedItem(p *models.UserProfile, item string) *models.UserProfile {
	out := *p
	out.GeneratedAvoidanceList = removeItem(p.GeneratedAvoidanceList, item)
	return &out
}

// UpdateMedicalProfile sets conditions, allergies and goals in one
// step. The caller follows up with a recommendation run and applies
// the result; when that run fails the profile is saved as returned
// here, with the previous generated list intact.
func UpdateMedicalProfile(p *models.UserProfile, conditions, allergies []string, goals string) *models.UserProfile {
	out := *p
	if conditions == nil {
		conditions = []string{}
	}
	if allergies == nil {
		allergies = []string{}
	}
	out.Conditions = conditions
	out.Allergies = allergies
	out.Goals = goals
	return &out
}
