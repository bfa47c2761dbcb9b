package services

import (
	"errors"

	"github.com/NibirNd/Safebite-App/models"
)

// List selectors accepted by RemoveFromList.
const (
	ListSafe        = "SAFE"
	ListCustomAvoid = "CUSTOM_AVOID"
	ListGenerated   = "GEN_AVOID"
)

var ErrUnknownList = errors.New("unknown list selector")

// Classify returns an updated copy of the profile with foodName filed
// as safe or unsafe. Adding a food to one list always removes it from
// the other, so the two lists can never both contain the same name,
// and classifying the same food the same way twice is a no-op.
//
// Every call site that marks a food safe or unsafe (the analysis
// result screen, journal auto-classification, diet-list quick add)
// routes through here. Callers are responsible for rejecting empty or
// whitespace-only names before invoking.
func Classify(p *models.UserProfile, foodName string, isSafe bool) *models.UserProfile {
	out := *p
	if isSafe {
		out.SafeFoodList = addToSet(p.SafeFoodList, foodName)
		out.CustomAvoidanceList = removeItem(p.CustomAvoidanceList, foodName)
	} else {
		out.CustomAvoidanceList = addToSet(p.CustomAvoidanceList, foodName)
		out.SafeFoodList = removeItem(p.SafeFoodList, foodName)
	}
	return &out
}

// RemoveFromList drops an item from one of the three food lists. Which
// list is named by the selector the diet screen uses.
func RemoveFromList(p *models.UserProfile, item, list string) (*models.UserProfile, error) {
	out := *p
	switch list {
	case ListSafe:
		out.SafeFoodList = removeItem(p.SafeFoodList, item)
	case ListCustomAvoid:
		out.CustomAvoidanceList = removeItem(p.CustomAvoidanceList, item)
	case ListGenerated:
		out.GeneratedAvoidanceList = removeItem(p.GeneratedAvoidanceList, item)
	default:
		return nil, ErrUnknownList
	}
	return &out, nil
}

// addToSet appends item unless already present. Matching is exact and
// case sensitive.
func addToSet(list []string, item string) []string {
	for _, v := range list {
		if v == item {
			return list
		}
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item)
}

func removeItem(list []string, item string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != item {
			out = append(out, v)
		}
	}
	return out
}
