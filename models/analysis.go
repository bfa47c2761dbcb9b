package models

// ThreatLevel is the three-level rating the analysis model assigns,
// plus UNKNOWN for responses it could not judge.
type ThreatLevel string

const (
	ThreatLow     ThreatLevel = "LOW"
	ThreatMedium  ThreatLevel = "MEDIUM"
	ThreatHigh    ThreatLevel = "HIGH"
	ThreatUnknown ThreatLevel = "UNKNOWN"
)

// NutrientRisk is one nutrient's contribution to the overall risk of a
// food, as estimated by the analysis model.
type NutrientRisk struct {
	Name       string `json:"name"`
	Amount     string `json:"amount"`
	RiskImpact int    `json:"riskImpact"` // 0–100
	Reason     string `json:"reason"`
}

// AnalysisResult is the structured judgement returned by the food
// analysis model for a text query or an image. The core only consumes
// it; a failed analysis never mutates the profile.
type AnalysisResult struct {
	FoodName          string         `json:"foodName"`
	CanEat            bool           `json:"canEat"`
	ThreatLevel       ThreatLevel    `json:"threatLevel"`
	ShortSummary      string         `json:"shortSummary"`
	DetailedReasoning string         `json:"detailedReasoning"`
	RiskyIngredients  []string       `json:"riskyIngredients"`
	Nutrients         []NutrientRisk `json:"nutrients"`
}
