package models

// Pick-lists served to the UI for autocomplete during onboarding and
// medical-profile editing. Users can always add free-text entries on
// top of these.

var MedicalConditions = []string{
	"Celiac Disease",
	"IBS (Irritable Bowel Syndrome)",
	"Lactose Intolerance",
	"Diabetes Type 1",
	"Diabetes Type 2",
	"GERD (Acid Reflux)",
	"Crohn's Disease",
	"Ulcerative Colitis",
	"Gastritis",
	"Histamine Intolerance",
	"Fructose Malabsorption",
	"Eosinophilic Esophagitis",
	"Gout",
	"Hypertension",
	"Kidney Disease",
	"Pancreatitis",
	"Diverticulitis",
	"Hashimoto's Thyroiditis",
	"PKU (Phenylketonuria)",
	"Alpha-gal Syndrome",
}

var CommonAllergens = []string{
	"Peanuts", "Tree Nuts", "Milk/Dairy", "Eggs", "Shellfish", "Fish", "Soy", "Wheat", "Sesame",
	"Gluten", "Mustard", "Celery", "Sulfites", "Lupin", "Molluscs", "Corn", "Nightshades",
	"Garlic", "Onion", "FODMAPs", "Red Meat", "Pork", "Alcohol", "Caffeine", "Chocolate",
	"Strawberries", "Kiwi", "Citrus", "Latex (Food Cross-React)", "Artificial Sweeteners (Aspartame)",
	"MSG", "Food Dyes (Red 40)", "Yeast",
}
