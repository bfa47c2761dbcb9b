package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/NibirNd/Safebite-App/models"
)

// GeminiService talks to the generative model endpoints. It is the
// only place the process suspends: callers await a result and either
// merge it into the profile or surface the failure. A failed call
// never mutates profile state.
type GeminiService struct {
	client     *http.Client
	key        string
	baseURL    string
	textModel  string
	imageModel string
}

func NewGeminiService() *GeminiService {
	baseURL := os.Getenv("GEMINI_API_URL")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	return &GeminiService{
		client:     &http.Client{Timeout: 30 * time.Second},
		key:        os.Getenv("GEMINI_API_KEY"),
		baseURL:    baseURL,
		textModel:  "gemini-3-flash-preview",
		imageModel: "gemini-2.5-flash-image",
	}
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

// GenerateRecommendations asks the model for ingredients and food
// groups to avoid given the user's conditions and allergies. Callers
// treat any error as "no new recommendations" and save the profile
// unchanged.
func (g *GeminiService) GenerateRecommendations(ctx context.Context, conditions, allergies []string) ([]string, error) {
	prompt := fmt.Sprintf(`The user has these medical conditions: %s.
The user has these allergies: %s.

Generate a JSON object {"avoidList": [...]} listing strictly specific ingredients or food groups they should generally avoid to manage these conditions.
For example, if IBS is listed, include "Onion", "Garlic", "High Fructose Corn Syrup".
If Celiac, include "Wheat", "Barley", "Rye".
Do not include general advice, just the names of ingredients/foods.`,
		joinOrNone(conditions), joinOrNone(allergies))

	req := geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{ResponseMIMEType: "application/json"},
	}
	text, err := g.generate(ctx, g.textModel, req)
	if err != nil {
		return nil, err
	}

	var out struct {
		AvoidList []string `json:"avoidList"`
	}
	if err := json.Unmarshal([]byte(stripFences(text)), &out); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return out.AvoidList, nil
}

// AnalyzeFoodText judges a free-text food description against the
// user's restrictions.
func (g *GeminiService) AnalyzeFoodText(ctx context.Context, p *models.UserProfile, query string) (*models.AnalysisResult, error) {
	req := geminiRequest{
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: fmt.Sprintf("Analyze this food/dish for the user: %q.", query)}}}},
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemInstruction(p)}}},
		GenerationConfig:  &geminiGenerationConfig{ResponseMIMEType: "application/json"},
	}
	text, err := g.generate(ctx, g.textModel, req)
	if err != nil {
		return nil, err
	}
	return decodeAnalysis(text)
}

// AnalyzeFoodImage judges a photographed food or label. The image
// model does not accept a structured response schema, so the prompt
// asks for raw JSON and the decoder tolerates fenced output.
func (g *GeminiService) AnalyzeFoodImage(ctx context.Context, p *models.UserProfile, image string) (*models.AnalysisResult, error) {
	prompt := `Look at this image of food or a food label and analyze it based on the user's restrictions below.

Return ONLY a raw JSON object (no markdown, no backticks) with this exact structure:
{
  "foodName": "Identified Name",
  "canEat": boolean,
  "threatLevel": "LOW" | "MEDIUM" | "HIGH",
  "shortSummary": "1 sentence summary",
  "detailedReasoning": "Full explanation",
  "riskyIngredients": ["ing1", "ing2"],
  "nutrients": [
    { "name": "Nutrient Name", "amount": "Estimated Amount", "riskImpact": 0-100, "reason": "Why relevant" }
  ]
}

` + systemInstruction(p)

	req := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{
			{InlineData: &geminiInlineData{MimeType: "image/jpeg", Data: stripDataURL(image)}},
			{Text: prompt},
		}}},
	}
	text, err := g.generate(ctx, g.imageModel, req)
	if err != nil {
		return nil, err
	}
	return decodeAnalysis(text)
}

func (g *GeminiService) generate(ctx context.Context, model string, payload geminiRequest) (string, error) {
	if g.key == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.key)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("gemini api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("gemini api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}
	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}

// systemInstruction renders the profile as the clinical-dietitian
// context the analysis prompts run under. Condition-based inference is
// spelled out so the model flags triggers the user never listed
// explicitly.
func systemInstruction(p *models.UserProfile) string {
	goals := p.Goals
	if goals == "" {
		goals = "General Health"
	}
	return fmt.Sprintf(`You are an expert clinical dietitian, allergist, and gastroenterologist.

User Profile:
- Conditions: %s
- Explicit Allergies: %s
- Specific Foods to Avoid (User Diary + Inferred): %s
- Health Goals: %s

CRITICAL INSTRUCTION ON INFERENCE:
Even if a specific ingredient is not listed in "Allergies", you MUST infer restrictions based on the "Conditions".
- If "IBS": Assume sensitivity to High FODMAPs (Onion, Garlic, Wheat, High Fructose, etc.) unless told otherwise.
- If "Celiac": Strictly forbid Gluten (Wheat, Barley, Rye, Triticale, Malt).
- If "GERD": Flag common triggers like Mint, Caffeine, Spicy foods, Tomato, Chocolate.
- If "Lactose Intolerance": Flag high lactose dairy.

Your task is to analyze food items or labels and determine if they are safe for this SPECIFIC user.

Provide a "Threat Level":
- LOW: Safe to eat.
- MEDIUM: Proceed with caution (e.g., potential cross-contamination, mild trigger, or small amount of a FODMAP).
- HIGH: Do NOT eat (contains allergen, gluten for Celiac, or severe trigger).`,
		joinOrNone(p.Conditions), joinOrNone(p.Allergies), joinOrNone(AggregateAvoidances(p)), goals)
}

// decodeAnalysis parses a model reply into an AnalysisResult. A reply
// without a recognizable food name is treated as malformed so a bad
// response surfaces as a recoverable analysis failure instead of an
// empty result screen.
func decodeAnalysis(text string) (*models.AnalysisResult, error) {
	var res models.AnalysisResult
	if err := json.Unmarshal([]byte(stripFences(text)), &res); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	if res.FoodName == "" {
		return nil, fmt.Errorf("analysis response missing food name")
	}
	switch res.ThreatLevel {
	case models.ThreatLow, models.ThreatMedium, models.ThreatHigh:
	default:
		res.ThreatLevel = models.ThreatUnknown
	}
	if res.RiskyIngredients == nil {
		res.RiskyIngredients = []string{}
	}
	if res.Nutrients == nil {
		res.Nutrients = []models.NutrientRisk{}
	}
	return &res, nil
}

// stripFences removes markdown code fences that models sometimes wrap
// around JSON despite instructions not to.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// stripDataURL drops the "data:image/...;base64," header when the
// client sent a data URL instead of bare base64.
func stripDataURL(image string) string {
	if i := strings.Index(image, ","); i >= 0 && strings.HasPrefix(image, "data:") {
		return image[i+1:]
	}
	return image
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
