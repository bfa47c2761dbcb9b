package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NibirNd/Safebite-App/models"
)

func testGemini(srv *httptest.Server) *GeminiService {
	return &GeminiService{
		client:     &http.Client{Timeout: 5 * time.Second},
		key:        "test-key",
		baseURL:    srv.URL,
		textModel:  "text-model",
		imageModel: "image-model",
	}
}

func geminiReply(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.Fatalf("encode reply: %v", err)
	}
}

func TestSystemInstructionIncludesProfileContext(t *testing.T) {
	p := NewProfile("p1", models.AuthGuest)
	p.Conditions = []string{"IBS (Irritable Bowel Syndrome)"}
	p.Allergies = []string{"Peanuts"}
	p.GeneratedAvoidanceList = []string{"Onion"}
	p.CustomAvoidanceList = []string{"Ramen"}
	p.Goals = "fewer flareups"

	instr := systemInstruction(p)
	for _, want := range []string{"IBS (Irritable Bowel Syndrome)", "Peanuts", "Onion", "Ramen", "fewer flareups"} {
		if !strings.Contains(instr, want) {
			t.Fatalf("system instruction missing %q:\n%s", want, instr)
		}
	}
}

func TestSystemInstructionDefaultsGoals(t *testing.T) {
	p := NewProfile("p1", models.AuthGuest)
	if !strings.Contains(systemInstruction(p), "General Health") {
		t.Fatalf("expected default goals in instruction")
	}
}

func TestGenerateRecommendations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "text-model") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		geminiReply(t, w, `{"avoidList":["Garlic","Onion","Wheat"]}`)
	}))
	defer srv.Close()

	recs, err := testGemini(srv).GenerateRecommendations(context.Background(), []string{"IBS"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 3 || recs[0] != "Garlic" {
		t.Fatalf("unexpected recommendations: %v", recs)
	}
}

func TestGenerateRecommendationsSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	if _, err := testGemini(srv).GenerateRecommendations(context.Background(), []string{"IBS"}, nil); err == nil {
		t.Fatalf("expected error from non-200 response")
	} else if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected api message in error, got %v", err)
	}
}

func TestGenerateRecommendationsRequiresKey(t *testing.T) {
	g := &GeminiService{client: http.DefaultClient}
	if _, err := g.GenerateRecommendations(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected error when key unset")
	}
}

func TestAnalyzeFoodTextParsesResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, `{
			"foodName":"Ramen","canEat":false,"threatLevel":"HIGH",
			"shortSummary":"Contains wheat.","detailedReasoning":"Wheat noodles.",
			"riskyIngredients":["Wheat"],
			"nutrients":[{"name":"Sodium","amount":"1800mg","riskImpact":70,"reason":"Hypertension trigger"}]
		}`)
	}))
	defer srv.Close()

	p := NewProfile("p1", models.AuthGuest)
	res, err := testGemini(srv).AnalyzeFoodText(context.Background(), p, "ramen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FoodName != "Ramen" || res.CanEat || res.ThreatLevel != models.ThreatHigh {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.Nutrients) != 1 || res.Nutrients[0].RiskImpact != 70 {
		t.Fatalf("unexpected nutrients: %+v", res.Nutrients)
	}
}

func TestAnalyzeFoodImageToleratesFencedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Contents[0].Parts[0].InlineData == nil {
			t.Errorf("expected inline image data first")
		} else if req.Contents[0].Parts[0].InlineData.Data != "QUJD" {
			t.Errorf("expected data URL header stripped, got %q", req.Contents[0].Parts[0].InlineData.Data)
		}
		geminiReply(t, w, "```json\n{\"foodName\":\"Granola Bar\",\"canEat\":true,\"threatLevel\":\"LOW\",\"shortSummary\":\"ok\",\"detailedReasoning\":\"ok\",\"riskyIngredients\":[],\"nutrients\":[]}\n```")
	}))
	defer srv.Close()

	p := NewProfile("p1", models.AuthGuest)
	res, err := testGemini(srv).AnalyzeFoodImage(context.Background(), p, "data:image/jpeg;base64,QUJD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FoodName != "Granola Bar" || !res.CanEat {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestDecodeAnalysisMalformed(t *testing.T) {
	cases := []string{
		"not json at all",
		`{"canEat":true}`, // no food name
		"",
	}
	for _, text := range cases {
		if _, err := decodeAnalysis(text); err == nil {
			t.Fatalf("expected error for %q", text)
		}
	}
}

func TestDecodeAnalysisNormalizes(t *testing.T) {
	res, err := decodeAnalysis(`{"foodName":"Tea","canEat":true,"threatLevel":"WHATEVER"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ThreatLevel != models.ThreatUnknown {
		t.Fatalf("expected unknown threat level, got %s", res.ThreatLevel)
	}
	if res.RiskyIngredients == nil || res.Nutrients == nil {
		t.Fatalf("expected empty slices, got %+v", res)
	}
}

func TestStripDataURL(t *testing.T) {
	cases := []struct{ in, want string }{
		{"data:image/jpeg;base64,QUJD", "QUJD"},
		{"QUJD", "QUJD"},
		{"QUJD,with,commas", "QUJD,with,commas"},
	}
	for _, tc := range cases {
		if got := stripDataURL(tc.in); got != tc.want {
			t.Errorf("stripDataURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
