package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"xmasGiftAI/business/catalog"
	"xmasGiftAI/business/suggest"
	"xmasGiftAI/domain"
	"xmasGiftAI/internal/middleware"
	"xmasGiftAI/internal/repository/memory"
	"xmasGiftAI/internal/rest"

	"github.com/labstack/echo/v4"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	repo, err := memory.NewDealRepository(memory.SeedDeals())
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler

	SetupHealthRoutes(e, rest.NewHealthHandler("Xmas Gift AI API", "1.0.0"))
	api := e.Group("/api/v1")
	SetupDealRoutes(api, rest.NewDealHandler(catalog.NewCatalogService(repo), time.Second))
	SetupSuggestRoutes(api, rest.NewSuggestHandler(suggest.NewService(repo, nil), time.Second))

	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body rest.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Status != "healthy" || body.Version != "1.0.0" {
		t.Errorf("unexpected health body %+v", body)
	}

	if rec := do(e, http.MethodGet, "/", ""); rec.Code != http.StatusOK {
		t.Errorf("root: expected 200, got %d", rec.Code)
	}
}

func TestDealsEndpoints(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"default page", "/api/v1/deals", http.StatusOK},
		{"explicit page", "/api/v1/deals?skip=5&limit=3", http.StatusOK},
		{"limit too large", "/api/v1/deals?limit=101", http.StatusBadRequest},
		{"negative skip", "/api/v1/deals?skip=-1", http.StatusBadRequest},
		{"non numeric limit", "/api/v1/deals?limit=abc", http.StatusBadRequest},
		{"deal by id", "/api/v1/deals/1", http.StatusOK},
		{"missing deal", "/api/v1/deals/999", http.StatusNotFound},
		{"bad deal id", "/api/v1/deals/abc", http.StatusBadRequest},
		{"category", "/api/v1/deals/category/toys", http.StatusOK},
		{"unknown category", "/api/v1/deals/category/books", http.StatusBadRequest},
		{"search", "/api/v1/deals/search?q=lampada", http.StatusOK},
		{"blank search", "/api/v1/deals/search?q=%20%20", http.StatusBadRequest},
		{"missing search", "/api/v1/deals/search", http.StatusBadRequest},
		{"categories", "/api/v1/categories", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodGet, tt.target, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestDealsPagination(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/deals?skip=5&limit=3", "")

	var body struct {
		Deals []domain.Deal `json:"deals"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Deals) != 3 || body.Deals[0].ID != 6 {
		t.Fatalf("unexpected page %+v", body.Deals)
	}
}

func TestSearchResponse(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/deals/search?q=Zaino", "")

	var body rest.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Query != "Zaino" || body.TotalResults != 1 || len(body.Deals) != 1 {
		t.Fatalf("unexpected search response %+v", body)
	}
}

func TestSuggestEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/deals/ai-suggest",
		`{"recipient_description":"cerco cuffie per un gamer","budget_min":0,"budget_max":100,"max_results":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body domain.SuggestionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.SuggestedDeals) == 0 || len(body.SuggestedDeals) > 3 {
		t.Fatalf("expected 1..3 deals, got %d", len(body.SuggestedDeals))
	}
	if body.SuggestedDeals[0].Category != domain.CategoryElectronics {
		t.Errorf("expected electronics first, got %s", body.SuggestedDeals[0].Category)
	}
	for _, d := range body.SuggestedDeals {
		if d.Price > 100 {
			t.Errorf("deal %d over budget: %v", d.ID, d.Price)
		}
	}
}

func TestSuggestEndpoint_EmptyListIsArray(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/deals/ai-suggest", `{"recipient_description":"qualcosa di bello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"suggested_deals":[]`) {
		t.Fatalf("expected empty array in body, got %s", rec.Body.String())
	}
}

func TestSuggestEndpoint_Rejections(t *testing.T) {
	e := newTestServer(t)

	for _, body := range []string{
		`{"recipient_description":"un amico gamer","budget_min":200,"budget_max":50}`,
		`{"recipient_description":"un amico gamer","max_results":0}`,
		`{"recipient_description":"un amico gamer","max_results":26}`,
	} {
		rec := do(e, http.MethodPost, "/api/v1/deals/ai-suggest", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestExplainEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/deals/ai-suggest/explain", `{"recipient_description":"una ragazza che ama il makeup"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "matched_keywords") {
		t.Errorf("expected scoring details in body, got %s", rec.Body.String())
	}
}

func TestUnknownRouteUsesErrorShape(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message"`) {
		t.Errorf("expected message field, got %s", rec.Body.String())
	}
}
