package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"expensely/internal/services"
)

type mockSummaryService struct {
	getSummaryFn func(userID string, from, to time.Time) (*services.Summary, error)
}

func (m *mockSummaryService) GetSummary(userID string, from, to time.Time) (*services.Summary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(userID, from, to)
	}
	return &services.Summary{From: from, To: to, Categories: []services.CategoryTotal{}}, nil
}

var _ services.SummaryServicer = (*mockSummaryService)(nil)

func setupSummaryRouter(handler *SummaryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/summary", injectUserID(testUserID), handler.GetSummary)
	return r
}

func TestSummaryHandler_GetSummary(t *testing.T) {
	t.Run("returns 200 with category totals", func(t *testing.T) {
		svc := &mockSummaryService{
			getSummaryFn: func(_ string, from, to time.Time) (*services.Summary, error) {
				return &services.Summary{
					From:  from,
					To:    to,
					Total: 7500,
					Categories: []services.CategoryTotal{
						{Type: "groceries", Total: 5000, Count: 2},
						{Type: "transport", Total: 2500, Count: 1},
					},
				}, nil
			},
		}
		handler := NewSummaryHandler(svc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary?from=2025-03-01T00:00:00Z&to=2025-04-01T00:00:00Z", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		summary := result["summary"].(map[string]interface{})
		if summary["total"].(float64) != 7500 {
			t.Errorf("expected total 7500, got %v", summary["total"])
		}
		categories := summary["categories"].([]interface{})
		if len(categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(categories))
		}
	})

	t.Run("returns 400 on missing from", func(t *testing.T) {
		handler := NewSummaryHandler(&mockSummaryService{})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary?to=2025-04-01T00:00:00Z", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 when from is not before to", func(t *testing.T) {
		handler := NewSummaryHandler(&mockSummaryService{})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary?from=2025-04-01T00:00:00Z&to=2025-03-01T00:00:00Z", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
