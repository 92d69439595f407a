// README: Handler tests over the built-in seed network (no DB required).
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"skyfare/internal/config"
	"skyfare/internal/http/handlers"
	"skyfare/internal/modules/pricing"
	"skyfare/internal/modules/route"
)

// buildTestRouter wires a minimal Gin engine with nil stores: the route
// handler serves the seed network and the fare engine uses a pinned jitter.
func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	routeHandler := handlers.NewRouteHandler(nil, route.NewService(nil))
	r.POST("/api/routes/search", routeHandler.Search)

	defaults := config.PricingDefaults{
		FuelPricePerLitre: 95.5,
		DefaultBurnLPerKm: 1.62,
		TaxRate:           0.18,
		FeeRate:           0.08,
		BaseFare:          1500,
		Currency:          "INR",
	}
	pricingSvc := pricing.NewService(nil, func() float64 { return 0.25 })
	quoteHandler := handlers.NewQuoteHandler(routeHandler, pricingSvc, nil, defaults)
	r.POST("/api/quotes", quoteHandler.Create)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchRoute_SeedNetwork(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodPost, "/api/routes/search", map[string]any{
		"from": "DEL", "to": "BOM", "algorithm": "dijkstra",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Route route.RouteResult `json:"route"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Route.Path) != 2 || resp.Route.Path[0] != "DEL" || resp.Route.Path[1] != "BOM" {
		t.Errorf("path = %v, want [DEL BOM]", resp.Route.Path)
	}
	if resp.Route.TotalDistanceKm < 1120 || resp.Route.TotalDistanceKm > 1160 {
		t.Errorf("total = %f, want ≈1138", resp.Route.TotalDistanceKm)
	}
}

func TestSearchRoute_Validation(t *testing.T) {
	r := buildTestRouter()

	cases := []struct {
		name string
		body map[string]any
		code int
	}{
		{"bad code length", map[string]any{"from": "DELHI", "to": "BOM"}, http.StatusBadRequest},
		{"lowercase code", map[string]any{"from": "del", "to": "BOM"}, http.StatusBadRequest},
		{"unknown algorithm", map[string]any{"from": "DEL", "to": "BOM", "algorithm": "quantum"}, http.StatusBadRequest},
		{"unknown airport", map[string]any{"from": "DEL", "to": "ZZZ"}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/routes/search", tc.body)
			if w.Code != tc.code {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tc.code, w.Body.String())
			}
		})
	}
}

func TestCreateQuote_ThreeOrderedOffers(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodPost, "/api/quotes", map[string]any{
		"from": "DEL", "to": "BOM", "passengers": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Offers []pricing.Offer `json:"offers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Offers) != 3 {
		t.Fatalf("offers = %d, want 3", len(resp.Offers))
	}
	if resp.Offers[0].Class != pricing.ClassSaver ||
		resp.Offers[1].Class != pricing.ClassStandard ||
		resp.Offers[2].Class != pricing.ClassFlex {
		t.Errorf("class order wrong: %v", resp.Offers)
	}
	for _, o := range resp.Offers {
		if o.TotalFare.Amount%10 != 0 {
			t.Errorf("%s fare %d not rounded to 10", o.Class, o.TotalFare.Amount)
		}
	}
	if !(resp.Offers[0].TotalFare.Amount < resp.Offers[1].TotalFare.Amount &&
		resp.Offers[1].TotalFare.Amount < resp.Offers[2].TotalFare.Amount) {
		t.Errorf("expected Saver < Standard < Flex, got %d %d %d",
			resp.Offers[0].TotalFare.Amount, resp.Offers[1].TotalFare.Amount, resp.Offers[2].TotalFare.Amount)
	}
}
