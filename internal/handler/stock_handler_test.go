package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/repository"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/service"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/testutil"
)

func setupAPITest(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	bomSvc := service.NewBOMService(repos.Project)
	stockSvc := service.NewStockService(repos.StockEvent)
	thresholdSvc := service.NewThresholdService(repos.Threshold, nil)
	shortageSvc := service.NewShortageService(repos.Project, repos.StockEvent, repos.Threshold)

	projectHandler := NewProjectHandler(bomSvc)
	stockHandler := NewStockHandler(stockSvc)
	thresholdHandler := NewThresholdHandler(thresholdSvc)
	shortageHandler := NewShortageHandler(shortageSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	projects := api.Group("/projects")
	projects.POST("", projectHandler.Create)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.DELETE("/:id", projectHandler.Delete)
	projects.GET("/:id/bom", projectHandler.MaterialLines)
	projects.PUT("/:id/custom-lines", projectHandler.ReplaceCustomLines)

	stockGroup := api.Group("/stock")
	stockGroup.POST("/events", stockHandler.RecordEvent)
	stockGroup.GET("/events", stockHandler.ListEvents)
	stockGroup.DELETE("/events/:id", stockHandler.DeleteEvent)
	stockGroup.GET("/balances", stockHandler.Balances)

	api.GET("/thresholds", thresholdHandler.Get)
	api.PUT("/thresholds", thresholdHandler.Update)
	api.PUT("/thresholds/items", thresholdHandler.UpsertItem)

	api.GET("/requirements", shortageHandler.Requirements)
	api.GET("/shortages", shortageHandler.List)

	return router
}

func createProject(t *testing.T, router *gin.Engine, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/projects", body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func recordEvent(t *testing.T, router *gin.Engine, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/stock/events", body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func TestStockEventsRequireAuth(t *testing.T) {
	router := setupAPITest(t)

	w := testutil.DoRequest(router, "GET", "/api/v1/stock/events", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}
}

func TestStockEventRecordAndBalance(t *testing.T) {
	router := setupAPITest(t)
	token := testutil.TestToken()

	recordEvent(t, router, token, map[string]interface{}{
		"item": "Wires", "type": "DC", "direction": "IN", "quantity": 10, "rate": "85.50",
	})
	recordEvent(t, router, token, map[string]interface{}{
		"item": " Wires ", "type": " DC ", "brand": "standard", "direction": "OUT", "quantity": 4,
	})

	w := testutil.DoRequest(router, "GET", "/api/v1/stock/balances", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	rows := resp["data"].([]interface{})
	if len(rows) != 1 {
		t.Fatalf("Expected 1 balance row after normalization, got %d", len(rows))
	}
	row := rows[0].(map[string]interface{})
	if row["quantity"].(float64) != 6 {
		t.Errorf("Expected balance 6, got %v", row["quantity"])
	}
	if row["brand"] != "standard" {
		t.Errorf("Expected brand 'standard', got %v", row["brand"])
	}
}

func TestStockEventValidation(t *testing.T) {
	router := setupAPITest(t)
	token := testutil.TestToken()

	// direction outside IN/OUT
	w := testutil.DoRequest(router, "POST", "/api/v1/stock/events", map[string]interface{}{
		"item": "Wires", "direction": "ADJUST", "quantity": 5,
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad direction, got %d", w.Code)
	}

	// non-positive quantity
	w = testutil.DoRequest(router, "POST", "/api/v1/stock/events", map[string]interface{}{
		"item": "Wires", "direction": "IN", "quantity": 0,
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for zero quantity, got %d", w.Code)
	}
}

func TestStockEventDeleteChangesBalance(t *testing.T) {
	router := setupAPITest(t)
	token := testutil.TestToken()

	recordEvent(t, router, token, map[string]interface{}{
		"item": "MC4 Connector", "type": "Pair", "direction": "IN", "quantity": 20,
	})
	out := recordEvent(t, router, token, map[string]interface{}{
		"item": "MC4 Connector", "type": "Pair", "direction": "OUT", "quantity": 8,
	})

	w := testutil.DoRequest(router, "DELETE", "/api/v1/stock/events/"+out["id"].(string), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/stock/balances", nil, token)
	resp := testutil.ParseResponse(w)
	rows := resp["data"].([]interface{})
	if len(rows) != 1 {
		t.Fatalf("Expected 1 balance row, got %d", len(rows))
	}
	if qty := rows[0].(map[string]interface{})["quantity"].(float64); qty != 20 {
		t.Errorf("Expected balance 20 after deleting the OUT event, got %v", qty)
	}
}

func TestProjectBOMEndpoint(t *testing.T) {
	router := setupAPITest(t)
	token := testutil.TestToken()

	proj := createProject(t, router, token, map[string]interface{}{
		"customer": "Sharma Residence", "capacity_kw": 5.5, "panel_wattage": 550,
		"phase": "SINGLE", "leg_count": 8,
	})

	w := testutil.DoRequest(router, "GET", "/api/v1/projects/"+proj["id"].(string)+"/bom", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	lines := resp["data"].([]interface{})
	if len(lines) != 39 {
		t.Fatalf("Expected 39 material lines, got %d", len(lines))
	}
	first := lines[0].(map[string]interface{})
	if first["item"] != "Solar Panel" {
		t.Errorf("Expected first line 'Solar Panel', got %v", first["item"])
	}
	if first["quantity"].(float64) != 10 {
		t.Errorf("Expected 10 panels, got %v", first["quantity"])
	}
}

func TestShortageFlow(t *testing.T) {
	router := setupAPITest(t)
	token := testutil.TestToken()

	createProject(t, router, token, map[string]interface{}{
		"customer": "Sharma Residence", "capacity_kw": 5.5, "panel_wattage": 550,
		"phase": "SINGLE", "leg_count": 8,
	})
	// 6 panels on hand against a requirement of 10
	recordEvent(t, router, token, map[string]interface{}{
		"item": "Solar Panel", "type": "550 Wp Mono PERC Half-Cut", "direction": "IN", "quantity": 6,
	})
	// ledger-only item just above zero
	recordEvent(t, router, token, map[string]interface{}{
		"item": "Cable Tie", "type": "300mm", "direction": "IN", "quantity": 1,
	})

	w := testutil.DoRequest(router, "PUT", "/api/v1/thresholds", map[string]interface{}{
		"global": map[string]interface{}{"critical": 2, "low": 5},
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/shortages", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	records := resp["data"].([]interface{})

	var panel, tie map[string]interface{}
	for _, r := range records {
		rec := r.(map[string]interface{})
		key := rec["key"].(map[string]interface{})
		switch key["item"] {
		case "Solar Panel":
			panel = rec
		case "Cable Tie":
			tie = rec
		}
	}
	if panel == nil {
		t.Fatal("Expected a shortage record for Solar Panel")
	}
	if panel["status"] != "insufficient" {
		t.Errorf("Expected status 'insufficient', got %v", panel["status"])
	}
	if panel["shortfall"].(float64) != 4 {
		t.Errorf("Expected shortfall 4, got %v", panel["shortfall"])
	}
	if tie == nil {
		t.Fatal("Expected a shortage record for Cable Tie")
	}
	if tie["status"] != "critical" {
		t.Errorf("Expected status 'critical', got %v", tie["status"])
	}
	if tie["shortfall"] != "" {
		t.Errorf("Expected blank shortfall for ledger-only record, got %v", tie["shortfall"])
	}
}

func TestThresholdOrderRejected(t *testing.T) {
	router := setupAPITest(t)
	token := testutil.TestToken()

	w := testutil.DoRequest(router, "PUT", "/api/v1/thresholds", map[string]interface{}{
		"global": map[string]interface{}{"critical": 10, "low": 5},
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for critical >= low, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "PUT", "/api/v1/thresholds/items", map[string]interface{}{
		"item": "Solar Panel", "critical": 5, "low": 5,
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for equal pair, got %d", w.Code)
	}

	// a valid override round trips
	w = testutil.DoRequest(router, "PUT", "/api/v1/thresholds/items", map[string]interface{}{
		"item": "Solar Panel", "critical": 10, "low": 25,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/thresholds", nil, token)
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	overrides := data["overrides"].(map[string]interface{})
	pair := overrides["Solar Panel"].(map[string]interface{})
	if pair["critical"].(float64) != 10 || pair["low"].(float64) != 25 {
		t.Errorf("Override did not round trip: %v", pair)
	}
}
