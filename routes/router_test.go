package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"kartoyunu.app/configs"
	"kartoyunu.app/configs/configslog"
	"kartoyunu.app/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	configslog.InitLogger(false)
	os.Exit(m.Run())
}

// newTestApp gerçek router'ı in-memory SQLite üzerinde ayağa kaldırır.
// Handler'lar, servisler ve repository'ler testte de üretimdeki gibi kurulur.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Initialize(db, true, false); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	cfg := &configs.Config{
		AppName:     "Kart Oyunu API (test)",
		CORSOrigins: []string{"http://localhost:5173"},
		StaticDir:   t.TempDir(),
	}

	app := fiber.New()
	SetupRoutes(app, db, cfg)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string, wantStatus int) map[string]interface{} {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: expected %d, got %d", path, wantStatus, resp.StatusCode)
	}
	defer resp.Body.Close()
	var m map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("GET %s: decode body failed: %v", path, err)
	}
	return m
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}, wantStatus int) map[string]interface{} {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("POST %s: expected %d, got %d", path, wantStatus, resp.StatusCode)
	}
	defer resp.Body.Close()
	var m map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("POST %s: decode body failed: %v", path, err)
	}
	return m
}

func TestScenario_CardTypeAndCardLifecycle(t *testing.T) {
	app := newTestApp(t)

	// Boş durumda liste zarfları [] ve total 0 döner
	empty := getJSON(t, app, "/api/cardtypes", http.StatusOK)
	if empty["total"] != float64(0) {
		t.Fatalf("expected empty catalog, got %v", empty)
	}
	if _, ok := empty["card_types"].([]interface{}); !ok {
		t.Fatalf("expected card_types to marshal as array, got %v", empty["card_types"])
	}

	// Kart türü oluştur; yanıt üretilmiş id içermeli
	created := postJSON(t, app, "/api/cardtypes/create", map[string]interface{}{
		"name":        "Elemental",
		"description": "Fire and ice beings",
	}, http.StatusOK)
	typeID, ok := created["id"].(float64)
	if !ok || typeID == 0 {
		t.Fatalf("expected generated card type id, got %v", created["id"])
	}

	// get_by_id aynı alanları ve boş kart listesini döndürür
	detail := getJSON(t, app, "/api/cardtypes/1", http.StatusOK)
	if detail["name"] != "Elemental" || detail["description"] != "Fire and ice beings" {
		t.Fatalf("card type fields mismatch: %v", detail)
	}
	if cards, ok := detail["cards"].([]interface{}); !ok || len(cards) != 0 {
		t.Fatalf("expected empty cards list on fresh type, got %v", detail["cards"])
	}

	// Kart oluştur; iç içe card_type Elemental olmalı
	cardResp := postJSON(t, app, "/api/cards/create", map[string]interface{}{
		"name":         "Flame Imp",
		"description":  "A small fiery nuisance",
		"mana_price":   2,
		"hp":           30,
		"attack":       40,
		"card_type_id": int(typeID),
	}, http.StatusOK)
	nested, ok := cardResp["card_type"].(map[string]interface{})
	if !ok || nested["name"] != "Elemental" {
		t.Fatalf("expected nested Elemental card type, got %v", cardResp["card_type"])
	}
	if cardResp["mana_price"] != float64(2) || cardResp["hp"] != float64(30) || cardResp["attack"] != float64(40) {
		t.Fatalf("card fields mismatch: %v", cardResp)
	}

	// Tür detayı artık kartı içerir
	detail = getJSON(t, app, "/api/cardtypes/1", http.StatusOK)
	if cards, ok := detail["cards"].([]interface{}); !ok || len(cards) != 1 {
		t.Fatalf("expected 1 card on type detail, got %v", detail["cards"])
	}

	// Tür bazlı listeleme de aynı kartı döndürür
	byType := getJSON(t, app, "/api/cardtypes/1/cards", http.StatusOK)
	if byType["total"] != float64(1) {
		t.Fatalf("expected 1 card for type, got %v", byType)
	}

	// Bilinmeyen kart id'si 404 üretir, varsayılan nesne değil
	notFound := getJSON(t, app, "/api/cards/999999", http.StatusNotFound)
	if notFound["error"] == nil {
		t.Fatalf("expected error message on 404, got %v", notFound)
	}
}

func TestScenario_CreateCard_UnknownTypeIs422AndNotPersisted(t *testing.T) {
	app := newTestApp(t)

	postJSON(t, app, "/api/cards/create", map[string]interface{}{
		"name":         "Hayalet Kart",
		"description":  "Türü olmayan kart",
		"card_type_id": 777,
	}, http.StatusUnprocessableEntity)

	// Satır persist edilmemiş olmalı
	list := getJSON(t, app, "/api/cards", http.StatusOK)
	if list["total"] != float64(0) {
		t.Fatalf("expected no persisted cards, got %v", list)
	}
}

func TestScenario_CreateCard_OutOfRangeIs400AndNotPersisted(t *testing.T) {
	app := newTestApp(t)

	postJSON(t, app, "/api/cardtypes/create", map[string]interface{}{
		"name":        "Elemental",
		"description": "Fire and ice beings",
	}, http.StatusOK)

	body := postJSON(t, app, "/api/cards/create", map[string]interface{}{
		"name":         "Flame Imp",
		"description":  "A small fiery nuisance",
		"mana_price":   11,
		"hp":           500,
		"attack":       -1,
		"card_type_id": 1,
	}, http.StatusBadRequest)
	fields, ok := body["fields"].([]interface{})
	if !ok || len(fields) != 3 {
		t.Fatalf("expected 3 field errors, got %v", body["fields"])
	}

	list := getJSON(t, app, "/api/cards", http.StatusOK)
	if list["total"] != float64(0) {
		t.Fatalf("expected no persisted cards after validation failure, got %v", list)
	}
}

func TestScenario_DuplicateNamesAre409(t *testing.T) {
	app := newTestApp(t)

	payload := map[string]interface{}{
		"name":        "Elemental",
		"description": "Fire and ice beings",
	}
	postJSON(t, app, "/api/cardtypes/create", payload, http.StatusOK)
	postJSON(t, app, "/api/cardtypes/create", payload, http.StatusConflict)
}

func TestScenario_UnknownParentYieldsEmptyListNotError(t *testing.T) {
	app := newTestApp(t)

	body := getJSON(t, app, "/api/cardtypes/424242/cards", http.StatusOK)
	if body["total"] != float64(0) {
		t.Fatalf("expected empty list for unknown parent, got %v", body)
	}
	if _, ok := body["cards"].([]interface{}); !ok {
		t.Fatalf("expected cards array, got %v", body["cards"])
	}
}

func TestUnmatchedRouteIsJSON404(t *testing.T) {
	app := newTestApp(t)

	body := getJSON(t, app, "/api/yok-boyle-bir-rota", http.StatusNotFound)
	if body["error"] == nil {
		t.Fatalf("expected JSON error body on fallback 404, got %v", body)
	}
}
