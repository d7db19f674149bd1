package integration

import (
	"fmt"
	"net/http"
	"testing"

	"monetra/internal/models"
)

func TestCategoryFlow_Lifecycle(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "categories@test.com", "password123")

	// Create two categories
	groceriesID := app.createCategory(t, token, "Groceries")
	app.createCategory(t, token, "Transport")

	// Duplicate name (case-insensitive) is rejected
	rec := app.request("POST", "/api/v1/categories", `{"name":"groceries"}`, token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate category, got %d: %s", rec.Code, rec.Body.String())
	}

	// List returns both, sorted by name
	rec = app.request("GET", "/api/v1/categories", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(data))
	}
	first := data[0].(map[string]interface{})
	if first["name"] != "Groceries" {
		t.Errorf("expected Groceries first, got %v", first["name"])
	}

	// Rename to a different case of the same name is allowed
	rec = app.request("PUT", "/api/v1/categories/"+groceriesID, `{"name":"GROCERIES"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("rename failed: %d %s", rec.Code, rec.Body.String())
	}

	// Rename onto another category's name is rejected
	rec = app.request("PUT", "/api/v1/categories/"+groceriesID, `{"name":"Transport"}`, token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for name collision, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCategoryFlow_DeleteCascadesTransactions(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "cascade@test.com", "password123")

	categoryID := app.createCategory(t, token, "Dining")
	txID := app.createTransaction(t, token, fmt.Sprintf(
		`{"type":"expense","amount":25,"currency":"USD","date":"2025-06-10T00:00:00Z","category_id":%q}`, categoryID))

	// Uncategorized expense survives the cascade
	survivorID := app.createTransaction(t, token,
		`{"type":"expense","amount":10,"currency":"USD","date":"2025-06-11T00:00:00Z"}`)

	rec := app.request("DELETE", "/api/v1/categories/"+categoryID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/transactions/"+txID, "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected cascaded transaction gone, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/transactions/"+survivorID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected uncategorized transaction to survive, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCategoryFlow_OrphanCleanup(t *testing.T) {
	app := setupApp(t)
	token, _, userID := app.registerUser(t, "orphans@test.com", "password123")

	categoryID := app.createCategory(t, token, "Ghost")
	orphanID := app.createTransaction(t, token, fmt.Sprintf(
		`{"type":"expense","amount":40,"currency":"USD","date":"2025-06-12T00:00:00Z","category_id":%q}`, categoryID))
	keptID := app.createTransaction(t, token,
		`{"type":"expense","amount":15,"currency":"USD","date":"2025-06-13T00:00:00Z"}`)

	// Soft-delete the category directly, bypassing the API's cascade,
	// to simulate a historical delete that left transactions behind.
	if err := app.DB.Where("id = ?", categoryID).Delete(&models.ExpenseCategory{}).Error; err != nil {
		t.Fatalf("failed to forge orphan: %v", err)
	}

	body := fmt.Sprintf(`{"user_id":%q}`, userID)
	rec := app.requestWithKey("POST", "/api/v1/categories/cleanup", body, maintenanceKey)
	if rec.Code != http.StatusOK {
		t.Fatalf("cleanup failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["removed"].(float64) != 1 {
		t.Errorf("expected 1 orphan removed, got %v", result["removed"])
	}

	rec = app.request("GET", "/api/v1/transactions/"+orphanID, "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected orphan removed, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/v1/transactions/"+keptID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected uncategorized transaction untouched, got %d: %s", rec.Code, rec.Body.String())
	}

	// Second run is a no-op
	rec = app.requestWithKey("POST", "/api/v1/categories/cleanup", body, maintenanceKey)
	if rec.Code != http.StatusOK {
		t.Fatalf("second cleanup failed: %d %s", rec.Code, rec.Body.String())
	}
	if removed := parseJSON(t, rec)["removed"].(float64); removed != 0 {
		t.Errorf("expected no orphans on second run, got %v", removed)
	}
}
