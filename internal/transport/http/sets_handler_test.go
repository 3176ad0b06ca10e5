package http

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jeopardy-board-service/internal/app"
	"jeopardy-board-service/internal/catalog"
	"jeopardy-board-service/internal/domain"
	"jeopardy-board-service/internal/infra/memory"
)

func newSetsServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := NewSetsHandler(app.NewSetService(memory.NewSetRepository()))
	mux := http.NewServeMux()
	handler.Register(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func saveCatalogSet(t *testing.T, server *httptest.Server, name string) domain.QuestionSet {
	t.Helper()
	body, err := json.Marshal(saveRequest{
		Name:      name,
		Questions: catalog.Default(rand.New(rand.NewSource(1))),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(server.URL+"/sets", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var set domain.QuestionSet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return set
}

func TestSetsSaveAndList(t *testing.T) {
	server := newSetsServer(t)

	saved := saveCatalogSet(t, server, "History Night")
	if saved.ID == "" || saved.Name != "History Night" {
		t.Fatalf("unexpected saved set: %+v", saved)
	}

	resp, err := http.Get(server.URL + "/sets")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var sets []domain.QuestionSet
	if err := json.NewDecoder(resp.Body).Decode(&sets); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sets) != 1 || sets[0].ID != saved.ID {
		t.Fatalf("expected the saved set back, got %+v", sets)
	}
}

func TestSetsSaveRequiresName(t *testing.T) {
	server := newSetsServer(t)
	resp, err := http.Post(server.URL+"/sets", "application/json", strings.NewReader(`{"questions":{}}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSetsExportImportRoundTrip(t *testing.T) {
	server := newSetsServer(t)
	saved := saveCatalogSet(t, server, "Export Me")

	resp, err := http.Get(server.URL + "/sets/" + saved.ID + "/export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var exported bytes.Buffer
	if _, err := exported.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read export: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(exported.String(), `"version": "1.0"`) {
		t.Fatalf("export missing version marker: %s", exported.String())
	}

	resp, err = http.Post(server.URL+"/sets/import", "application/json", &exported)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var imported domain.QuestionSet
	if err := json.NewDecoder(resp.Body).Decode(&imported); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if imported.ID == saved.ID {
		t.Fatalf("import must mint a new id")
	}
	if imported.Name != "Export Me (Imported)" {
		t.Fatalf("unexpected imported name %q", imported.Name)
	}
}

func TestSetsImportRejectsMalformedPayload(t *testing.T) {
	server := newSetsServer(t)
	resp, err := http.Post(server.URL+"/sets/import", "application/json", strings.NewReader(`{"name":"x"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSetsDelete(t *testing.T) {
	server := newSetsServer(t)
	saved := saveCatalogSet(t, server, "Delete Me")

	req, _ := http.NewRequest(http.MethodDelete, server.URL+"/sets/"+saved.ID, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	defer resp.Body.Close()
	var result map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result["deleted"] {
		t.Fatalf("expected deleted=true")
	}

	req, _ = http.NewRequest(http.MethodDelete, server.URL+"/sets/"+saved.ID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete again: %v", err)
	}
	defer resp.Body.Close()
	result = nil
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result["deleted"] {
		t.Fatalf("expected deleted=false on the second delete")
	}
}
