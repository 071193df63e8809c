package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"spy-cat-agency/internal/adapters/storage/sqlstore"
	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/metrics"
	"spy-cat-agency/internal/ports/breeds"
	"spy-cat-agency/internal/router"
)

var knownBreeds = breeds.CatalogFunc(func(_ context.Context, breed string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(breed)) {
	case "siamese", "persian", "bengal":
		return true, nil
	}
	return false, nil
})

func newServer(t *testing.T, store agency.Store, m *metrics.Metrics) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Store:   store,
		Breeds:  knownBreeds,
		Metrics: m,
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_CompletedMissionLocksNotes(t *testing.T) {
	for name, store := range map[string]agency.Store{
		"memory": nil,
		"sqlite": openSQLite(t),
	} {
		t.Run(name, func(t *testing.T) {
			ts := newServer(t, store, nil)

			// 1) Alta del gato
			catID := createID(t, ts.URL, "/spycat/", map[string]any{
				"name":                "Whiskers",
				"breed":               "Siamese",
				"years_of_experience": 5,
				"salary":              50000,
			})

			// 2) Misión con un target anidado
			st, body := doReq(t, ts.URL, "POST", "/mission/", map[string]any{
				"cat_id":  catID,
				"targets": []any{map[string]any{"name": "T1", "country": "C1"}},
			})
			if st != http.StatusCreated {
				t.Fatalf("expected 201 create mission, got %d body=%s", st, string(body))
			}
			var mission struct {
				ID      int64 `json:"id"`
				Targets []struct {
					ID int64 `json:"id"`
				} `json:"targets"`
			}
			_ = json.Unmarshal(body, &mission)
			if len(mission.Targets) != 1 {
				t.Fatalf("expected nested target persisted, body=%s", string(body))
			}
			missionPath := "/mission/" + itoa(mission.ID)
			targetID := itoa(mission.Targets[0].ID)

			// 3) Mientras está abierta, se pueden escribir notas
			{
				st, body := doReq(t, ts.URL, "POST", missionPath+"/target/"+targetID+"/note/", map[string]any{"content": "seen at the docks"})
				if st != http.StatusCreated {
					t.Fatalf("expected 201 create note, got %d body=%s", st, string(body))
				}
			}

			// 4) Se marca completa
			{
				st, body := doReq(t, ts.URL, "PUT", missionPath, map[string]any{"cat_id": catID, "is_complete": true})
				if st != http.StatusOK {
					t.Fatalf("expected 200 complete mission, got %d body=%s", st, string(body))
				}
			}

			// 5) Notas bloqueadas
			{
				st, body := doReq(t, ts.URL, "POST", "/target/"+targetID+"/note/", map[string]any{"content": "too late"})
				if st != http.StatusConflict {
					t.Fatalf("expected 409 note on completed mission, got %d body=%s", st, string(body))
				}
			}
			{
				st, body := doReq(t, ts.URL, "PUT", "/note/1", map[string]any{"content": "rewrite"})
				if st != http.StatusConflict {
					t.Fatalf("expected 409 edit note on completed mission, got %d body=%s", st, string(body))
				}
			}

			// 6) No se borra con gato asignado; sí después de desasignar
			{
				st, _ := doReq(t, ts.URL, "DELETE", missionPath, nil)
				if st != http.StatusConflict {
					t.Fatalf("expected 409 delete assigned mission, got %d", st)
				}
			}
			{
				st, body := doReq(t, ts.URL, "PUT", missionPath, map[string]any{"cat_id": nil, "is_complete": true})
				if st != http.StatusOK {
					t.Fatalf("expected 200 unassign, got %d body=%s", st, string(body))
				}
			}
			{
				st, _ := doReq(t, ts.URL, "DELETE", missionPath, nil)
				if st != http.StatusOK {
					t.Fatalf("expected 200 delete mission, got %d", st)
				}
			}

			// 7) Cascada: target y nota ya no existen
			{
				st, _ := doReq(t, ts.URL, "GET", "/target/"+targetID, nil)
				if st != http.StatusNotFound {
					t.Fatalf("expected 404 target after cascade, got %d", st)
				}
				st, _ = doReq(t, ts.URL, "GET", "/note/1", nil)
				if st != http.StatusNotFound {
					t.Fatalf("expected 404 note after cascade, got %d", st)
				}
			}
		})
	}
}

func TestHTTP_Pagination(t *testing.T) {
	ts := newServer(t, nil, nil)

	for i := 0; i < 12; i++ {
		createID(t, ts.URL, "/spycat/", map[string]any{"name": "Cat " + strconv.Itoa(i), "breed": "bengal"})
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 10},
		{"?limit=0", 12},
		{"?skip=10", 2},
		{"?offset=5&limit=3", 3},
		{"?skip=-4&limit=-1", 12},
		{"?skip=50", 0},
	}
	for _, tt := range tests {
		st, body := doReq(t, ts.URL, "GET", "/spycat/"+tt.query, nil)
		if st != http.StatusOK {
			t.Fatalf("%q: expected 200, got %d body=%s", tt.query, st, string(body))
		}
		var resp struct {
			SpyCats  []map[string]any `json:"spycats"`
			AllCount int              `json:"all_count"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.SpyCats) != tt.want || resp.AllCount != 12 {
			t.Fatalf("%q: expected %d items / 12 total, got %d / %d", tt.query, tt.want, len(resp.SpyCats), resp.AllCount)
		}
	}

	st, _ := doReq(t, ts.URL, "GET", "/spycat/?skip=abc", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-integer skip, got %d", st)
	}
}

func TestHTTP_UnknownBreedRejected(t *testing.T) {
	ts := newServer(t, nil, nil)

	st, body := doReq(t, ts.URL, "POST", "/spycat/", map[string]any{"name": "Tom", "breed": "Dragon"})
	if st != http.StatusBadRequest || !strings.Contains(string(body), "invalid breed") {
		t.Fatalf("expected 400 invalid breed, got %d body=%s", st, string(body))
	}
}

func TestHTTP_NoCatalogFailsClosed(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/spycat/", map[string]any{"name": "Tom", "breed": "Siamese"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without breed catalog, got %d", st)
	}
}

func TestHTTP_Ambient(t *testing.T) {
	m := metrics.New(nil)
	ts := newServer(t, nil, m)

	{
		st, body := doReq(t, ts.URL, "GET", "/", nil)
		if st != http.StatusOK || !strings.Contains(string(body), "Welcome to the SpyCat API!") {
			t.Fatalf("expected welcome message, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/health", nil)
		if st != http.StatusOK || string(body) != "ok" {
			t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
		}
	}

	doReq(t, ts.URL, "POST", "/spycat/", map[string]any{"name": "Tom", "breed": "Persian"})

	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 metrics, got %d", st)
		}
		for _, want := range []string{
			`spycat_http_requests_total{method="POST",route="/spycat",status="201"} 1`,
			`spycat_breed_lookups_total{outcome="found"} 1`,
		} {
			if !strings.Contains(string(body), want) {
				t.Fatalf("metrics missing %q:\n%s", want, string(body))
			}
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"/mission/{missionID}"`) {
			t.Fatalf("expected swagger doc, got %d", st)
		}
	}
}

// panicStore simula un bug en la capa de datos.
type panicStore struct{}

func (panicStore) WithinTx(context.Context, func(tx agency.Tx) error) error {
	panic("store exploded")
}

func TestHTTP_PanicIsCountedAsServerError(t *testing.T) {
	m := metrics.New(nil)
	ts := newServer(t, panicStore{}, m)

	st, body := doReq(t, ts.URL, "GET", "/spycat/1", nil)
	if st != http.StatusInternalServerError || !strings.Contains(string(body), "internal error") {
		t.Fatalf("expected 500 internal error, got %d body=%s", st, string(body))
	}

	_, body = doReq(t, ts.URL, "GET", "/metrics", nil)
	want := `spycat_http_requests_total{method="GET",route="/spycat/{catID}",status="500"} 1`
	if !strings.Contains(string(body), want) {
		t.Fatalf("metrics missing %q:\n%s", want, string(body))
	}
}

func TestHTTP_RequestIDAndCORS(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Breeds:      knownBreeds,
		CORSOrigins: []string{"http://localhost:3000"},
	}))
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/spycat/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin, got %q", got)
	}

	resp, err = http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	resp.Body.Close()
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header")
	}
}

func openSQLite(t *testing.T) agency.Store {
	t.Helper()
	s, err := sqlstore.Open(context.Background(), sqlstore.DialectSQLite, sqlstore.MemoryDSN())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createID(t *testing.T, baseURL, path string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}
