package web_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/rweb"

	"staysearch/fixtures"
	"staysearch/models"
	"staysearch/sessions"
	"staysearch/web"
)

type uiTestServer struct {
	baseURL string
	client  *http.Client
	session string
}

func setupUITestServer(t *testing.T) *uiTestServer {
	t.Helper()

	cfg := models.DefaultConfig()
	cfg.RateLimit = 0
	app := web.NewApp(*cfg, models.NewStaticProvider(fixtures.ExtendedListings()), sessions.NewMemoryStore(time.Hour))

	readyChan := make(chan struct{}, 1)
	srv := web.NewServer(rweb.ServerOptions{
		ReadyChan: readyChan,
		Address:   "localhost:", // Dynamic port assignment
	}, app)

	go func() {
		_ = srv.Run()
	}()
	<-readyChan

	return &uiTestServer{
		baseURL: fmt.Sprintf("http://localhost:%s", srv.GetListenPort()),
		client: &http.Client{
			Timeout: 5 * time.Second,
			// /ui/* answers plain posts with a redirect that tests inspect
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		session: uuid.New().String(),
	}
}

// request sends one request in the test's session and returns status, headers and body
func (s *uiTestServer) request(t *testing.T, method, path string, form url.Values, htmx bool) (int, http.Header, string) {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, s.baseURL+path, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	req.AddCookie(&http.Cookie{Name: "staysearch_session", Value: s.session})

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, resp.Header, string(raw)
}

// sessionState reads the session's UI state through the JSON API
func (s *uiTestServer) sessionState(t *testing.T) map[string]interface{} {
	t.Helper()
	_, _, body := s.request(t, http.MethodGet, "/api/v1/state", nil, false)
	var result struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("failed to decode state %q: %v", body, err)
	}
	return result.Data
}

func TestHomePage(t *testing.T) {
	server := setupUITestServer(t)

	status, _, body := server.request(t, http.MethodGet, "/?view=grid&filters=cabins,bogus&location=Tahoe", nil, false)
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}

	tests := []struct {
		name     string
		expected string
	}{
		{"doctype", "<!DOCTYPE html>"},
		{"home region", `id="home"`},
		{"hx script", "/static/js/hx.js"},
		{"location banner", "Showing results for: "},
		{"grid cards", "property-card"},
		{"load more", "Load more properties"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(body, tt.expected) {
				t.Errorf("expected page to contain %q", tt.expected)
			}
		})
	}

	st := server.sessionState(t)
	if st["view_mode"] != "grid" {
		t.Errorf("expected initial view grid, got %v", st["view_mode"])
	}
	ids := st["filters"].(map[string]interface{})["ids"].([]interface{})
	if len(ids) != 1 || ids[0] != "cabins" {
		t.Errorf("expected only the cabins filter, got %v", ids)
	}
}

func TestUIActionResponses(t *testing.T) {
	server := setupUITestServer(t)

	t.Run("htmx gets the home fragment", func(t *testing.T) {
		status, _, body := server.request(t, http.MethodPost, "/ui/view/map", url.Values{}, true)
		if status != http.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}
		if !strings.Contains(body, `id="home"`) {
			t.Error("expected the home region")
		}
		if strings.Contains(body, "<html") {
			t.Error("fragment should not contain the page shell")
		}
	})

	t.Run("header name case does not matter", func(t *testing.T) {
		for _, name := range []string{"hx-request", "HX-REQUEST"} {
			req, err := http.NewRequest(http.MethodPost, server.baseURL+"/ui/view/split", strings.NewReader(""))
			if err != nil {
				t.Fatalf("failed to build request: %v", err)
			}
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header[name] = []string{"true"} // sent as written, not canonicalized
			req.AddCookie(&http.Cookie{Name: "staysearch_session", Value: server.session})

			resp, err := server.client.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Errorf("%s: expected status 200, got %d", name, resp.StatusCode)
			}
		}
	})

	t.Run("plain post redirects home", func(t *testing.T) {
		status, header, _ := server.request(t, http.MethodPost, "/ui/view/grid", url.Values{}, false)
		if status != http.StatusSeeOther {
			t.Fatalf("expected status 303, got %d", status)
		}
		if header.Get("Location") != "/" {
			t.Errorf("expected redirect to /, got %q", header.Get("Location"))
		}
		if server.sessionState(t)["view_mode"] != "grid" {
			t.Error("expected the view change to be saved")
		}
	})

	rejected := []struct {
		name   string
		path   string
		form   url.Values
		status int
	}{
		{"unknown view mode", "/ui/view/carousel", url.Values{}, http.StatusBadRequest},
		{"unknown display mode", "/ui/grid/display/table", url.Values{}, http.StatusBadRequest},
		{"unknown filter", "/ui/filters/volcanoes/toggle", url.Values{}, http.StatusNotFound},
		{"unknown listing favorite", "/ui/favorites/999/toggle", url.Values{}, http.StatusNotFound},
		{"unknown marker", "/ui/map/markers/999/click", url.Values{}, http.StatusNotFound},
		{"price outside bounds", "/ui/sheet/price", url.Values{"min": {"0"}, "max": {"2000"}}, http.StatusBadRequest},
		{"price not a number", "/ui/sheet/price", url.Values{"min": {"cheap"}, "max": {"500"}}, http.StatusBadRequest},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			status, _, body := server.request(t, http.MethodPost, tt.path, tt.form, true)
			if status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, status)
			}
			if !strings.Contains(body, `role="alert"`) {
				t.Error("expected the rejection message to render")
			}
		})
	}
}

func TestUISearch(t *testing.T) {
	server := setupUITestServer(t)
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	later := time.Now().UTC().AddDate(0, 0, 4).Format("2006-01-02")

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		form := url.Values{"location": {"Malibu"}, "check_in": {later}, "check_out": {tomorrow}, "guests": {"2"}}
		status, _, body := server.request(t, http.MethodPost, "/ui/search", form, true)
		if status != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", status)
		}
		if !strings.Contains(body, "Check-out") {
			t.Error("expected the check-out message")
		}
		if server.sessionState(t)["search_location"] == "Malibu" {
			t.Error("a rejected search must not be submitted")
		}
	})

	t.Run("guests out of range is rejected", func(t *testing.T) {
		form := url.Values{"location": {"Malibu"}, "guests": {"12"}}
		status, _, _ := server.request(t, http.MethodPost, "/ui/search", form, true)
		if status != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", status)
		}
	})

	t.Run("failed plain post re-renders the page", func(t *testing.T) {
		form := url.Values{"guests": {"many"}}
		status, _, body := server.request(t, http.MethodPost, "/ui/search", form, false)
		if status != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", status)
		}
		if !strings.Contains(body, "<!DOCTYPE html>") {
			t.Error("expected the full page")
		}
	})

	t.Run("valid search updates the banner", func(t *testing.T) {
		form := url.Values{"location": {"Malibu"}, "check_in": {tomorrow}, "check_out": {later}, "guests": {"2"}}
		status, _, body := server.request(t, http.MethodPost, "/ui/search", form, true)
		if status != http.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}
		if !strings.Contains(body, "Malibu") {
			t.Error("expected the searched location in the banner")
		}
		search := server.sessionState(t)["search"].(map[string]interface{})
		if search["guests"].(float64) != 2 {
			t.Errorf("expected 2 guests, got %v", search["guests"])
		}
	})
}

func TestUIStatePersists(t *testing.T) {
	server := setupUITestServer(t)

	server.request(t, http.MethodPost, "/ui/favorites/3/toggle", url.Values{}, true)
	server.request(t, http.MethodPost, "/ui/filters/beachfront/toggle", url.Values{}, true)
	server.request(t, http.MethodPost, "/ui/map/markers/2/click", url.Values{}, true)
	server.request(t, http.MethodPost, "/ui/map/zoom/in", url.Values{}, true)
	server.request(t, http.MethodPost, "/ui/sidebar/toggle", url.Values{}, true)
	server.request(t, http.MethodPost, "/ui/load-more", url.Values{}, true)

	st := server.sessionState(t)

	grid := st["grid"].(map[string]interface{})
	if grid["favorites"].(map[string]interface{})["3"] != true {
		t.Errorf("expected listing 3 to be a favorite, got %v", grid["favorites"])
	}
	if grid["loaded"].(float64) != 6 {
		t.Errorf("expected 6 loaded listings, got %v", grid["loaded"])
	}
	if st["selected_listing_id"] != "2" {
		t.Errorf("expected listing 2 selected, got %v", st["selected_listing_id"])
	}
	mp := st["map"].(map[string]interface{})
	if mp["zoom"].(float64) != 14 || mp["open_card"] != "2" {
		t.Errorf("unexpected map state %v", mp)
	}
	if st["sidebar_open"] != true {
		t.Error("expected the sidebar open")
	}

	// Sessions are isolated by cookie
	other := *server
	other.session = uuid.New().String()
	if other.sessionState(t)["selected_listing_id"] != "" {
		t.Error("expected a fresh session for a new cookie")
	}
}

func TestGridPartialAndStatic(t *testing.T) {
	server := setupUITestServer(t)

	status, _, body := server.request(t, http.MethodGet, "/partials/grid", nil, true)
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if !strings.Contains(body, `id="property-grid"`) || strings.Contains(body, `id="home"`) {
		t.Error("expected only the property grid region")
	}

	for _, path := range []string{"/static/css/app.css", "/static/js/app.js", "/static/js/hx.js", "/favicon.ico"} {
		status, _, _ := server.request(t, http.MethodGet, path, nil, false)
		if status != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, status)
		}
	}
	if status, _, _ := server.request(t, http.MethodGet, "/static/missing.css", nil, false); status != http.StatusNotFound {
		t.Errorf("expected status 404 for a missing file, got %d", status)
	}
}
