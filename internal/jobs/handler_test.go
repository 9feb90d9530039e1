package jobs_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hunterai-backend/internal/bootstrap"
	"hunterai-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ScrapeTimeout:   2 * time.Second,
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func postAnalyze(t *testing.T, router *gin.Engine, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/job-descriptions/analyze", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

type jobResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Company       string `json:"company"`
	Source        string `json:"source"`
	ExtractedData struct {
		RequiredSkills   []string `json:"requiredSkills"`
		Keywords         []string `json:"keywords"`
		Responsibilities []string `json:"responsibilities"`
	} `json:"extractedData"`
}

func TestAnalyzeFromTextAndGet(t *testing.T) {
	router := newTestRouter(t)

	text := "Job Title: Backend Engineer\nCompany: Initech\n" +
		"We are a remote team using Python, Docker and PostgreSQL.\n" +
		"• Design and operate backend services\n" +
		"• Review code and mentor engineers\n"
	body, _ := json.Marshal(map[string]string{"text": text})

	resp := postAnalyze(t, router, string(body))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created jobResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Title != "Backend Engineer" || created.Company != "Initech" {
		t.Errorf("fields: %q at %q", created.Title, created.Company)
	}
	if created.Source != "text" {
		t.Errorf("source: got %q", created.Source)
	}
	if len(created.ExtractedData.RequiredSkills) == 0 {
		t.Error("expected classified skills")
	}
	if len(created.ExtractedData.Responsibilities) != 2 {
		t.Errorf("responsibilities: got %v", created.ExtractedData.Responsibilities)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/job-descriptions/"+created.ID, nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respGet.Code)
	}
	var fetched jobResponse
	if err := json.NewDecoder(respGet.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.Title != created.Title {
		t.Errorf("stored title: got %q", fetched.Title)
	}
}

func TestAnalyzeScrapesServedPage(t *testing.T) {
	longDesc := strings.Repeat("Work with Kubernetes and Terraform in an agile team. ", 5)
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<h1 class="job-title">Platform Engineer</h1>
			<div class="company">Hooli</div>
			<div class="description">` + longDesc + `</div>
		</body></html>`))
	}))
	defer page.Close()

	router := newTestRouter(t)
	body, _ := json.Marshal(map[string]string{"url": page.URL})

	resp := postAnalyze(t, router, string(body))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created jobResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Source != "scraped" {
		t.Errorf("source: got %q", created.Source)
	}
	if created.Title != "Platform Engineer" || created.Company != "Hooli" {
		t.Errorf("fields: %q at %q", created.Title, created.Company)
	}
}

func TestAnalyzeFetchFailureFallsBackToText(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{
		"url":  "http://127.0.0.1:1/unreachable",
		"text": "Role: SRE\nCompany: Hooli\nOperate kubernetes clusters.",
	})

	resp := postAnalyze(t, router, string(body))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created jobResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Source != "text" {
		t.Errorf("source: got %q", created.Source)
	}
	if created.Title != "SRE" {
		t.Errorf("title: got %q", created.Title)
	}
}

func TestAnalyzeRequiresURLOrText(t *testing.T) {
	router := newTestRouter(t)

	resp := postAnalyze(t, router, `{}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestJobDescriptionGetMissing(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/job-descriptions/does-not-exist", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
