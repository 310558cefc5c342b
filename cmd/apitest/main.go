package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Profile is the response for /api/v1/profile and /api/v1/profile/{year}
type Profile struct {
	Year              int      `json:"year"`
	StemBranch        string   `json:"stem_branch"`
	Movement          string   `json:"movement"`
	MovementZH        string   `json:"movement_zh"`
	GoverningQiZH     string   `json:"governing_qi_zh"`
	ComplementaryQiZH string   `json:"complementary_qi_zh"`
	SpecialPatterns   []string `json:"special_patterns"`
	SpecialZH         string   `json:"special_zh"`
	Advice            struct {
		Text string `json:"text"`
		Tone string `json:"tone"`
	} `json:"advice"`
}

// CycleResponse is the response for /api/v1/cycle
type CycleResponse struct {
	Start    int       `json:"start"`
	Count    int       `json:"count"`
	Profiles []Profile `json:"profiles"`
}

// SeasonalStep is one row of /api/v1/reference/steps
type SeasonalStep struct {
	Step     int    `json:"step"`
	Label    string `json:"label"`
	MainQiZH string `json:"main_qi_zh"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// knownYear pins a year to values checked by hand against the sexagenary table.
type knownYear struct {
	year       int
	stemBranch string
	movementZH string
	pattern    string
}

var knownYears = []knownYear{
	{2024, "甲辰", "土运太过", ""},
	{2025, "乙巳", "金运不及", ""},
	{2013, "癸巳", "火运不及", "Heaven-Matching"},
	{2026, "丙午", "水运太过", "Year-Meeting"},
	{1984, "甲子", "土运太过", ""},
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Wuyun API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	// Run test groups
	tr.testHealth()
	tr.testKnownYears()
	tr.testCycle()
	tr.testReference()
	tr.testEdgeCases()
	tr.testPage()
	tr.testMetrics()

	// Print summary
	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, err := tr.get("/health")
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := json.Unmarshal(resp.Data, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testKnownYears() {
	tr.printSection("Known Years")

	for _, k := range knownYears {
		label := fmt.Sprintf("%d", k.year)

		resp, err := tr.get(fmt.Sprintf("/api/v1/profile/%d", k.year))
		if err != nil {
			tr.recordError(label, err.Error())
			continue
		}

		var p Profile
		if err := json.Unmarshal(resp.Data, &p); err != nil {
			tr.recordError(label, err.Error())
			continue
		}

		if p.StemBranch != k.stemBranch || p.MovementZH != k.movementZH {
			tr.recordError(label, fmt.Sprintf("got %s %s, want %s %s",
				p.StemBranch, p.MovementZH, k.stemBranch, k.movementZH))
			continue
		}
		if k.pattern != "" && (len(p.SpecialPatterns) != 1 || p.SpecialPatterns[0] != k.pattern) {
			tr.recordError(label, fmt.Sprintf("special patterns %v, want [%s]", p.SpecialPatterns, k.pattern))
			continue
		}

		tr.recordSuccess(fmt.Sprintf("%d: %s / %s / 司天 %s / 在泉 %s / %s",
			p.Year, p.StemBranch, p.MovementZH, p.GoverningQiZH, p.ComplementaryQiZH, p.SpecialZH))

		if tr.verbose {
			fmt.Printf("    Advice (%s): %s\n", p.Advice.Tone, p.Advice.Text)
		}
	}

	// Query form agrees with path form
	resp, err := tr.get("/api/v1/profile?year=2024")
	if err != nil {
		tr.recordError("Query year", err.Error())
		return
	}
	var p Profile
	if err := json.Unmarshal(resp.Data, &p); err != nil || p.StemBranch != "甲辰" {
		tr.recordError("Query year", fmt.Sprintf("got %q (%v)", p.StemBranch, err))
		return
	}
	tr.recordSuccess("Query form ?year=2024 matches path form")
}

func (tr *TestRunner) testCycle() {
	tr.printSection("Sexagenary Cycle")

	resp, err := tr.get("/api/v1/cycle?start=1984")
	if err != nil {
		tr.recordError("Cycle", err.Error())
		return
	}

	var c CycleResponse
	if err := json.Unmarshal(resp.Data, &c); err != nil {
		tr.recordError("Cycle", err.Error())
		return
	}

	seen := make(map[string]bool, len(c.Profiles))
	for _, p := range c.Profiles {
		seen[p.StemBranch] = true
	}
	if len(c.Profiles) == 60 && len(seen) == 60 {
		tr.recordSuccess("1984..2043 covers all 60 stem-branch pairs")
	} else {
		tr.recordError("Cycle", fmt.Sprintf("%d profiles, %d distinct pairs", len(c.Profiles), len(seen)))
	}
}

func (tr *TestRunner) testReference() {
	tr.printSection("Six-Step Reference")

	resp, err := tr.get("/api/v1/reference/steps")
	if err != nil {
		tr.recordError("Steps", err.Error())
		return
	}

	var steps []SeasonalStep
	if err := json.Unmarshal(resp.Data, &steps); err != nil {
		tr.recordError("Steps", err.Error())
		return
	}
	if len(steps) != 6 {
		tr.recordError("Steps", fmt.Sprintf("got %d rows, want 6", len(steps)))
		return
	}

	for _, s := range steps {
		tr.recordSuccess(fmt.Sprintf("%s: %s", s.Label, s.MainQiZH))
	}

	one, err := tr.get("/api/v1/reference/steps/6")
	if err != nil {
		tr.recordError("Step 6", err.Error())
	} else {
		var s SeasonalStep
		if err := json.Unmarshal(one.Data, &s); err != nil || s.MainQiZH != "太阳寒水" {
			tr.recordError("Step 6", fmt.Sprintf("got %q (%v)", s.MainQiZH, err))
		} else {
			tr.recordSuccess("Single step lookup: " + s.Label)
		}
	}
	tr.expectStatus("Unknown step returns 404", "/api/v1/reference/steps/7", http.StatusNotFound)
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	tr.expectStatus("Non-integer year rejected", "/api/v1/profile/abc", http.StatusBadRequest)
	tr.expectStatus("Zero count rejected", "/api/v1/cycle?count=0", http.StatusBadRequest)
	tr.expectStatus("Oversized count rejected", "/api/v1/cycle?count=61", http.StatusBadRequest)
	tr.expectStatus("Unknown route returns 404", "/api/v1/nope", http.StatusNotFound)
	tr.expectStatus("Cycle past the largest year rejected", "/api/v1/cycle?start=9223372036854775807&count=2", http.StatusBadRequest)

	// Negative years wrap into the cycle
	resp, err := tr.get("/api/v1/profile/-6")
	if err != nil {
		tr.recordError("Negative year", err.Error())
		return
	}
	var p Profile
	if err := json.Unmarshal(resp.Data, &p); err != nil {
		tr.recordError("Negative year", err.Error())
		return
	}
	tr.recordSuccess(fmt.Sprintf("Year -6 handled: %s", p.StemBranch))
}

func (tr *TestRunner) testPage() {
	tr.printSection("HTML Page")

	resp, err := tr.getRaw("/?year=2024")
	if err != nil {
		tr.recordError("Page", err.Error())
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tr.recordError("Page", err.Error())
		return
	}

	if resp.StatusCode == http.StatusOK && strings.Contains(string(body), "甲辰") {
		tr.recordSuccess("Page renders 2024 甲辰")
	} else {
		tr.recordError("Page", fmt.Sprintf("status %d", resp.StatusCode))
	}

	tr.expectStatus("Page rejects non-integer year", "/?year=abc", http.StatusBadRequest)
}

func (tr *TestRunner) testMetrics() {
	tr.printSection("Metrics")

	req, err := http.NewRequest(http.MethodGet, tr.baseURL+"/metrics", nil)
	if err != nil {
		tr.recordError("Metrics", err.Error())
		return
	}
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}

	resp, err := tr.client.Do(req)
	if err != nil {
		tr.recordError("Metrics", err.Error())
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusOK && strings.Contains(string(body), "wuyun_profiles_computed_total") {
		tr.recordSuccess("Metrics exposed")
	} else {
		tr.recordError("Metrics", fmt.Sprintf("status %d (pass -key if API_KEY is set)", resp.StatusCode))
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.getRaw(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	return &apiResp, nil
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	url := tr.baseURL + path
	return tr.client.Get(url)
}

func (tr *TestRunner) expectStatus(name, path string, want int) {
	resp, err := tr.getRaw(path)
	if err != nil {
		tr.recordError(name, err.Error())
		return
	}
	resp.Body.Close()

	if resp.StatusCode == want {
		tr.recordSuccess(name)
	} else {
		tr.recordError(name, fmt.Sprintf("status %d, want %d", resp.StatusCode, want))
	}
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	apiKey := flag.String("key", os.Getenv("API_KEY"), "API key for /metrics")
	verbose := flag.Bool("v", false, "Verbose output (show advice text)")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *apiKey, *verbose)
	runner.Run()

	// Exit with error code if tests failed
	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
