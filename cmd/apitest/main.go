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

type Officer struct {
	Index       int    `json:"index"`
	DisplayName string `json:"displayName"`
}

// AlmanacResponse is the response for /pillars and /pillars/now
type AlmanacResponse struct {
	Time      time.Time `json:"time"`
	TermMonth struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	} `json:"termMonth"`
	Pillars struct {
		ByPillar [4][2]string      `json:"array2d.groupByPillar"`
		Map      map[string]string `json:"map"`
	} `json:"pillars"`
	DailyGod Officer `json:"dailyGod"`
}

// RangeResponse is the response for /daily-gods
type RangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  []struct {
		Date      string  `json:"date"`
		DayPillar string  `json:"dayPillar"`
		DailyGod  Officer `json:"dailyGod"`
	} `json:"days"`
}

// TermsResponse is the response for /solar-terms/{year}
type TermsResponse struct {
	Year  int `json:"year"`
	Terms []struct {
		Name  string    `json:"name"`
		Time  time.Time `json:"time"`
		Month int       `json:"month"`
	} `json:"terms"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
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
	fmt.Println("Four Pillars API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testNow()
	tr.testKnownInstants()
	tr.testDailyGodRange()
	tr.testSolarTerms()
	tr.testEdgeCases()

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

func (tr *TestRunner) testNow() {
	tr.printSection("Current Instant")

	var data AlmanacResponse
	if err := tr.getData("/api/v1/pillars/now", &data); err != nil {
		tr.recordError("Now", err.Error())
		return
	}

	tr.recordSuccess(fmt.Sprintf("Now (%s): %s, %s",
		data.Time.Format(time.RFC3339), pillarsString(data.Pillars.ByPillar), data.DailyGod.DisplayName))
}

func (tr *TestRunner) testKnownInstants() {
	tr.printSection("Known Instants")

	testCases := []struct {
		datetime    string
		pillars     string
		dailyGod    string
		description string
	}{
		{"1949-10-01T15:00:00", "壬申 甲子 癸酉 己丑", "平", "PRC founding ceremony"},
		{"2000-01-01T00:00:00", "壬子 戊午 丙子 己卯", "破", "Millennium midnight"},
		{"2024-02-10T12:00:00", "庚午 甲辰 丙寅 甲辰", "滿", "Lunar New Year 2024"},
		{"2024-01-01T00:00:00", "甲子 甲子 甲子 癸卯", "建", "All 甲子 but the year"},
		{"2024-02-04T16:00:00", "", "收", "Before 立春 2024"},
		{"2024-02-04T16:30:00", "", "成", "After 立春 2024"},
	}

	for _, tc := range testCases {
		var data AlmanacResponse
		if err := tr.getData("/api/v1/pillars?datetime="+tc.datetime, &data); err != nil {
			tr.recordError(tc.datetime, err.Error())
			continue
		}

		got := pillarsString(data.Pillars.ByPillar)
		if tc.pillars != "" && got != tc.pillars {
			tr.recordError(tc.datetime, fmt.Sprintf("Expected pillars '%s', got '%s'", tc.pillars, got))
			continue
		}
		if data.DailyGod.DisplayName != tc.dailyGod {
			tr.recordError(tc.datetime, fmt.Sprintf("Expected daily god '%s', got '%s'",
				tc.dailyGod, data.DailyGod.DisplayName))
			continue
		}

		tr.recordSuccess(fmt.Sprintf("%s: %s %s (%s)", tc.datetime, got, data.DailyGod.DisplayName, tc.description))
		if tr.verbose {
			fmt.Printf("    Term month: %d/%d\n", data.TermMonth.Year, data.TermMonth.Month)
			fmt.Printf("    Map: %v\n\n", data.Pillars.Map)
		}
	}
}

func (tr *TestRunner) testDailyGodRange() {
	tr.printSection("Daily God Range")

	var data RangeResponse
	if err := tr.getData("/api/v1/daily-gods?start=2024-02-01&end=2024-02-07", &data); err != nil {
		tr.recordError("Range (week)", err.Error())
		return
	}

	if len(data.Days) == 7 {
		tr.recordSuccess(fmt.Sprintf("Week range returned %d days", len(data.Days)))
	} else {
		tr.recordError("Range (week)", fmt.Sprintf("Expected 7 days, got %d", len(data.Days)))
	}

	if tr.verbose {
		for _, d := range data.Days {
			fmt.Printf("    %s %s %s\n", d.Date, d.DayPillar, d.DailyGod.DisplayName)
		}
		fmt.Println()
	}

	resp, _ := tr.getRaw("/api/v1/daily-gods?start=2020-01-01&end=2030-12-31")
	if resp != nil && resp.StatusCode == 400 {
		tr.recordSuccess("Range limit enforced")
	} else {
		tr.recordError("Range limit", "Should reject ranges above the configured limit")
	}

	resp2, _ := tr.getRaw("/api/v1/daily-gods?start=2024-12-31&end=2024-01-01")
	if resp2 != nil && resp2.StatusCode == 400 {
		tr.recordSuccess("Invalid range rejected (end before start)")
	} else {
		tr.recordError("Invalid range", "Should reject end < start")
	}
}

func (tr *TestRunner) testSolarTerms() {
	tr.printSection("Solar Terms")

	var data TermsResponse
	if err := tr.getData("/api/v1/solar-terms/2024", &data); err != nil {
		tr.recordError("Terms 2024", err.Error())
		return
	}

	if len(data.Terms) != 24 {
		tr.recordError("Terms 2024", fmt.Sprintf("Expected 24 terms, got %d", len(data.Terms)))
		return
	}
	tr.recordSuccess("2024 has 24 terms")

	lichun := data.Terms[2]
	want := time.Date(2024, 2, 4, 8, 27, 7, 0, time.UTC)
	if diff := lichun.Time.Sub(want); lichun.Name == "立春" && diff < 2*time.Minute && diff > -2*time.Minute {
		tr.recordSuccess(fmt.Sprintf("立春 2024 at %s", lichun.Time.Format(time.RFC3339)))
	} else {
		tr.recordError("立春 2024", fmt.Sprintf("Got %s at %s", lichun.Name, lichun.Time.Format(time.RFC3339)))
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	checks := []struct {
		path string
		want int
		desc string
	}{
		{"/api/v1/pillars?datetime=invalid", 400, "Invalid datetime rejected"},
		{"/api/v1/pillars", 400, "Missing datetime rejected"},
		{"/api/v1/pillars?datetime=1400-06-01", 400, "Out-of-range year rejected"},
		{"/api/v1/solar-terms/abc", 400, "Non-numeric year rejected"},
		{"/api/v1/pillars?datetime=2024-02-29", 200, "Leap day handled"},
		{"/api/v1/pillars?datetime=2024-02-29T23:30:00%2B08:00", 200, "Late 子 hour handled"},
	}

	for _, c := range checks {
		resp, err := tr.getRaw(c.path)
		if err != nil {
			tr.recordError(c.desc, err.Error())
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == c.want {
			tr.recordSuccess(c.desc)
		} else {
			tr.recordError(c.desc, fmt.Sprintf("Expected HTTP %d, got %d", c.want, resp.StatusCode))
		}
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

func pillarsString(p [4][2]string) string {
	parts := make([]string, 0, len(p))
	for _, sb := range p {
		parts = append(parts, sb[0]+sb[1])
	}
	return strings.Join(parts, " ")
}

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

func (tr *TestRunner) getData(path string, target interface{}) error {
	resp, err := tr.get(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(resp.Data, target)
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, tr.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}
	return tr.client.Do(req)
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
	apiKey := flag.String("key", os.Getenv("API_KEY"), "API key sent as X-API-Key")
	verbose := flag.Bool("v", false, "Verbose output")
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

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
