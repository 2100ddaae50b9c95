package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

// SpendRequest represents the spend payload
type SpendRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
}

// AddCreditsRequest represents the add-credits payload
type AddCreditsRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
}

// MutationResponse represents the API response for balance mutations
type MutationResponse struct {
	Owner   string `json:"owner"`
	Success bool   `json:"success"`
	Balance int64  `json:"balance"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	Rejected     bool // 402, an expected outcome once an owner runs dry
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	RejectedRequests   int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	OwnerStats         map[string]int // Track requests per owner
	ScenarioStats      map[string]int // Track requests per scenario
	Lock               sync.Mutex
}

// LedgerScenario defines a single mutation scenario
type LedgerScenario struct {
	Name   string // For stats tracking
	Path   string // spend or add
	Amount int64
}

func main() {

	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	ownersStr := flag.String("o", "load-1,load-2,load-3", "Comma-separated list of owner IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	seedAmount := flag.Int64("seed", 500, "Credits granted to every owner before the run (0 to skip)")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	// Parse owner IDs
	var owners []string
	for _, owner := range strings.Split(*ownersStr, ",") {
		if owner = strings.TrimSpace(owner); owner != "" {
			owners = append(owners, owner)
		}
	}

	// Default to a single owner if none provided
	if len(owners) == 0 {
		owners = []string{"load-1"}
	}

	// Define mutation scenarios
	scenarios := []LedgerScenario{
		{"Spend Small", "spend", 1},
		{"Spend Medium", "spend", 5},
		{"Spend Large", "spend", 20},
		{"Add Small", "add", 10},
		{"Add Medium", "add", 25},
		{"Add Large", "add", 50},
	}

	fmt.Printf("Load testing API across %d owners: %v\n", len(owners), owners)
	fmt.Printf("Mutation scenarios: %d different combinations\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	// Seed every owner so early spends have something to consume
	if *seedAmount > 0 {
		fmt.Printf("Seeding %d credits per owner...\n", *seedAmount)
		client := &http.Client{Timeout: 10 * time.Second}
		for _, owner := range owners {
			if err := addCredits(client, *baseURL, owner, *seedAmount); err != nil {
				fmt.Printf("Failed to seed owner %s: %v\n", owner, err)
			}
		}
	}

	// Initialize test statistics
	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		OwnerStats:      make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	// Initialize stats for each owner
	for _, owner := range owners {
		stats.OwnerStats[owner] = 0
	}

	// Initialize stats for each scenario
	for _, scenario := range scenarios {
		stats.ScenarioStats[scenario.Name] = 0
	}

	// Channel to collect results
	results := make(chan TestResult, *totalRequests)

	// Channel to distribute work
	jobs := make(chan int, *totalRequests)

	// Start worker goroutines
	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, owners, scenarios, jobs, results, stats)
		}(i)
	}

	// Fill the jobs channel
	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// Start a goroutine to collect results
	go func() {
		for result := range results {
			stats.Lock.Lock()
			switch {
			case result.Success:
				stats.SuccessfulRequests++
			case result.Rejected:
				stats.RejectedRequests++
			default:
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	// Start the timer
	startTime := time.Now()
	fmt.Println("Test running...")

	// Print progress periodically
	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.RejectedRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	// Wait for all workers to finish
	wg.Wait()
	close(results)
	ticker.Stop()

	// Calculate the total test time
	stats.TotalTime = time.Since(startTime)

	// Print results
	printResults(stats)
}

func addCredits(client *http.Client, baseURL, owner string, amount int64) error {
	payload, err := json.Marshal(AddCreditsRequest{Amount: amount, Description: "load test seed"})
	if err != nil {
		return err
	}

	resp, err := client.Post(fmt.Sprintf("%s/credits/%s/add", baseURL, owner),
		"application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return nil
}

func worker(id int, baseURL string, delayMs int, owners []string,
	scenarios []LedgerScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for range jobs {
		// Optional delay between requests to prevent rate limiting
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		// Randomly select an owner
		owner := owners[rand.Intn(len(owners))]

		// Randomly select a mutation scenario
		scenario := scenarios[rand.Intn(len(scenarios))]

		// Update stats for which owner and scenario was selected
		stats.Lock.Lock()
		stats.OwnerStats[owner]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		// Create API URL for this owner and scenario
		apiURL := fmt.Sprintf("%s/credits/%s/%s", baseURL, owner, scenario.Path)

		var payload any
		if scenario.Path == "spend" {
			payload = SpendRequest{Amount: scenario.Amount, Description: fmt.Sprintf("load test worker %d", id)}
		} else {
			payload = AddCreditsRequest{Amount: scenario.Amount, Description: fmt.Sprintf("load test worker %d", id)}
		}

		jsonData, err := json.Marshal(payload)
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		// Create request
		req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		// Set headers
		req.Header.Set("Content-Type", "application/json")

		// Send the request and measure response time
		startTime := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(startTime)

		result := TestResult{
			ResponseTime: responseTime,
		}

		if err != nil {
			result.Success = false
			result.Error = err
		} else {
			statusCode := resp.StatusCode
			result.StatusCode = statusCode
			result.Success = (statusCode >= 200 && statusCode < 300)
			if statusCode == http.StatusPaymentRequired {
				// An owner ran out of credits, which is correct ledger
				// behavior under sustained spend pressure
				result.Rejected = true
			} else if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", statusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	completedOK := stats.SuccessfulRequests + stats.RejectedRequests

	// Calculate theoretical TPS (ignores actual delays between requests)
	rawTps := float64(completedOK) / stats.TotalTime.Seconds()

	// Calculate TPS if all requests were successful
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	// Calculate success rate adjusted TPS
	adjustedTps := theoreticalTps * (float64(completedOK) / float64(stats.TotalRequests))

	// Calculate average response time
	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	// Calculate percentiles
	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		// Sort the response times
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)

		// Simple bubble sort (OK for small datasets)
		for i := 0; i < len(sortedTimes); i++ {
			for j := i + 1; j < len(sortedTimes); j++ {
				if sortedTimes[i] > sortedTimes[j] {
					sortedTimes[i], sortedTimes[j] = sortedTimes[j], sortedTimes[i]
				}
			}
		}

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	// Print results
	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Rejected (no funds): %d (%.1f%%)\n", stats.RejectedRequests,
		float64(stats.RejectedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (completed requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests completed)\n", theoreticalTps)
	fmt.Printf("Success-adjusted TPS: %.2f (theoretical * completion rate)\n", adjustedTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	// Print owner distribution
	fmt.Println("\n----------------- OWNER DISTRIBUTION -----------------")
	totalOwners := 0
	for _, count := range stats.OwnerStats {
		totalOwners += count
	}
	for owner, count := range stats.OwnerStats {
		if count > 0 {
			fmt.Printf("Owner %-10s: %d requests (%.1f%%)\n", owner, count,
				float64(count)/float64(totalOwners)*100)
		}
	}

	// Print scenario distribution
	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	totalScenarios := 0
	for _, count := range stats.ScenarioStats {
		totalScenarios += count
	}
	for scenario, count := range stats.ScenarioStats {
		if count > 0 {
			fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
				float64(count)/float64(totalScenarios)*100)
		}
	}

	// Print error distribution if there were errors
	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}

	// Final conclusion
	fmt.Println("\n================= CONCLUSION =================")
	if theoreticalTps >= 30 {
		fmt.Printf("✅ SYSTEM CAN THEORETICALLY EXCEED the required 30 TPS threshold (%.2f TPS)\n", theoreticalTps)

		if rawTps < 30 {
			fmt.Println("⚠️ But rate limiting or other issues are preventing full performance")
		}
	} else {
		fmt.Printf("❌ SYSTEM DOES NOT MEET the required 30 TPS threshold (%.2f TPS)\n", theoreticalTps)
	}
	fmt.Println("================================================")
}
