package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"slices"
	"sync"
	"time"
)

// Cupcake mirrors the public representation returned by the API
type Cupcake struct {
	ID     uint64  `json:"id"`
	Flavor string  `json:"flavor"`
	Size   string  `json:"size"`
	Rating float64 `json:"rating"`
	Image  string  `json:"image"`
}

type cupcakeEnvelope struct {
	Cupcake Cupcake `json:"cupcake"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one kind of request the load test sends
type Scenario struct {
	Name   string
	Weight int
	Run    func(c *client) (int, error)
}

// client wraps the HTTP client and tracks the ids created during the run
type client struct {
	http    *http.Client
	baseURL string

	mu  sync.Mutex
	ids []uint64
}

var (
	flavors = []string{"cherry", "chocolate", "vanilla", "lemon", "red velvet"}
	sizes   = []string{"small", "medium", "large"}
)

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	scenarios := []Scenario{
		{"List", 4, listCupcakes},
		{"Create", 3, createCupcake},
		{"Get", 4, getCupcake},
		{"Rate", 2, rateCupcake},
		{"Delete", 1, deleteCupcake},
	}

	fmt.Printf("Load testing %s\n", *baseURL)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	c := &client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: *baseURL,
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for range *concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(c, *delayMs, scenarios, jobs, results)
		}()
	}

	for i := range *totalRequests {
		jobs <- i
	}
	close(jobs)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			collect(stats, result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-done
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func worker(c *client, delayMs int, scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {
	totalWeight := 0
	for _, s := range scenarios {
		totalWeight += s.Weight
	}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := pick(scenarios, totalWeight)

		start := time.Now()
		status, err := scenario.Run(c)
		result := TestResult{
			Scenario:     scenario.Name,
			ResponseTime: time.Since(start),
			StatusCode:   status,
			Error:        err,
			Success:      err == nil,
		}

		results <- result
	}
}

func pick(scenarios []Scenario, totalWeight int) Scenario {
	n := rand.IntN(totalWeight)
	for _, s := range scenarios {
		if n < s.Weight {
			return s
		}
		n -= s.Weight
	}
	return scenarios[0]
}

func collect(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.ScenarioStats[result.Scenario]++
	if result.Success {
		stats.SuccessfulRequests++
	} else {
		stats.FailedRequests++
		stats.ErrorCounts[result.Error.Error()]++
	}

	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	stats.TotalResponseTime += result.ResponseTime
	stats.MinResponseTime = min(stats.MinResponseTime, result.ResponseTime)
	stats.MaxResponseTime = max(stats.MaxResponseTime, result.ResponseTime)
}

func (c *client) do(method, path string, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("%s %s: HTTP status code %d", method, routeName(path), resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// randomID returns an id created by this run, or false if there is none
func (c *client) randomID() (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.ids) == 0 {
		return 0, false
	}
	return c.ids[rand.IntN(len(c.ids))], true
}

// takeID removes and returns a random id so that it is deleted only once
func (c *client) takeID() (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.ids) == 0 {
		return 0, false
	}
	i := rand.IntN(len(c.ids))
	id := c.ids[i]
	c.ids = slices.Delete(c.ids, i, i+1)
	return id, true
}

func listCupcakes(c *client) (int, error) {
	return c.do(http.MethodGet, "/api/cupcakes", nil, nil)
}

func createCupcake(c *client) (int, error) {
	var created cupcakeEnvelope
	status, err := c.do(http.MethodPost, "/api/cupcakes", map[string]any{
		"flavor": flavors[rand.IntN(len(flavors))],
		"size":   sizes[rand.IntN(len(sizes))],
		"rating": float64(rand.IntN(100)) / 10,
	}, &created)
	if err == nil {
		c.mu.Lock()
		c.ids = append(c.ids, created.Cupcake.ID)
		c.mu.Unlock()
	}
	return status, err
}

func getCupcake(c *client) (int, error) {
	id, ok := c.randomID()
	if !ok {
		return listCupcakes(c)
	}
	return c.do(http.MethodGet, fmt.Sprintf("/api/cupcakes/%d", id), nil, nil)
}

func rateCupcake(c *client) (int, error) {
	id, ok := c.randomID()
	if !ok {
		return createCupcake(c)
	}
	return c.do(http.MethodPatch, fmt.Sprintf("/api/cupcakes/%d", id), map[string]any{
		"rating": float64(rand.IntN(100)) / 10,
	}, nil)
}

func deleteCupcake(c *client) (int, error) {
	id, ok := c.takeID()
	if !ok {
		return createCupcake(c)
	}
	return c.do(http.MethodDelete, fmt.Sprintf("/api/cupcakes/%d", id), nil, nil)
}

func routeName(path string) string {
	if path == "/api/cupcakes" {
		return path
	}
	return "/api/cupcakes/:id"
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))

		sortedTimes := slices.Clone(stats.ResponseTimes)
		slices.Sort(sortedTimes)

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw RPS:             %.2f (successful requests / total time)\n", rawTps)
	fmt.Printf("Theoretical RPS:     %.2f (if all requests were successful)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
