package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/api/dto"
)

// TestResult contains metrics for a single request
type TestResult struct {
	Status       string
	ResponseTime time.Duration
	StatusCode   int
	ErrorCode    int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	Committed         int
	RolledBack        int
	Failed            int
	TotalTime         time.Duration
	TotalResponseTime time.Duration
	ResponseTimes     []time.Duration
	ErrorCounts       map[string]int
	PairStats         map[string]int
	Lock              sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of transfers to submit")
	accountsStr := flag.String("a", "memberA,memberB,ex", "Comma-separated account IDs to move money between")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	maxAmount := flag.Int64("max", 500, "Largest amount per transfer in minor units")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	var accounts []string
	for _, id := range strings.Split(*accountsStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			accounts = append(accounts, id)
		}
	}
	if len(accounts) < 2 {
		fmt.Println("At least two accounts are required")
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}

	before, err := totalBalance(client, *baseURL, accounts)
	if err != nil {
		fmt.Printf("Failed to read balances before the test: %v\n", err)
		return
	}

	fmt.Printf("Load testing transfers across %d accounts: %v\n", len(accounts), accounts)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total transfers: %d\n", *totalRequests)
	fmt.Printf("Total balance before: %d\n", before)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		PairStats:     make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, *maxAmount, accounts, jobs, results, stats)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	var collected sync.WaitGroup
	collected.Add(1)
	go func() {
		defer collected.Done()
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	collected.Wait()
	stats.TotalTime = time.Since(startTime)

	after, err := totalBalance(client, *baseURL, accounts)
	if err != nil {
		fmt.Printf("Failed to read balances after the test: %v\n", err)
		return
	}

	printResults(stats, before, after)
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	switch {
	case result.Error != nil:
		s.Failed++
		s.ErrorCounts[result.Error.Error()]++
	case result.Status == "committed":
		s.Committed++
	default:
		s.RolledBack++
		s.ErrorCounts[fmt.Sprintf("HTTP %d (code %d)", result.StatusCode, result.ErrorCode)]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
}

func worker(client *http.Client, baseURL string, delayMs int, maxAmount int64, accounts []string,
	jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		from := accounts[rand.IntN(len(accounts))]
		to := accounts[rand.IntN(len(accounts))]
		for to == from {
			to = accounts[rand.IntN(len(accounts))]
		}

		stats.Lock.Lock()
		stats.PairStats[from+" -> "+to]++
		stats.Lock.Unlock()

		results <- submitTransfer(client, baseURL, dto.TransferRequest{
			FromAccountID: from,
			ToAccountID:   to,
			Amount:        1 + rand.Int64N(maxAmount),
		})
	}
}

func submitTransfer(client *http.Client, baseURL string, request dto.TransferRequest) TestResult {
	body, err := json.Marshal(request)
	if err != nil {
		return TestResult{Error: err}
	}

	startTime := time.Now()
	resp, err := client.Post(baseURL+"/api/v1/transfers", "application/json", bytes.NewReader(body))
	result := TestResult{ResponseTime: time.Since(startTime)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var transfer dto.TransferResponse
		if err := json.NewDecoder(resp.Body).Decode(&transfer); err != nil {
			result.Error = err
			return result
		}
		result.Status = transfer.Status
		return result
	}

	var apiErr dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
		result.ErrorCode = apiErr.Code
	}
	if resp.StatusCode >= 500 && resp.StatusCode != http.StatusServiceUnavailable {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result
}

func totalBalance(client *http.Client, baseURL string, accounts []string) (int64, error) {
	resp, err := client.Get(baseURL + "/api/v1/accounts")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var list dto.AccountListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return 0, err
	}

	var total int64
	for _, account := range list.Accounts {
		if slices.Contains(accounts, account.ID) {
			total += account.Balance
		}
	}
	return total, nil
}

func printResults(stats *TestStats, before, after int64) {
	tps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avg, p50, p90, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		avg = stats.TotalResponseTime / time.Duration(n)

		sorted := slices.Clone(stats.ResponseTimes)
		slices.Sort(sorted)
		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Transfers:     %d\n", stats.TotalRequests)
	fmt.Printf("Committed:           %d\n", stats.Committed)
	fmt.Printf("Rolled Back:         %d\n", stats.RolledBack)
	fmt.Printf("Failed:              %d\n", stats.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f transfers/s\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- PAIR DISTRIBUTION -----------------")
	pairs := make([]string, 0, len(stats.PairStats))
	for pair := range stats.PairStats {
		pairs = append(pairs, pair)
	}
	slices.Sort(pairs)
	for _, pair := range pairs {
		fmt.Printf("%-30s: %d\n", pair, stats.PairStats[pair])
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- REJECTIONS -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	fmt.Println("\n================= CONSERVATION =================")
	fmt.Printf("Total balance before: %d\n", before)
	fmt.Printf("Total balance after:  %d\n", after)
	if before == after {
		fmt.Println("✅ Total balance unchanged")
	} else {
		fmt.Printf("❌ Total balance drifted by %d\n", after-before)
	}
	fmt.Println("================================================")
}
