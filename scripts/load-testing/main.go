// Command load-testing simulates shoppers against a running storefront: each
// virtual shopper browses the catalog, fills a cart and walks the checkout.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"sort"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

type LoadTestConfig struct {
	BaseURL         string
	ConcurrentUsers int
	Duration        time.Duration
	RampUp          time.Duration
}

type TestResult struct {
	TotalRequests      int64
	SuccessfulRequests int64
	FailedRequests     int64
	OrdersPlaced       int64

	mu            sync.Mutex
	responseTimes []time.Duration
	errors        map[string]int64
}

type PerformanceMetrics struct {
	TotalRequests   int64            `json:"total_requests"`
	FailedRequests  int64            `json:"failed_requests"`
	OrdersPlaced    int64            `json:"orders_placed"`
	Duration        string           `json:"duration"`
	ThroughputRPS   float64          `json:"throughput_rps"`
	ErrorRate       float64          `json:"error_rate"`
	P50ResponseTime string           `json:"p50_response_time"`
	P95ResponseTime string           `json:"p95_response_time"`
	P99ResponseTime string           `json:"p99_response_time"`
	Errors          map[string]int64 `json:"errors,omitempty"`
}

type LoadTester struct {
	config   LoadTestConfig
	result   *TestResult
	products []string
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func main() {
	cfg := LoadTestConfig{}
	flag.StringVar(&cfg.BaseURL, "url", "http://localhost:8080", "storefront base URL")
	flag.IntVar(&cfg.ConcurrentUsers, "users", 100, "concurrent shoppers")
	flag.DurationVar(&cfg.Duration, "duration", time.Minute, "test duration")
	flag.DurationVar(&cfg.RampUp, "ramp-up", 10*time.Second, "time to start all shoppers")
	out := flag.String("out", "", "write the report as JSON to this file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lt := &LoadTester{
		config: cfg,
		result: &TestResult{errors: make(map[string]int64)},
	}

	if err := lt.loadCatalog(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "load catalog:", err)
		os.Exit(1)
	}

	fmt.Printf("Shoppers: %d, duration: %s, products: %d\n\n", cfg.ConcurrentUsers, cfg.Duration, len(lt.products))

	start := time.Now()
	lt.Run(ctx)
	metrics := lt.metrics(time.Since(start))

	report, _ := json.MarshalIndent(metrics, "", "  ")
	fmt.Println(string(report))

	if *out != "" {
		if err := os.WriteFile(*out, report, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "save report:", err)
		}
	}
}

func (lt *LoadTester) loadCatalog(ctx context.Context) error {
	var products []struct {
		Name string `json:"name"`
	}
	if _, err := lt.call(ctx, http.DefaultClient, http.MethodGet, "/api/v1/catalog", nil, &products); err != nil {
		return err
	}
	for _, p := range products {
		lt.products = append(lt.products, p.Name)
	}
	if len(lt.products) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	return nil
}

func (lt *LoadTester) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, lt.config.Duration)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	step := lt.config.RampUp / time.Duration(max(lt.config.ConcurrentUsers, 1))

	for i := 0; i < lt.config.ConcurrentUsers; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return nil
			case <-time.After(step * time.Duration(i)):
			}
			lt.shop(gctx)
			return nil
		})
	}

	_ = g.Wait()
}

// shop loops one shopper with their own session cookie until ctx ends.
func (lt *LoadTester) shop(ctx context.Context) {
	jar, _ := cookiejar.New(nil)
	client := &http.Client{Timeout: 30 * time.Second, Jar: jar}
	methods := []string{"collect", "truck", "post"}

	for ctx.Err() == nil {
		for n := rand.Intn(4) + 1; n > 0; n-- {
			name := lt.products[rand.Intn(len(lt.products))]
			lt.record(lt.call(ctx, client, http.MethodPost, "/api/v1/cart/items", map[string]string{"name": name}, nil))
		}

		steps := []struct {
			method, path string
			body         interface{}
		}{
			{http.MethodPost, "/api/v1/checkout", nil},
			{http.MethodPut, "/api/v1/checkout/delivery", map[string]string{"method": methods[rand.Intn(len(methods))]}},
			{http.MethodPost, "/api/v1/checkout/continue", nil},
			{http.MethodPut, "/api/v1/checkout/details", map[string]string{
				"name":     "Load Test",
				"phone":    "0870000000",
				"email":    "load@example.ie",
				"address1": "1 Kells Road",
				"town":     "Navan",
				"county":   "Meath",
			}},
			{http.MethodGet, "/api/v1/checkout/review", nil},
			{http.MethodPost, "/api/v1/checkout/order", nil},
		}

		placed := true
		for _, s := range steps {
			if err := lt.record(lt.call(ctx, client, s.method, s.path, s.body, nil)); err != nil {
				placed = false
				break
			}
		}
		if placed {
			atomic.AddInt64(&lt.result.OrdersPlaced, 1)
		}

		select {
		case <-ctx.Done():
		case <-time.After(time.Duration(rand.Intn(1000)) * time.Millisecond):
		}
	}
}

func (lt *LoadTester) call(ctx context.Context, client *http.Client, method, path string, body, into interface{}) (time.Duration, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, lt.config.BaseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return elapsed, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return elapsed, fmt.Errorf("%s %s: %d", method, path, resp.StatusCode)
	}

	if into == nil {
		io.Copy(io.Discard, resp.Body)
		return elapsed, nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return elapsed, err
	}
	return elapsed, json.Unmarshal(env.Data, into)
}

func (lt *LoadTester) record(elapsed time.Duration, err error) error {
	if err != nil && elapsed == 0 {
		return err
	}

	atomic.AddInt64(&lt.result.TotalRequests, 1)
	if err == nil {
		atomic.AddInt64(&lt.result.SuccessfulRequests, 1)
	} else {
		atomic.AddInt64(&lt.result.FailedRequests, 1)
	}

	lt.result.mu.Lock()
	lt.result.responseTimes = append(lt.result.responseTimes, elapsed)
	if err != nil {
		lt.result.errors[err.Error()]++
	}
	lt.result.mu.Unlock()

	return err
}

func (lt *LoadTester) metrics(elapsed time.Duration) PerformanceMetrics {
	lt.result.mu.Lock()
	defer lt.result.mu.Unlock()

	total := atomic.LoadInt64(&lt.result.TotalRequests)
	failed := atomic.LoadInt64(&lt.result.FailedRequests)

	m := PerformanceMetrics{
		TotalRequests:   total,
		FailedRequests:  failed,
		OrdersPlaced:    atomic.LoadInt64(&lt.result.OrdersPlaced),
		Duration:        elapsed.Round(time.Millisecond).String(),
		P50ResponseTime: percentile(lt.result.responseTimes, 50).String(),
		P95ResponseTime: percentile(lt.result.responseTimes, 95).String(),
		P99ResponseTime: percentile(lt.result.responseTimes, 99).String(),
		Errors:          lt.result.errors,
	}
	if elapsed > 0 {
		m.ThroughputRPS = float64(total) / elapsed.Seconds()
	}
	if total > 0 {
		m.ErrorRate = float64(failed) / float64(total) * 100
	}
	return m
}

func percentile(durations []time.Duration, p int) time.Duration {
	if len(durations) == 0 {
		return 0
	}

	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	index := len(sorted) * p / 100
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}
