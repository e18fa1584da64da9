package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

const (
	baseURL      = "http://127.0.0.1:8090"
	numWorkers   = 50
	testDuration = 10 * time.Second
	maxQuestion  = 25
)

var animals = []string{
	"Lion", "Tiger", "Elephant", "Giraffe", "Panda", "Dolphin", "Eagle", "Penguin", "Wolf", "Bear",
	"Otter", "Koala", "Octopus", "Axolotl", "Snow Leopard", "Red Fox", "Puffin", "Manatee", "Lynx", "Sloth",
}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== Fauna Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Animals: %d\n\n", numWorkers, testDuration, len(animals))

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Seeding views (POST /views) ---")
	runPhase(testDuration, doTrackView)

	fmt.Println("\n--- Phase 2: Browsing (30% views, 70% discovery reads) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.30:
			return doTrackView(rng)
		case r < 0.55:
			return doGet(fmt.Sprintf("/views/trending?limit=%d", rng.IntN(10)+1))
		case r < 0.70:
			return doGet("/views/recent")
		case r < 0.80:
			return doGet("/views/stats")
		default:
			return doGet("/seasonal")
		}
	})

	fmt.Println("\n--- Phase 3: Quiz traffic ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.30:
			return doGet("/quiz/daily")
		case r < 0.50:
			return doGet(fmt.Sprintf("/quiz/random?count=%d", rng.IntN(10)+1))
		case r < 0.90:
			return doPost("/quiz/answer", map[string]int{
				"id":     rng.IntN(maxQuestion) + 1,
				"answer": rng.IntN(4),
			}, http.StatusOK)
		default:
			return doSaveStats(rng)
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(seed, uint64(time.Now().UnixNano())))
			for {
				select {
				case <-stop:
					return
				default:
					results <- workFn(rng)
				}
			}
		}(uint64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-26s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 92))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-26s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 92))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(max(totalOps, 1))*100, rps)
}

func doTrackView(rng *rand.Rand) result {
	return doPost("/views", map[string]string{"name": animals[rng.IntN(len(animals))]}, http.StatusCreated)
}

func doSaveStats(rng *rand.Rand) result {
	length := rng.IntN(10) + 1
	score := rng.IntN(length + 1)
	streak := 0
	if score > 0 {
		streak = rng.IntN(score) + 1
	}
	return doPost("/quiz/stats", map[string]int{
		"score":      score,
		"length":     length,
		"bestStreak": streak,
	}, http.StatusOK)
}

// endpointName strips the query so results group per route.
func endpointName(method, path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return method + " " + path
}

func doGet(path string) result {
	name := endpointName(http.MethodGet, path)
	start := time.Now()
	resp, err := httpClient.Get(baseURL + path)
	lat := time.Since(start)
	if err != nil {
		return result{name, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{name, resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func doPost(path string, body any, want int) result {
	name := endpointName(http.MethodPost, path)
	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+path, "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{name, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{name, resp.StatusCode, lat, resp.StatusCode != want}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
