package observability

import (
	"sync"
	"time"
)

// RouteStats aggregates request outcomes for one route/method pair.
type RouteStats struct {
	Count         int64
	Errors        int64
	Status2xx     int64
	Status4xx     int64
	Status5xx     int64
	TotalDuration time.Duration
}

// Metrics keeps in-memory request and error counters, aggregated per route.
type Metrics struct {
	mu       sync.Mutex
	routes   map[string]*RouteStats
	byCode   map[string]int64
	requests int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		routes: make(map[string]*RouteStats),
		byCode: make(map[string]int64),
	}
}

// RecordRequest registers a completed request.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests++
	stats := m.routeStatsLocked(method + " " + path)
	stats.Count++
	stats.TotalDuration += duration
	switch {
	case status >= 500:
		stats.Status5xx++
	case status >= 400:
		stats.Status4xx++
	case status >= 200 && status < 300:
		stats.Status2xx++
	}
}

// RecordError registers a request that failed with the given error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.byCode[code]++
	m.routeStatsLocked(method + " " + path).Errors++
}

// Snapshot returns a copy of the per-route stats and error-code counters.
func (m *Metrics) Snapshot() (map[string]RouteStats, map[string]int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	routes := make(map[string]RouteStats, len(m.routes))
	for route, stats := range m.routes {
		routes[route] = *stats
	}
	codes := make(map[string]int64, len(m.byCode))
	for code, count := range m.byCode {
		codes[code] = count
	}
	return routes, codes
}

// TotalRequests reports how many requests have been recorded.
func (m *Metrics) TotalRequests() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

func (m *Metrics) routeStatsLocked(route string) *RouteStats {
	stats, ok := m.routes[route]
	if !ok {
		stats = &RouteStats{}
		m.routes[route] = stats
	}
	return stats
}
