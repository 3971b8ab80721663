package monitoring

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/testmaster-app/testmaster/auth"
	"github.com/testmaster-app/testmaster/config"
	"github.com/testmaster-app/testmaster/content"
	"github.com/testmaster-app/testmaster/logging"
	"github.com/testmaster-app/testmaster/page"
	"github.com/testmaster-app/testmaster/view"
)

// HealthStatus represents the overall health status
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusDegraded  HealthStatus = "degraded"
	StatusUnhealthy HealthStatus = "unhealthy"
)

// HealthCheck represents a single health check result
type HealthCheck struct {
	Name      string            `json:"name"`
	Status    HealthStatus      `json:"status"`
	Message   string            `json:"message,omitempty"`
	Duration  time.Duration     `json:"duration"`
	Timestamp time.Time         `json:"timestamp"`
	Details   map[string]string `json:"details,omitempty"`
}

// HealthResponse represents the complete health check response
type HealthResponse struct {
	Status    HealthStatus           `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Uptime    time.Duration          `json:"uptime"`
	Checks    map[string]HealthCheck `json:"checks"`
	System    SystemInfo             `json:"system"`
	Summary   HealthSummary          `json:"summary"`
}

// SystemInfo provides system-level information
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemStats     struct {
		Alloc      uint64 `json:"alloc"`
		TotalAlloc uint64 `json:"total_alloc"`
		Sys        uint64 `json:"sys"`
		NumGC      uint32 `json:"num_gc"`
		LastGC     string `json:"last_gc"`
	} `json:"memory"`
}

// HealthSummary provides summary statistics
type HealthSummary struct {
	Total     int `json:"total"`
	Healthy   int `json:"healthy"`
	Degraded  int `json:"degraded"`
	Unhealthy int `json:"unhealthy"`
}

// HealthMonitor manages health checks and monitoring
type HealthMonitor struct {
	config    *config.Config
	startTime time.Time
	version   string
	checks    map[string]HealthChecker

	mu     sync.Mutex
	last   HealthResponse
	lastAt time.Time
}

// HealthChecker interface for implementing health checks
type HealthChecker interface {
	Check() HealthCheck
	Name() string
}

// NewHealthMonitor creates a health monitor with the default checks
func NewHealthMonitor(cfg *config.Config, version string) *HealthMonitor {
	hm := &HealthMonitor{
		config:    cfg,
		startTime: time.Now(),
		version:   version,
		checks:    make(map[string]HealthChecker),
	}

	hm.RegisterCheck(&ContentHealthCheck{tables: content.Default})
	hm.RegisterCheck(&RenderHealthCheck{})
	hm.RegisterCheck(&LogHealthCheck{config: cfg})
	hm.RegisterCheck(&SystemHealthCheck{})

	return hm
}

// RegisterCheck registers a new health check
func (hm *HealthMonitor) RegisterCheck(checker HealthChecker) {
	hm.checks[checker.Name()] = checker
}

// GetHealthStatus performs all health checks and returns the status
func (hm *HealthMonitor) GetHealthStatus() HealthResponse {
	start := time.Now()
	checks := make(map[string]HealthCheck)
	summary := HealthSummary{}

	for name, checker := range hm.checks {
		check := checker.Check()
		checks[name] = check
		summary.Total++

		switch check.Status {
		case StatusHealthy:
			summary.Healthy++
		case StatusDegraded:
			summary.Degraded++
		case StatusUnhealthy:
			summary.Unhealthy++
		}
	}

	overallStatus := StatusHealthy
	if summary.Unhealthy > 0 {
		overallStatus = StatusUnhealthy
	} else if summary.Degraded > 0 {
		overallStatus = StatusDegraded
	}

	response := HealthResponse{
		Status:    overallStatus,
		Timestamp: start,
		Version:   hm.version,
		Uptime:    time.Since(hm.startTime),
		Checks:    checks,
		System:    getSystemInfo(),
		Summary:   summary,
	}

	hm.mu.Lock()
	hm.last = response
	hm.lastAt = start
	hm.mu.Unlock()

	return response
}

// RecentHealthStatus returns the last result if it is younger than maxAge,
// otherwise it runs the checks again.
func (hm *HealthMonitor) RecentHealthStatus(maxAge time.Duration) HealthResponse {
	hm.mu.Lock()
	last, lastAt := hm.last, hm.lastAt
	hm.mu.Unlock()

	if !lastAt.IsZero() && time.Since(lastAt) < maxAge {
		return last
	}
	return hm.GetHealthStatus()
}

func getSystemInfo() SystemInfo {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	info := SystemInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
	}

	info.MemStats.Alloc = memStats.Alloc
	info.MemStats.TotalAlloc = memStats.TotalAlloc
	info.MemStats.Sys = memStats.Sys
	info.MemStats.NumGC = memStats.NumGC
	if memStats.LastGC > 0 {
		info.MemStats.LastGC = time.Unix(0, int64(memStats.LastGC)).Format(time.RFC3339)
	}

	return info
}

// ContentHealthCheck verifies that every content table can fill its grid
type ContentHealthCheck struct {
	tables func() content.Tables
}

func (c *ContentHealthCheck) Name() string {
	return "content"
}

func (c *ContentHealthCheck) Check() HealthCheck {
	start := time.Now()
	check := HealthCheck{
		Name:      "content",
		Timestamp: start,
		Details:   make(map[string]string),
	}

	t := c.tables()
	counts := map[string]int{
		"stats":      len(t.Stats),
		"features":   len(t.Features),
		"test_types": len(t.TestTypes),
		"benefits":   len(t.Benefits),
	}

	var empty []string
	for name, n := range counts {
		check.Details[name] = fmt.Sprintf("%d", n)
		if n == 0 {
			empty = append(empty, name)
		}
	}
	sort.Strings(empty)

	if len(empty) == 0 {
		check.Status = StatusHealthy
		check.Message = "All content tables populated"
	} else {
		check.Status = StatusUnhealthy
		check.Message = fmt.Sprintf("Empty content tables: %v", empty)
	}

	check.Duration = time.Since(start)
	return check
}

// RenderHealthCheck renders both page variants end to end
type RenderHealthCheck struct{}

func (r *RenderHealthCheck) Name() string {
	return "render"
}

func (r *RenderHealthCheck) Check() HealthCheck {
	start := time.Now()
	check := HealthCheck{
		Name:      "render",
		Timestamp: start,
		Details:   make(map[string]string),
	}

	variants := map[string]auth.State{
		"anonymous":     auth.Anonymous,
		"authenticated": auth.SignedIn("Health Check"),
	}
	for name, state := range variants {
		html, err := view.RenderString(page.New(auth.Static(state)).Render())
		if err != nil {
			check.Status = StatusUnhealthy
			check.Message = fmt.Sprintf("Rendering %s page failed: %v", name, err)
			check.Duration = time.Since(start)
			return check
		}
		check.Details[name+"_bytes"] = fmt.Sprintf("%d", len(html))
	}

	check.Status = StatusHealthy
	check.Message = "Landing page renders"
	check.Duration = time.Since(start)
	return check
}

// LogHealthCheck checks that the log directory is writable
type LogHealthCheck struct {
	config *config.Config
}

func (l *LogHealthCheck) Name() string {
	return "logging"
}

func (l *LogHealthCheck) Check() HealthCheck {
	start := time.Now()
	check := HealthCheck{
		Name:      "logging",
		Timestamp: start,
		Details:   make(map[string]string),
	}

	if l.config == nil {
		check.Status = StatusDegraded
		check.Message = "Configuration not available"
		check.Duration = time.Since(start)
		return check
	}

	dir := l.config.Logging.Directory
	check.Details["directory"] = dir

	f, err := os.CreateTemp(dir, ".health-*")
	if err != nil {
		check.Status = StatusDegraded
		check.Message = fmt.Sprintf("Log directory not writable: %v", err)
	} else {
		f.Close()
		os.Remove(f.Name())
		check.Status = StatusHealthy
		check.Message = "Log directory writable"
	}

	check.Duration = time.Since(start)
	return check
}

// SystemHealthCheck checks system resources
type SystemHealthCheck struct{}

func (s *SystemHealthCheck) Name() string {
	return "system"
}

func (s *SystemHealthCheck) Check() HealthCheck {
	start := time.Now()
	check := HealthCheck{
		Name:      "system",
		Timestamp: start,
		Details:   make(map[string]string),
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	memUsageMB := memStats.Alloc / 1024 / 1024
	check.Details["memory_mb"] = fmt.Sprintf("%d", memUsageMB)

	numGoroutines := runtime.NumGoroutine()
	check.Details["goroutines"] = fmt.Sprintf("%d", numGoroutines)

	if memUsageMB > 512 {
		check.Status = StatusDegraded
		check.Message = fmt.Sprintf("High memory usage: %d MB", memUsageMB)
	} else if numGoroutines > 1000 {
		check.Status = StatusDegraded
		check.Message = fmt.Sprintf("High goroutine count: %d", numGoroutines)
	} else {
		check.Status = StatusHealthy
		check.Message = "System resources normal"
	}

	check.Duration = time.Since(start)
	return check
}

// HTTP Handlers

// HealthHandler returns the complete health status
func (hm *HealthMonitor) HealthHandler(c echo.Context) error {
	status := hm.GetHealthStatus()

	if status.Status != StatusHealthy {
		logging.WarningLogger.Printf("Health check %s: %d/%d checks healthy",
			status.Status, status.Summary.Healthy, status.Summary.Total)
	}

	httpStatus := http.StatusOK
	if status.Status == StatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, status)
}

// ReadinessHandler reports ready once the page can be rendered
func (hm *HealthMonitor) ReadinessHandler(c echo.Context) error {
	ready := true
	message := "Ready"

	for _, name := range []string{"content", "render"} {
		checker, ok := hm.checks[name]
		if !ok {
			continue
		}
		if check := checker.Check(); check.Status == StatusUnhealthy {
			ready = false
			message = check.Message
			break
		}
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]interface{}{
		"ready":     ready,
		"message":   message,
		"timestamp": time.Now(),
	})
}

// LivenessHandler returns liveness status (minimal check)
func (hm *HealthMonitor) LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
		"uptime":    time.Since(hm.startTime).String(),
	})
}

// healthStatusToInt converts HealthStatus to integer for Prometheus
func healthStatusToInt(status HealthStatus) int {
	switch status {
	case StatusUnhealthy:
		return 0
	case StatusDegraded:
		return 1
	case StatusHealthy:
		return 2
	default:
		return 0
	}
}
