package logging

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"sync"
	"time"

	"golang.org/x/crypto/hkdf"

	"github.com/testmaster-app/testmaster/utils"
)

// VisitorIDService turns client IPs into short opaque identifiers so page
// views can be correlated within a day without writing addresses to disk.
// Keys are derived per UTC day from a random master secret that lives only
// in memory, so identifiers cannot be linked across days or restarts.
type VisitorIDService struct {
	masterSecret []byte
	mu           sync.RWMutex
	dailyKeys    map[string][]byte
	retention    int
	now          func() time.Time
	stop         chan struct{}
	stopOnce     sync.Once
}

// VisitorIDConfig configures the visitor ID service
type VisitorIDConfig struct {
	RetentionDays   int           `json:"retention_days"`
	CleanupInterval time.Duration `json:"cleanup_interval"`
}

// NewVisitorIDService creates a service with a fresh master secret. A
// positive CleanupInterval starts a goroutine that drops expired daily keys
// until Stop is called.
func NewVisitorIDService(config VisitorIDConfig) (*VisitorIDService, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate master secret: %w", err)
	}

	if config.RetentionDays <= 0 {
		config.RetentionDays = 1
	}

	s := &VisitorIDService{
		masterSecret: secret,
		dailyKeys:    make(map[string][]byte),
		retention:    config.RetentionDays,
		now:          time.Now,
		stop:         make(chan struct{}),
	}

	if config.CleanupInterval > 0 {
		go s.cleanupRoutine(config.CleanupInterval)
	}

	return s, nil
}

// VisitorID returns the identifier for ip in the current day window.
func (s *VisitorIDService) VisitorID(ip net.IP) string {
	if ip == nil {
		return "unknown"
	}

	mac := hmac.New(sha256.New, s.dailyKey(s.TimeWindow(s.now())))
	mac.Write(ip)
	return hex.EncodeToString(mac.Sum(nil))[:16]
}

// TimeWindow returns the day window (YYYY-MM-DD, UTC) containing t.
func (s *VisitorIDService) TimeWindow(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Cleanup drops derived keys older than the retention period.
func (s *VisitorIDService) Cleanup() {
	cutoff := s.TimeWindow(s.now().UTC().AddDate(0, 0, -s.retention))

	s.mu.Lock()
	defer s.mu.Unlock()
	for window := range s.dailyKeys {
		if window < cutoff {
			delete(s.dailyKeys, window)
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (s *VisitorIDService) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *VisitorIDService) dailyKey(window string) []byte {
	s.mu.RLock()
	key, ok := s.dailyKeys[window]
	s.mu.RUnlock()
	if ok {
		return key
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if key, ok := s.dailyKeys[window]; ok {
		return key
	}

	key = make([]byte, 32)
	r := hkdf.New(sha256.New, s.masterSecret, []byte(window), []byte("visitor_id_v1"))
	if _, err := r.Read(key); err != nil {
		mac := hmac.New(sha256.New, s.masterSecret)
		mac.Write([]byte(window))
		key = mac.Sum(nil)
	}
	s.dailyKeys[window] = key
	return key
}

func (s *VisitorIDService) cleanupRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Cleanup()
		case <-s.stop:
			return
		}
	}
}

// ValidVisitorID reports whether id has the shape produced by VisitorID.
func ValidVisitorID(id string) bool {
	if len(id) != 16 {
		return false
	}
	return utils.IsHexString(id)
}
