package logging

import (
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"time"
)

// PageEventType defines the kinds of page events written to the log
type PageEventType string

const (
	EventPageView       PageEventType = "page_view"
	EventTreeView       PageEventType = "tree_view"
	EventTokenRejected  PageEventType = "token_rejected"
	EventRateLimited    PageEventType = "rate_limited"
	EventRegistryAccess PageEventType = "registry_access"
)

// PageEvent is a single page-level event. Visitors are identified only by
// their daily visitor ID.
type PageEvent struct {
	Timestamp     time.Time              `json:"timestamp"`
	EventType     PageEventType          `json:"event_type"`
	VisitorID     string                 `json:"visitor_id"`
	TimeWindow    string                 `json:"time_window"`
	Path          string                 `json:"path"`
	Authenticated bool                   `json:"authenticated"`
	Details       map[string]interface{} `json:"details,omitempty"`
}

// PageEventLogger writes page events as single-line JSON through InfoLogger,
// or WarningLogger for rejected tokens and rate limiting.
type PageEventLogger struct {
	visitors *VisitorIDService
}

// NewPageEventLogger creates a logger. A nil service logs events without a
// visitor ID.
func NewPageEventLogger(visitors *VisitorIDService) *PageEventLogger {
	return &PageEventLogger{visitors: visitors}
}

// LogPageEvent records an event for a request from ip.
func (l *PageEventLogger) LogPageEvent(eventType PageEventType, ip net.IP, path string, authenticated bool, details map[string]interface{}) PageEvent {
	now := time.Now().UTC()
	event := PageEvent{
		Timestamp:     now,
		EventType:     eventType,
		Path:          path,
		Authenticated: authenticated,
		Details:       sanitizeDetails(details),
	}
	if l != nil && l.visitors != nil {
		event.VisitorID = l.visitors.VisitorID(ip)
		event.TimeWindow = l.visitors.TimeWindow(now)
	}

	line, err := json.Marshal(event)
	if err != nil {
		ErrorLogger.Printf("Failed to encode page event: %v", err)
		return event
	}

	switch eventType {
	case EventTokenRejected, EventRateLimited:
		WarningLogger.Printf("Page Event: %s", line)
	default:
		InfoLogger.Printf("Page Event: %s", line)
	}
	return event
}

// sanitizeDetails masks values whose keys look like credentials or addresses
func sanitizeDetails(details map[string]interface{}) map[string]interface{} {
	if len(details) == 0 {
		return nil
	}

	sensitiveKeys := []string{"password", "token", "secret", "key", "ip", "email"}
	sanitized := make(map[string]interface{}, len(details))
	for key, value := range details {
		keyLower := strings.ToLower(key)
		masked := false
		for _, s := range sensitiveKeys {
			if strings.Contains(keyLower, s) {
				masked = true
				break
			}
		}
		if masked {
			sanitized[key] = "[REDACTED]"
		} else {
			sanitized[key] = value
		}
	}
	return sanitized
}

func (e PageEvent) String() string {
	return fmt.Sprintf("%s %s visitor=%s auth=%t", e.EventType, e.Path, e.VisitorID, e.Authenticated)
}
