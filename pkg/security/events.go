package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventUploadRejected     EventType = "upload_rejected"
	EventScanFailed         EventType = "malware_scan_failed"
	EventMalwareDetected    EventType = "malware_detected"
	EventUserCreated        EventType = "user_created"
	EventUserDeleted        EventType = "user_deleted"
)

// Severity is derived from EventType, never supplied by the caller.
type Severity string

const (
	SeverityINFO     Severity = "INFO"
	SeverityMEDIUM   Severity = "MEDIUM"
	SeverityWARN     Severity = "WARN"
	SeverityHIGH     Severity = "HIGH"
	SeverityCRITICAL Severity = "CRITICAL"
)

var eventSeverity = map[EventType]Severity{
	EventUserCreated:        SeverityINFO,
	EventUserDeleted:        SeverityMEDIUM,
	EventRateLimitTriggered: SeverityWARN,
	EventUploadRejected:     SeverityWARN,
	EventScanFailed:         SeverityHIGH,
	EventMalwareDetected:    SeverityCRITICAL,
}

// GetSeverity returns the severity for an event type, MEDIUM when unmapped.
func GetSeverity(eventType EventType) Severity {
	if severity, ok := eventSeverity[eventType]; ok {
		return severity
	}
	return SeverityMEDIUM
}

func levelFor(s Severity) zapcore.Level {
	switch s {
	case SeverityINFO:
		return zapcore.InfoLevel
	case SeverityHIGH, SeverityCRITICAL:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp    time.Time
	Event        EventType
	SubjectType  string // "email", "ip", "file"
	SubjectValue string // masked or hashed, never raw PII
	IP           string
	RequestID    string
	Details      map[string]any
}

// EventLogger writes security events as structured zap entries, separate from
// the application log so they can be shipped to a SIEM on their own.
type EventLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultLogger *EventLogger
	defaultMu     sync.Mutex
)

// NewEventLogger wraps an existing zap logger.
func NewEventLogger(z *zap.Logger, serviceName, environment string) *EventLogger {
	return &EventLogger{zapLogger: z, serviceName: serviceName, environment: environment}
}

// InitEventLogger builds the production zap logger and makes it the default.
func InitEventLogger(serviceName, environment string) *EventLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	z, err := config.Build(zap.AddStacktrace(zapcore.DPanicLevel))
	if err != nil {
		z, _ = zap.NewProduction()
	}

	sl := NewEventLogger(z, serviceName, environment)
	SetDefaultLogger(sl)
	return sl
}

func SetDefaultLogger(sl *EventLogger) {
	defaultMu.Lock()
	defaultLogger = sl
	defaultMu.Unlock()
}

// DefaultLogger returns the default event logger, creating it on first use.
func DefaultLogger() *EventLogger {
	defaultMu.Lock()
	sl := defaultLogger
	defaultMu.Unlock()
	if sl == nil {
		return InitEventLogger("ats-resume-scorer", getEnvironment())
	}
	return sl
}

// Log logs a security event
func (sl *EventLogger) Log(ctx context.Context, event SecurityEvent) {
	if sl == nil || sl.zapLogger == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	severity := GetSeverity(event.Event)

	fields := []zap.Field{
		zap.String("service", sl.serviceName),
		zap.String("env", sl.environment),
		zap.String("event", string(event.Event)),
		zap.String("severity", string(severity)),
		zap.Time("occurred_at", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(levelFor(severity), string(event.Event), fields...)
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (sl *EventLogger) LogRateLimitTriggered(ctx context.Context, ip, requestID, endpoint, keyPrefix string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		RequestID:    requestID,
		Details:      map[string]any{"endpoint": endpoint, "limit": keyPrefix},
	})
}

// LogUploadRejected logs a file that failed validation. The filename is hashed.
func (sl *EventLogger) LogUploadRejected(ctx context.Context, requestID, filename, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventUploadRejected,
		SubjectType:  "file",
		SubjectValue: HashValue(filename),
		RequestID:    requestID,
		Details:      map[string]any{"reason": reason, "extension": extensionOf(filename)},
	})
}

// LogScanResult logs infected files and scanner failures. Clean results are not logged.
func (sl *EventLogger) LogScanResult(ctx context.Context, requestID, filename, scanner, threat string, scanErr error) {
	event := SecurityEvent{
		SubjectType:  "file",
		SubjectValue: HashValue(filename),
		RequestID:    requestID,
		Details:      map[string]any{"scanner": scanner},
	}
	switch {
	case scanErr != nil:
		event.Event = EventScanFailed
		event.Details["error"] = scanErr.Error()
	case threat != "":
		event.Event = EventMalwareDetected
		event.Details["threat"] = threat
	default:
		return
	}
	sl.Log(ctx, event)
}

// LogUserChange logs account creation and deletion.
func (sl *EventLogger) LogUserChange(ctx context.Context, event EventType, requestID string, userID int64, email string) {
	e := SecurityEvent{
		Event:     event,
		RequestID: requestID,
		Details:   map[string]any{"user_id": userID},
	}
	if email != "" {
		e.SubjectType = "email"
		e.SubjectValue = MaskEmail(email)
	}
	sl.Log(ctx, e)
}

// Sync flushes any buffered log entries
func (sl *EventLogger) Sync() error {
	if sl == nil || sl.zapLogger == nil {
		return nil
	}
	return sl.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return "***" + email[1:]
	}
	return email[:1] + "***" + email[at:]
}

// HashValue creates a short SHA256 fingerprint of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

func extensionOf(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i != -1 {
		return strings.ToLower(filename[i:])
	}
	return ""
}

func getEnvironment() string {
	if os.Getenv("GIN_MODE") == "release" {
		return "production"
	}
	return "development"
}
