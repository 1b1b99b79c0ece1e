package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
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
	EventLoginFailed        EventType = "login_failed"
	EventLoginBlocked       EventType = "login_blocked"
	EventLoginSuccess       EventType = "login_success"
	EventBlockCreated       EventType = "block_created"
	EventPasswordReset      EventType = "password_reset"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
)

// Event is one entry of the security audit trail.
type Event struct {
	Type EventType
	// "email", "ip" or "user_id". Emails are masked and user ids hashed.
	SubjectType  string
	SubjectValue string
	IP           string
	RequestID    string
	Details      map[string]interface{}
}

// Auditor writes security events as structured JSON, separately from the
// application log so they can be shipped and retained on their own.
type Auditor struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultAuditor *Auditor
	defaultMu      sync.RWMutex
)

// NewAuditor wraps an existing zap logger.
func NewAuditor(l *zap.Logger, serviceName, environment string) *Auditor {
	return &Auditor{zapLogger: l, serviceName: serviceName, environment: environment}
}

// InitAuditor builds the production auditor and makes it the default.
func InitAuditor(serviceName string) *Auditor {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	l, err := config.Build()
	if err != nil {
		l = zap.NewNop()
	}
	a := NewAuditor(l, serviceName, environment())
	SetDefault(a)
	return a
}

func SetDefault(a *Auditor) {
	defaultMu.Lock()
	defaultAuditor = a
	defaultMu.Unlock()
}

// Default returns the auditor set by InitAuditor, or a no-op one.
func Default() *Auditor {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultAuditor == nil {
		return NewAuditor(zap.NewNop(), "", "")
	}
	return defaultAuditor
}

// Log records a security event. Level is derived from the event type.
func (a *Auditor) Log(_ context.Context, e Event) {
	level := zapcore.WarnLevel
	switch e.Type {
	case EventLoginSuccess, EventPasswordReset:
		level = zapcore.InfoLevel
	case EventLoginBlocked, EventBlockCreated:
		level = zapcore.ErrorLevel
	}

	fields := []zap.Field{
		zap.String("service", a.serviceName),
		zap.String("env", a.environment),
		zap.String("event", string(e.Type)),
		zap.Time("occurred_at", time.Now().UTC()),
	}
	if e.SubjectType != "" {
		fields = append(fields,
			zap.String("subject_type", e.SubjectType),
			zap.String("subject_value", maskValue(e.SubjectType, e.SubjectValue)))
	}
	if e.IP != "" {
		fields = append(fields, zap.String("ip", e.IP))
	}
	if e.RequestID != "" {
		fields = append(fields, zap.String("request_id", e.RequestID))
	}
	if len(e.Details) > 0 {
		fields = append(fields, zap.Any("details", e.Details))
	}

	a.zapLogger.Log(level, string(e.Type), fields...)
}

// Sync flushes any buffered log entries
func (a *Auditor) Sync() error {
	return a.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if len(email) < 3 || at < 0 {
		return "***"
	}
	if at <= 1 {
		return "***" + email[at:]
	}
	return email[:1] + "***" + email[at:]
}

// HashValue returns a short SHA-256 fingerprint of value.
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

func maskValue(subjectType, value string) string {
	switch subjectType {
	case "email":
		return MaskEmail(value)
	case "ip":
		return value
	default:
		return HashValue(value)
	}
}

func environment() string {
	if os.Getenv("GIN_MODE") == "release" {
		return "production"
	}
	return "development"
}
