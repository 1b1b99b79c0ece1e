package security

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go-jobboard-backend/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

// LoginTrackerConfig holds configuration for login tracking
type LoginTrackerConfig struct {
	MaxAttempts   int           // failed attempts before a block (default: 5)
	AttemptWindow time.Duration // window for counting attempts (default: 15min)
	BlockDuration time.Duration // how long a block lasts (default: 15min)
}

func DefaultLoginTrackerConfig() LoginTrackerConfig {
	return LoginTrackerConfig{
		MaxAttempts:   5,
		AttemptWindow: 15 * time.Minute,
		BlockDuration: 15 * time.Minute,
	}
}

// LoginTracker counts failed logins per email and blocks the email after too
// many. Counts live in Redis when it is available and in process memory
// otherwise.
type LoginTracker struct {
	config  LoginTrackerConfig
	client  func() *goredis.Client
	auditor *Auditor
	now     func() time.Time

	mu     sync.Mutex
	memory map[string]*memoryAttempts
}

type memoryAttempts struct {
	count        int
	resetAt      time.Time
	blockedUntil time.Time
}

const (
	failLoginPrefix    = "fail:login:user:"
	blockedLoginPrefix = "blocked:login:user:"
)

// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns the new count.
var incrWithTTL = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`)

// NewLoginTracker creates a tracker backed by the shared Redis client.
func NewLoginTracker(config LoginTrackerConfig, auditor *Auditor) *LoginTracker {
	return newLoginTracker(config, auditor, redis.Client)
}

func newLoginTracker(config LoginTrackerConfig, auditor *Auditor, client func() *goredis.Client) *LoginTracker {
	def := DefaultLoginTrackerConfig()
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = def.MaxAttempts
	}
	if config.AttemptWindow <= 0 {
		config.AttemptWindow = def.AttemptWindow
	}
	if config.BlockDuration <= 0 {
		config.BlockDuration = def.BlockDuration
	}
	if auditor == nil {
		auditor = Default()
	}
	return &LoginTracker{
		config:  config,
		client:  client,
		auditor: auditor,
		now:     time.Now,
		memory:  map[string]*memoryAttempts{},
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsBlocked reports whether logins for email are currently blocked.
func (lt *LoginTracker) IsBlocked(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if client := lt.client(); client != nil {
		n, err := client.Exists(ctx, blockedLoginPrefix+email).Result()
		if err != nil {
			return false, fmt.Errorf("check login block: %w", err)
		}
		return n > 0, nil
	}

	lt.mu.Lock()
	defer lt.mu.Unlock()
	e, ok := lt.memory[email]
	return ok && lt.now().Before(e.blockedUntil), nil
}

// RecordFailure counts a failed login and blocks the email once the limit is
// reached. It reports whether the email is now blocked.
func (lt *LoginTracker) RecordFailure(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	lt.auditor.Log(ctx, Event{Type: EventLoginFailed, SubjectType: "email", SubjectValue: email})

	var count int
	if client := lt.client(); client != nil {
		ttl := int(lt.config.AttemptWindow.Seconds())
		n, err := incrWithTTL.Run(ctx, client, []string{failLoginPrefix + email}, ttl).Int()
		if err != nil {
			return false, fmt.Errorf("count failed login: %w", err)
		}
		count = n
	} else {
		count = lt.memoryIncrement(email)
	}

	if count < lt.config.MaxAttempts {
		return false, nil
	}
	if err := lt.block(ctx, email); err != nil {
		return true, err
	}
	lt.auditor.Log(ctx, Event{
		Type:         EventBlockCreated,
		SubjectType:  "email",
		SubjectValue: email,
		Details:      map[string]interface{}{"duration_minutes": int(lt.config.BlockDuration.Minutes())},
	})
	return true, nil
}

func (lt *LoginTracker) memoryIncrement(email string) int {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	now := lt.now()
	e, ok := lt.memory[email]
	if !ok || now.After(e.resetAt) {
		e = &memoryAttempts{resetAt: now.Add(lt.config.AttemptWindow), blockedUntil: blockedUntil(e)}
		lt.memory[email] = e
	}
	e.count++
	return e.count
}

func blockedUntil(e *memoryAttempts) time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.blockedUntil
}

func (lt *LoginTracker) block(ctx context.Context, email string) error {
	if client := lt.client(); client != nil {
		return client.Set(ctx, blockedLoginPrefix+email, "1", lt.config.BlockDuration).Err()
	}
	lt.mu.Lock()
	defer lt.mu.Unlock()
	if e, ok := lt.memory[email]; ok {
		e.blockedUntil = lt.now().Add(lt.config.BlockDuration)
	}
	return nil
}

// Clear forgets failed attempts after a successful login. An active block is
// left in place.
func (lt *LoginTracker) Clear(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if client := lt.client(); client != nil {
		err := client.Del(ctx, failLoginPrefix+email).Err()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return fmt.Errorf("clear failed logins: %w", err)
		}
		return nil
	}

	lt.mu.Lock()
	defer lt.mu.Unlock()
	if e, ok := lt.memory[email]; ok {
		e.count = 0
	}
	return nil
}
