package callcontext

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

type KeyContext string

var (
	keyStep         KeyContext = "call_step"
	keyRetryAttempt KeyContext = "call_retry_attempt"
	keyStartTime    KeyContext = "call_start_time"
)

// Metadata describes an outbound call in progress
type Metadata struct {
	Step         string
	RetryAttempt int
	StartTime    time.Time
}

// Begin derives a context bounded by timeout and tagged with the pipeline step.
// A non-positive timeout only tags the context.
func Begin(parent context.Context, step string, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := parent, context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, timeout)
	}

	ctx = context.WithValue(ctx, keyStep, step)
	ctx = context.WithValue(ctx, keyRetryAttempt, 0)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())

	return ctx, cancel
}

// Do runs fn, retrying retryable failures up to maxRetries extra times with
// exponential backoff. maxRetries == 0 means a single attempt.
func Do(ctx context.Context, maxRetries uint64, fn func(context.Context) error) error {
	attempt := 0
	op := func() error {
		callCtx := context.WithValue(ctx, keyRetryAttempt, attempt)
		attempt++

		err := fn(callCtx)
		if err == nil {
			return nil
		}
		if !IsRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 0

	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx))
}

// GetStep extracts the pipeline step from context
func GetStep(ctx context.Context) string {
	step, _ := ctx.Value(keyStep).(string)
	return step
}

// GetRetryAttempt extracts current retry attempt from context
func GetRetryAttempt(ctx context.Context) int {
	attempt, ok := ctx.Value(keyRetryAttempt).(int)
	if !ok {
		return 0
	}
	return attempt
}

// GetStartTime extracts call start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyStartTime).(time.Time)
	return startTime, ok
}

// Elapsed returns the time since Begin, or zero outside a call context
func Elapsed(ctx context.Context) time.Duration {
	start, ok := GetStartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(start)
}

// GetMetadata extracts all call metadata from context
func GetMetadata(ctx context.Context) *Metadata {
	startTime, _ := GetStartTime(ctx)
	return &Metadata{
		Step:         GetStep(ctx),
		RetryAttempt: GetRetryAttempt(ctx),
		StartTime:    startTime,
	}
}

// Retryable is implemented by errors that know whether a retry can help
type Retryable interface {
	Retryable() bool
}

// IsRetryableError checks if an error should trigger a retry.
// Deadline and cancellation errors are never retried: the call budget is spent.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var r Retryable
	if errors.As(err, &r) {
		return r.Retryable()
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "temporary failure")
}
