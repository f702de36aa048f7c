package suggest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"regexp"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// RetryAction identifies why a failed completion is retried (or not).
type RetryAction int

const (
	RetryNone        RetryAction = iota
	RetryRateLimited             // HTTP 429 / quota exhausted.
	RetryServerError             // HTTP 5xx.
	RetryTimeout                 // Per-call deadline or network timeout.
)

func (a RetryAction) String() string {
	switch a {
	case RetryRateLimited:
		return "rate limited"
	case RetryServerError:
		return "server error"
	case RetryTimeout:
		return "timeout"
	}
	return "none"
}

// Fallback patterns for backends whose error types carry no status code.
var (
	reRateLimited = regexp.MustCompile(`\b429\b|RESOURCE_EXHAUSTED|(?i:rate limit)`)
	reServerError = regexp.MustCompile(`\b(500|502|503|504)\b|\bUNAVAILABLE\b|\bINTERNAL\b`)
)

// Classify maps a completion error to a RetryAction. Cancellation of the
// caller's context is never retryable.
func Classify(err error) RetryAction {
	if err == nil || errors.Is(err, context.Canceled) {
		return RetryNone
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return RetryTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return RetryTimeout
	}

	if code := statusCode(err); code != 0 {
		return classifyStatus(code)
	}

	msg := err.Error()
	switch {
	case reRateLimited.MatchString(msg):
		return RetryRateLimited
	case reServerError.MatchString(msg):
		return RetryServerError
	}
	return RetryNone
}

func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

func classifyStatus(code int) RetryAction {
	switch {
	case code == http.StatusTooManyRequests:
		return RetryRateLimited
	case code >= 500:
		return RetryServerError
	}
	return RetryNone
}

// RetryState tracks retry attempts for one completion.
type RetryState struct {
	Attempt    int
	MaxRetries int
	Base       time.Duration
}

// NewRetryState allows maxRetries retries after the first call, with
// exponential backoff starting at base.
func NewRetryState(maxRetries int, base time.Duration) *RetryState {
	return &RetryState{MaxRetries: maxRetries, Base: base}
}

// Advance records a failed call and reports whether (and why) to retry.
// Returns RetryNone when err is not transient or retries are exhausted.
func (s *RetryState) Advance(err error) RetryAction {
	s.Attempt++
	if s.Attempt > s.MaxRetries {
		return RetryNone
	}
	return Classify(err)
}

// Delay is the wait before the next attempt: Base doubled per attempt, and
// doubled once more when rate limited.
func (s *RetryState) Delay(a RetryAction) time.Duration {
	d := s.Base << (s.Attempt - 1)
	if a == RetryRateLimited {
		d *= 2
	}
	return d
}
