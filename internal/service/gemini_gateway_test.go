package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"legal-ai-analyzer/internal/domain"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type sleepRecorder struct {
	delays []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return nil
}

func newTestGateway() (*GeminiGateway, *sleepRecorder) {
	rec := &sleepRecorder{}
	gw := &GeminiGateway{
		model:  "test-model",
		logger: testLogger{},
		sleep:  rec.sleep,
	}
	return gw, rec
}

func rateLimitErr() error {
	return &googleapi.Error{Code: 429, Message: "Resource has been exhausted"}
}

func TestGenerateWithRetrySuccessFirstAttempt(t *testing.T) {
	gw, rec := newTestGateway()

	attempts := 0
	text, err := gw.generateWithRetry(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		return "analysis text", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "analysis text" {
		t.Errorf("text = %q", text)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
	if len(rec.delays) != 0 {
		t.Errorf("slept %v, want no sleeps", rec.delays)
	}
}

func TestGenerateWithRetryBackoffSchedule(t *testing.T) {
	gw, rec := newTestGateway()

	attempts := 0
	text, err := gw.generateWithRetry(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", rateLimitErr()
		}
		return "late success", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "late success" {
		t.Errorf("text = %q", text)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}

	want := []time.Duration{5 * time.Second, 10 * time.Second}
	if len(rec.delays) != len(want) {
		t.Fatalf("sleep schedule = %v, want %v", rec.delays, want)
	}
	for i := range want {
		if rec.delays[i] != want[i] {
			t.Errorf("delay[%d] = %v, want %v", i, rec.delays[i], want[i])
		}
	}
}

func TestGenerateWithRetryExhaustion(t *testing.T) {
	gw, rec := newTestGateway()

	attempts := 0
	_, err := gw.generateWithRetry(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		return "", rateLimitErr()
	})
	if !errors.Is(err, domain.ErrModelOverloaded) {
		t.Fatalf("err = %v, want ErrModelOverloaded", err)
	}
	if strings.Contains(err.Error(), "Resource has been exhausted") {
		t.Error("exhaustion must not leak the raw provider error")
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if len(rec.delays) != 2 {
		t.Errorf("slept %d times, want 2", len(rec.delays))
	}
}

func TestGenerateWithRetryNonRetryableAborts(t *testing.T) {
	gw, rec := newTestGateway()

	attempts := 0
	_, err := gw.generateWithRetry(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		return "", errors.New("invalid argument: bad prompt")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid argument: bad prompt") {
		t.Errorf("provider detail missing from error: %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
	if len(rec.delays) != 0 {
		t.Errorf("slept %v, want no sleeps", rec.delays)
	}
}

func TestGenerateWithRetrySleepAborted(t *testing.T) {
	gw, _ := newTestGateway()
	gw.sleep = func(ctx context.Context, d time.Duration) error {
		return context.Canceled
	}

	_, err := gw.generateWithRetry(context.Background(), func(ctx context.Context) (string, error) {
		return "", rateLimitErr()
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"googleapi 429", &googleapi.Error{Code: 429}, true},
		{"wrapped googleapi 429", fmt.Errorf("call failed: %w", &googleapi.Error{Code: 429}), true},
		{"googleapi 400", &googleapi.Error{Code: 400}, false},
		{"grpc resource exhausted", status.Error(codes.ResourceExhausted, "quota"), true},
		{"grpc invalid argument", status.Error(codes.InvalidArgument, "bad"), false},
		{"flattened 429 string", errors.New("rpc error: code 429 too many requests"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRateLimited(tt.err); got != tt.want {
				t.Errorf("isRateLimited(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestSleepContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sleepContext(ctx, time.Minute); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
