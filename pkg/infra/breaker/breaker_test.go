package breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestNewCircuitBreaker(t *testing.T) {
	cb := NewCircuitBreaker("redis", Settings{Timeout: 30 * time.Second, MaxFailures: 3})

	wrapper, ok := cb.(*circuitBreakerWrapper)
	assert.True(t, ok)
	assert.Equal(t, "redis", wrapper.breaker.Name())
	assert.Equal(t, "redis", cb.Name())
	assert.Equal(t, gobreaker.StateClosed, wrapper.breaker.State())
}

func TestCircuitBreaker_ExecuteSuccess(t *testing.T) {
	cb := NewCircuitBreaker("success", Settings{Timeout: 30 * time.Second, MaxFailures: 3})

	assert.NoError(t, cb.Execute(func() error { return nil }))
}

func TestCircuitBreaker_ExecuteWrapsError(t *testing.T) {
	cb := NewCircuitBreaker("kafka", Settings{Timeout: 30 * time.Second, MaxFailures: 3})
	original := errors.New("delivery failed")

	err := cb.Execute(func() error { return original })

	assert.ErrorIs(t, err, original)
	assert.Contains(t, err.Error(), "breaker (kafka)")
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker("trip", Settings{Timeout: 30 * time.Second, MaxFailures: 2})
	wrapper := cb.(*circuitBreakerWrapper)

	_ = cb.Execute(func() error { return errors.New("failure 1") })
	assert.Equal(t, gobreaker.StateClosed, wrapper.breaker.State())
	_ = cb.Execute(func() error { return errors.New("failure 2") })
	assert.Equal(t, gobreaker.StateOpen, wrapper.breaker.State())

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestCircuitBreaker_Recovers(t *testing.T) {
	cb := NewCircuitBreaker("recovery", Settings{Timeout: 50 * time.Millisecond, MaxFailures: 1})
	wrapper := cb.(*circuitBreakerWrapper)

	assert.Error(t, cb.Execute(func() error { return errors.New("trigger") }))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, gobreaker.StateHalfOpen, wrapper.breaker.State())

	assert.NoError(t, cb.Execute(func() error { return nil }))
	assert.NotEqual(t, gobreaker.StateOpen, wrapper.breaker.State())
}

func TestCircuitBreaker_Counts(t *testing.T) {
	cb := NewCircuitBreaker("counts", Settings{Timeout: 30 * time.Second, MaxFailures: 3})
	wrapper := cb.(*circuitBreakerWrapper)

	_ = cb.Execute(func() error { return nil })                //nolint:errcheck
	_ = cb.Execute(func() error { return errors.New("fail") }) //nolint:errcheck
	_ = cb.Execute(func() error { return nil })                //nolint:errcheck

	counts := wrapper.breaker.Counts()
	assert.Equal(t, uint32(3), counts.Requests)
	assert.Equal(t, uint32(2), counts.TotalSuccesses)
	assert.Equal(t, uint32(1), counts.TotalFailures)
	assert.Equal(t, uint32(0), counts.ConsecutiveFailures)
}
