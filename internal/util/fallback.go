package util

import (
	"context"
	"errors"
	"log"
)

// ErrNoProvider is returned when a call has neither a live provider nor a mock.
var ErrNoProvider = errors.New("no provider configured")

// ProviderCall wraps one call to an external provider.
//
// Live is nil when the provider is not configured (mock mode); Mock is then
// used. When Live fails the error is logged and either returned, or, when
// Degrade is set, swallowed in favour of Mock.
type ProviderCall[T any] struct {
	Name    string
	Live    func(ctx context.Context) (T, error)
	Mock    func() T
	Degrade bool
}

func (p ProviderCall[T]) Do(ctx context.Context) (T, error) {
	var zero T
	if p.Live == nil {
		if p.Mock == nil {
			return zero, ErrNoProvider
		}
		return p.Mock(), nil
	}

	result, err := p.Live(ctx)
	if err == nil {
		return result, nil
	}
	log.Printf("[%s] provider call failed: %v", p.Name, err)
	if p.Degrade && p.Mock != nil {
		log.Printf("[%s] falling back to rule-based/mock result", p.Name)
		return p.Mock(), nil
	}
	return zero, err
}
