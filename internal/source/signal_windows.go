//go:build windows

package source

import (
	"context"
	"errors"

	"github.com/snapcount/snapcount/internal/domain"
)

// Signal is unsupported on Windows; there is no SIGUSR1 equivalent.
type Signal struct{}

func NewSignal() (*Signal, error) {
	return nil, errors.New("signal source is not supported on windows")
}

func (s *Signal) Subscribe(ctx context.Context) (<-chan domain.Event, error) {
	return nil, errors.New("signal source is not supported on windows")
}
