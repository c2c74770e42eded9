package source

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/snapcount/snapcount/internal/domain"
)

// Source kinds selectable via config.
const (
	KindDir      = "dir"
	KindSignal   = "signal"
	KindInterval = "interval"
)

// Options holds the knobs the factory needs; they map 1:1 onto the watch
// section of the config file.
type Options struct {
	Kind       string
	Dir        string
	Extensions []string
	Period     time.Duration
}

// New builds the event source selected by opts.Kind.
func New(opts Options, logger *slog.Logger) (domain.EventSource, error) {
	switch opts.Kind {
	case KindDir, "":
		if opts.Dir == "" {
			return nil, fmt.Errorf("directory source requires a watch directory")
		}
		return NewDir(opts.Dir, opts.Extensions, logger), nil
	case KindSignal:
		s, err := NewSignal()
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindInterval:
		return NewInterval(opts.Period), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", opts.Kind)
	}
}
