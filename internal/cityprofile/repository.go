package cityprofile

import (
	"context"
	"errors"

	"github.com/airadvisor/airadvisor/internal/reading"
)

// ErrSourceUnavailable is returned when a profile source cannot be read.
var ErrSourceUnavailable = errors.New("city profile source unavailable")

// Repository loads city profiles from a backing source. It is consulted once
// at startup; the resulting Store never changes afterwards.
type Repository interface {
	// LoadProfiles returns the latest known readings per city name.
	LoadProfiles(ctx context.Context) (map[string]reading.Set, error)
}
