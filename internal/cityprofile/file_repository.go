package cityprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/airadvisor/airadvisor/internal/reading"
)

// FileRepository loads city profiles from a JSON document keyed by city name,
// where each city carries its latest observed inputs:
//
//	{"Manila": {"latest_inputs": {"pm25": 22.5, "pm10": 41, ...}}, ...}
//
// Unrecognized fields and non-numeric values are dropped per field.
type FileRepository struct {
	path string
}

// NewFileRepository creates a file-backed city profile repository.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

type cityDocument struct {
	LatestInputs map[string]any `json:"latest_inputs"`
}

// LoadProfiles reads and decodes the profile file.
func (r *FileRepository) LoadProfiles(_ context.Context) (map[string]reading.Set, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	var doc map[string]cityDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode city profiles %s: %w", r.path, err)
	}

	profiles := make(map[string]reading.Set, len(doc))
	for city, entry := range doc {
		set := reading.Set{}
		for field, raw := range entry.LatestInputs {
			f := reading.Field(field)
			if !reading.Known(f) {
				continue
			}
			if v, ok := reading.Coerce(raw); ok {
				set[f] = v
			}
		}
		profiles[city] = set
	}
	return profiles, nil
}
