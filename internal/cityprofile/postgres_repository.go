package cityprofile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/airadvisor/airadvisor/internal/reading"
)

// PostgresRepository loads city profiles from the city_profiles table, where
// readings are stored as a JSONB field-to-value object.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed city profile repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// LoadProfiles reads the latest readings for every city.
func (r *PostgresRepository) LoadProfiles(ctx context.Context) (map[string]reading.Set, error) {
	query := `
		SELECT city, readings
		FROM city_profiles
		ORDER BY city
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query city profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(map[string]reading.Set)
	for rows.Next() {
		var (
			city         string
			readingsJSON []byte
		)
		if err := rows.Scan(&city, &readingsJSON); err != nil {
			return nil, fmt.Errorf("scan city profile: %w", err)
		}

		var raw map[string]any
		if err := json.Unmarshal(readingsJSON, &raw); err != nil {
			return nil, fmt.Errorf("decode readings for %s: %w", city, err)
		}

		set := reading.Set{}
		for field, value := range raw {
			f := reading.Field(field)
			if !reading.Known(f) {
				continue
			}
			if v, ok := reading.Coerce(value); ok {
				set[f] = v
			}
		}
		profiles[city] = set
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate city profiles: %w", err)
	}

	return profiles, nil
}

var _ Repository = (*PostgresRepository)(nil)
var _ Repository = (*FileRepository)(nil)
