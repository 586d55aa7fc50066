package reading

// Profiles provides a city's latest known readings. Lookup is
// case-insensitive; the second return is false for unknown cities.
type Profiles interface {
	Lookup(city string) (Set, bool)
}

// Resolver merges a city's default readings with explicit request overrides.
type Resolver struct {
	profiles Profiles
}

// NewResolver creates a Resolver over the given profiles. A nil Profiles is
// treated as an always-empty source.
func NewResolver(profiles Profiles) *Resolver {
	return &Resolver{profiles: profiles}
}

// Resolve builds the final reading set for a request.
//
// With a non-empty city that the profile source knows, the city's stored
// readings form the base; an unknown city silently degrades to an empty base.
// Explicit values then overwrite the base field by field, so an explicit
// reading always wins over a stored default. Fields absent from both stay
// absent: the resolver never substitutes zeros.
func (r *Resolver) Resolve(city string, explicit Set) Set {
	base := Set{}
	if city != "" && r.profiles != nil {
		if stored, ok := r.profiles.Lookup(city); ok {
			base = stored.Clone()
		}
	}

	for _, f := range Fields {
		if v, ok := explicit[f]; ok {
			base[f] = v
		}
	}
	return base
}
