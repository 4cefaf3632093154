package domain

import "fmt"

// Item is one titled, genre-tagged entry of a catalog.
type Item struct {
	Title string `json:"title" yaml:"title"`
	Genre string `json:"genre" yaml:"genre"`
}

// Recommendation is a ranked (title, score) pair.
type Recommendation struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Outcome classifies how a single seed title was resolved.
type Outcome int

const (
	// OutcomeFound means the seed exists; its recommendations may still be empty (top_n = 0).
	OutcomeFound Outcome = iota
	// OutcomeNotFound means the seed title is not part of the catalog.
	OutcomeNotFound
	// OutcomeFailed means vectorization or similarity computation failed for this seed.
	OutcomeFailed
)

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name.
func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "found":
		*o = OutcomeFound
	case "not_found":
		*o = OutcomeNotFound
	case "failed":
		*o = OutcomeFailed
	default:
		return fmt.Errorf("unknown outcome %q", string(text))
	}
	return nil
}

// SeedResult is the result of recommending from a single seed title.
type SeedResult struct {
	Seed            string           `json:"seed"`
	Outcome         Outcome          `json:"status"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Found reports whether the seed was resolved.
func (r SeedResult) Found() bool {
	return r.Outcome == OutcomeFound
}

// AggregateResult is the summed ranking across several seeds plus the per-seed status.
type AggregateResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	Seeds           []SeedResult     `json:"seeds"`
}

// Unresolved returns the seeds that contributed nothing because they were missing or failed.
func (r AggregateResult) Unresolved() []string {
	var out []string
	for _, s := range r.Seeds {
		if s.Outcome != OutcomeFound {
			out = append(out, s.Seed)
		}
	}
	return out
}

// CacheStats reports similarity cache activity.
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Entries   int   `json:"entries"`
	Evictions int64 `json:"evictions"`
}
