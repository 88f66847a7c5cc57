package database

import (
	"fmt"
	"math/rand"
	"net/url"
)

// SelectAlternativeReplica picks one replica database name from the
// candidate list. It is called exactly once per process context and the
// result is reused by every handle that accepts an alternative replica, so
// a partial replica outage affects all of them or none of them instead of
// being re-rolled per handle. An empty candidate list means no override.
func SelectAlternativeReplica(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[rand.Intn(len(candidates))]
}

// WithAlternativeReplica rewrites the database name (URL path) of replicaURL
// to point at the selected alternative replica. An empty selection returns
// the URL unchanged.
func WithAlternativeReplica(replicaURL, selected string) (string, error) {
	if selected == "" {
		return replicaURL, nil
	}
	parsed, err := url.Parse(replicaURL)
	if err != nil {
		return "", fmt.Errorf("parsing replica URL: %w", err)
	}
	parsed.Path = "/" + selected
	return parsed.String(), nil
}
