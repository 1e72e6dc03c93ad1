package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchResults holds every match found by one search invocation together
// with the terms and location that produced them.
type SearchResults struct {
	results        []Match
	searchTerms    []string
	searchLocation string
	runID          string
	startedAt      time.Time
}

// NewSearchResults creates an empty aggregator. The terms and location are
// fixed for the lifetime of the aggregator.
func NewSearchResults(terms []string, location string) *SearchResults {
	t := make([]string, len(terms))
	copy(t, terms)
	return &SearchResults{
		results:        make([]Match, 0),
		searchTerms:    t,
		searchLocation: location,
		runID:          uuid.New().String(),
		startedAt:      time.Now(),
	}
}

// Add appends a match in discovery order
func (r *SearchResults) Add(m Match) {
	r.results = append(r.results, m)
}

// AddResult builds a match from its fields and appends it
func (r *SearchResults) AddResult(filePath string, lineNumber int, lineContent string, opts ...MatchOption) {
	r.Add(NewMatch(filePath, lineNumber, lineContent, opts...))
}

// Len returns the number of matches
func (r *SearchResults) Len() int {
	return len(r.results)
}

// IsEmpty returns true if nothing matched
func (r *SearchResults) IsEmpty() bool {
	return len(r.results) == 0
}

// Results returns a copy of the matches in discovery order
func (r *SearchResults) Results() []Match {
	out := make([]Match, len(r.results))
	copy(out, r.results)
	return out
}

// UniqueFiles returns the number of distinct file paths among the matches
func (r *SearchResults) UniqueFiles() int {
	seen := make(map[string]struct{}, len(r.results))
	for _, m := range r.results {
		seen[m.FilePath] = struct{}{}
	}
	return len(seen)
}

// SearchTerms returns the terms in the order the caller gave them
func (r *SearchResults) SearchTerms() []string {
	t := make([]string, len(r.searchTerms))
	copy(t, r.searchTerms)
	return t
}

// SearchLocation returns the absolute search root
func (r *SearchResults) SearchLocation() string {
	return r.searchLocation
}

// RunID identifies this invocation in exported artifacts
func (r *SearchResults) RunID() string {
	return r.runID
}

// StartedAt returns when the aggregator was created
func (r *SearchResults) StartedAt() time.Time {
	return r.startedAt
}
