// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package proteotypic defines the result record exchanged between
// peptide scoring stages and downstream reporting. A Result carries
// the identity of one (protein, peptide) pair and the scores that
// each predictive method produced for it. The package holds no
// scoring logic; classifiers populate records and aggregators consume
// them.
package proteotypic

import "sort"

// Result holds the proteotypic prediction outcome for a single
// peptide of a single protein. It is a plain carrier: fields may be
// assigned directly, and any string is accepted for the identity
// fields, including the empty string.
//
// A Result is safe for concurrent readers once all writers are done.
// Concurrent mutation must be serialized by the caller; use Clone to
// hand an independent copy to another goroutine.
type Result struct {
	// Protein names the parent protein (e.g. a UniProt accession).
	// Not required to be unique across records.
	Protein string `json:"protein" yaml:"protein"`

	// Peptide is the peptide sequence this record scores.
	Peptide string `json:"peptide" yaml:"peptide"`

	// Scores maps a scoring-method name to that method's output for
	// this peptide. Later writes under the same name overwrite
	// earlier ones.
	Scores map[string]float64 `json:"scores,omitempty" yaml:"scores,omitempty"`
}

// NewResult returns a Result with empty identity fields and an empty,
// non-nil score map. The zero value is also usable: SetScore
// allocates the map on first write and Score treats a nil map as
// empty.
func NewResult() *Result {
	return &Result{Scores: make(map[string]float64)}
}

// SetScore stores value under the given scoring-method name,
// replacing any earlier value for the same name. Values are stored
// verbatim; rejecting NaN or out-of-range scores is the producer's
// responsibility.
func (r *Result) SetScore(method string, value float64) {
	if r.Scores == nil {
		r.Scores = make(map[string]float64)
	}
	r.Scores[method] = value
}

// Score returns the stored value for the given scoring-method name.
// The second return value reports whether the method has a score;
// when it is false the first return value is 0 and must not be read
// as a real score.
func (r *Result) Score(method string) (float64, bool) {
	v, ok := r.Scores[method]
	return v, ok
}

// Methods returns the scoring-method names present in the record,
// sorted, so consumers can iterate the score set in a stable order.
func (r *Result) Methods() []string {
	names := make([]string, 0, len(r.Scores))
	for name := range r.Scores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the record. The copy owns its own
// score map, so mutating one record never affects the other.
func (r *Result) Clone() *Result {
	c := &Result{
		Protein: r.Protein,
		Peptide: r.Peptide,
	}
	if r.Scores != nil {
		c.Scores = make(map[string]float64, len(r.Scores))
		for name, v := range r.Scores {
			c.Scores[name] = v
		}
	}
	return c
}
