package backprop

import (
	"github.com/pkg/errors"
)

// Pattern is a single labeled sample: an input vector and the outputs the Network is expected to
// give for it. Patterns are immutable once created.
type Pattern struct {
	input, expected []float64
}

// NewPattern creates a Pattern from copies of the given vectors
func NewPattern(input, expected []float64) Pattern {
	p := Pattern{
		input:    make([]float64, len(input)),
		expected: make([]float64, len(expected)),
	}

	copy(p.input, input)
	copy(p.expected, expected)
	return p
}

// Input returns a copy of the input vector of the Pattern
func (p Pattern) Input() []float64 {
	in := make([]float64, len(p.input))
	copy(in, p.input)
	return in
}

// Expected returns a copy of the expected output vector of the Pattern
func (p Pattern) Expected() []float64 {
	ex := make([]float64, len(p.expected))
	copy(ex, p.expected)
	return ex
}

// Fits indicates whether or not the Pattern's dimensions match those of the Network, allowing it
// to be used for training or checking.
func (p Pattern) Fits(net *Network) bool {
	return net.checkPattern(p) == nil
}

// PatternSet is an in-memory, indexable PatternSource. The zero value is an empty set.
type PatternSet struct {
	patterns []Pattern
	index    int
}

// NewPatternSet returns a PatternSet containing the given patterns, in order.
func NewPatternSet(patterns ...Pattern) *PatternSet {
	ps := make([]Pattern, len(patterns))
	copy(ps, patterns)
	return &PatternSet{patterns: ps}
}

// Data converts a 3D dataset of float64 to a PatternSet. dataset indexing is:
// [pattern index][inputs, outputs][values]
//
// N.B.: Data does not check if the data fit a certain network; that will be done during training
// and checking.
func Data(dataset [][][]float64) (*PatternSet, error) {
	if len(dataset) == 0 {
		return nil, errors.Errorf("dataset has no data (len == 0)")
	}

	ps := make([]Pattern, len(dataset))
	for i := range dataset {
		if len(dataset[i]) < 2 {
			return nil, errors.Errorf("dataset lacks required data at index %d (len([%d]) < 2)", i, i)
		}

		ps[i] = NewPattern(dataset[i][0], dataset[i][1])
	}

	return &PatternSet{patterns: ps}, nil
}

// Add appends the patterns to the end of the set
func (s *PatternSet) Add(patterns ...Pattern) {
	s.patterns = append(s.patterns, patterns...)
}

// Clone returns a PatternSet with the same patterns and its own position, starting at the first
// pattern. Patterns added to either set afterwards are not seen by the other.
func (s *PatternSet) Clone() *PatternSet {
	return &PatternSet{patterns: s.patterns[:len(s.patterns):len(s.patterns)]}
}

// At returns the pattern at index i. At will panic if i is out of range.
func (s *PatternSet) At(i int) Pattern {
	return s.patterns[i]
}

func (s *PatternSet) Size() int {
	return len(s.patterns)
}

func (s *PatternSet) IsEmpty() bool {
	return len(s.patterns) == 0
}

func (s *PatternSet) Rewind() {
	s.index = 0
}

func (s *PatternSet) HasNext() bool {
	return s.index < len(s.patterns)
}

func (s *PatternSet) Next() (Pattern, error) {
	if !s.HasNext() {
		return Pattern{}, ErrSourceExhausted
	}

	p := s.patterns[s.index]
	s.index++
	return p, nil
}
