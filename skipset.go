package sheetimport

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// SkipSet holds 1-indexed row or column indices
// that are excluded from extraction.
//
// A nil SkipSet is valid and contains no indices.
type SkipSet map[int]struct{}

// NewSkipSet returns a SkipSet containing the passed indices.
func NewSkipSet(indices ...int) SkipSet {
	s := make(SkipSet, len(indices))
	for _, index := range indices {
		s[index] = struct{}{}
	}
	return s
}

// ParseSkipSet parses a comma separated list of indices
// and index ranges like "2,5-8" into a SkipSet,
// expanding every range to its individual indices.
// An empty string results in a nil SkipSet.
func ParseSkipSet(str string) (SkipSet, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, nil
	}
	s := make(SkipSet)
	for _, part := range strings.Split(str, ",") {
		part = strings.TrimSpace(part)
		first, last, isRange := strings.Cut(part, "-")
		from, err := strconv.Atoi(strings.TrimSpace(first))
		if err != nil {
			return nil, fmt.Errorf("can't parse skip index %q: %w", part, err)
		}
		to := from
		if isRange {
			to, err = strconv.Atoi(strings.TrimSpace(last))
			if err != nil {
				return nil, fmt.Errorf("can't parse skip range %q: %w", part, err)
			}
		}
		if from < 1 || to < from {
			return nil, fmt.Errorf("invalid skip range %q", part)
		}
		s.AddRange(from, to)
	}
	return s, nil
}

// Add adds the passed index to the set.
func (s SkipSet) Add(index int) {
	s[index] = struct{}{}
}

// AddRange adds all indices from first to last inclusive to the set.
func (s SkipSet) AddRange(first, last int) {
	for index := first; index <= last; index++ {
		s[index] = struct{}{}
	}
}

// Contains reports if the passed index is a member of the set.
// Always false for a nil SkipSet.
func (s SkipSet) Contains(index int) bool {
	_, ok := s[index]
	return ok
}

// String returns the sorted indices of the set
// as comma separated list.
//
// String implements the fmt.Stringer interface.
func (s SkipSet) String() string {
	indices := make([]int, 0, len(s))
	for index := range s {
		indices = append(indices, index)
	}
	slices.Sort(indices)
	var b strings.Builder
	for i, index := range indices {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(index))
	}
	return b.String()
}
