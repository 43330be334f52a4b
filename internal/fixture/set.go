package fixture

// Set is an ordered, immutable collection of test cases. A Set is safe for
// concurrent use by any number of readers.
type Set struct {
	cases []TestCase
	index map[int]int
}

// New validates cases and builds a Set that preserves their order. The input
// slice is copied; later changes to it do not affect the Set.
func New(cases []TestCase) (*Set, error) {
	if err := Validate(cases); err != nil {
		return nil, err
	}
	set := &Set{
		cases: make([]TestCase, len(cases)),
		index: make(map[int]int, len(cases)),
	}
	for i, tc := range cases {
		set.cases[i] = tc.clone()
		set.index[tc.ID] = i
	}
	return set, nil
}

// MustNew is like New but panics if the cases are invalid. It is intended for
// package-level fixture tables.
func MustNew(cases []TestCase) *Set {
	set, err := New(cases)
	if err != nil {
		panic(err)
	}
	return set
}

// All returns every case in declaration order.
func (s *Set) All() []TestCase {
	out := make([]TestCase, len(s.cases))
	for i, tc := range s.cases {
		out[i] = tc.clone()
	}
	return out
}

// ByID returns the case with the given id or a *NotFoundError.
func (s *Set) ByID(id int) (TestCase, error) {
	i, ok := s.index[id]
	if !ok {
		return TestCase{}, &NotFoundError{ID: id}
	}
	return s.cases[i].clone(), nil
}

// Len returns the number of cases.
func (s *Set) Len() int {
	return len(s.cases)
}

// IDs returns case ids in declaration order.
func (s *Set) IDs() []int {
	ids := make([]int, len(s.cases))
	for i, tc := range s.cases {
		ids[i] = tc.ID
	}
	return ids
}

// Lint reports non-fatal findings for the set.
func (s *Set) Lint() []Issue {
	return Lint(s.cases)
}
