package main

// Stack is a bounded LIFO of discs. Index 0 is the bottom.
// The zero value has no capacity and drops every push.
type Stack struct {
	discs []Disc
}

func NewStack(capacity int) Stack {
	return Stack{discs: make([]Disc, 0, capacity)}
}

// Push places d on top. It reports false and leaves the stack unchanged when
// the stack is already full.
func (s *Stack) Push(d Disc) bool {
	if len(s.discs) >= cap(s.discs) {
		return false
	}
	s.discs = append(s.discs, d)
	return true
}

func (s *Stack) Pop() (Disc, bool) {
	if len(s.discs) == 0 {
		return Disc{}, false
	}
	d := s.discs[len(s.discs)-1]
	s.discs = s.discs[:len(s.discs)-1]
	return d, true
}

func (s *Stack) Peek() (Disc, bool) {
	if len(s.discs) == 0 {
		return Disc{}, false
	}
	return s.discs[len(s.discs)-1], true
}

func (s *Stack) Len() int {
	return len(s.discs)
}

func (s *Stack) Cap() int {
	return cap(s.discs)
}

// At returns the i-th disc counting from the bottom.
func (s *Stack) At(i int) Disc {
	return s.discs[i]
}
