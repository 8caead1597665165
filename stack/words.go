package stack

// Dup duplicates the top element.
//
//	( a -- a a )
func (s *Stack[T]) Dup() error {
	return s.Pick(0)
}

// Drop discards the top element.
//
//	( a b -- a )
func (s *Stack[T]) Drop() error {
	_, err := s.Pop()
	return err
}

// Swap exchanges the two top elements.
//
//	( a b -- b a )
func (s *Stack[T]) Swap() error {
	return s.Roll(1)
}

// Over copies the second element to the top.
//
//	( a b -- a b a )
func (s *Stack[T]) Over() error {
	return s.Pick(1)
}

// Rot rotates the third element to the top.
//
//	( a b c -- b c a )
func (s *Stack[T]) Rot() error {
	return s.Roll(2)
}

// Nip discards the second element.
//
//	( a b c -- a c )
func (s *Stack[T]) Nip() error {
	if s.size < 2 {
		return ErrUnderflow
	}
	if err := s.Swap(); err != nil {
		return err
	}
	return s.Drop()
}

// Tuck copies the top element below the second one.
//
//	( a b c -- a c b c )
func (s *Stack[T]) Tuck() error {
	if s.size < 2 {
		return ErrUnderflow
	}
	if s.size >= len(s.items) {
		return ErrOverflow
	}
	if err := s.Swap(); err != nil {
		return err
	}
	return s.Over()
}
