package word

import (
	"errors"
	"fmt"
	"math"

	"github.com/xpslvs/stackr/stack"
)

// ErrInvalidArgument is returned when a word's numeric argument is not a non-negative integer
// or exceeds the limit of the word.
var ErrInvalidArgument = errors.New("invalid argument")

// MaxCapacity is the largest capacity a stack may be resized to from user input.
const MaxCapacity = 1 << 20

// CheckCapacity reports whether n is usable as a stack capacity.
func CheckCapacity(n int) error {
	if n < 0 || n > MaxCapacity {
		return fmt.Errorf("capacity %d out of range [0, %d]: %w", n, MaxCapacity, ErrInvalidArgument)
	}
	return nil
}

// Builtins returns the builtin vocabulary: the stack shuffling words and the arithmetic they are usually combined with.
func Builtins() []*Word {
	return []*Word{
		{Name: "dup", Effect: "( a -- a a )", Description: "Duplicate the top element", Fn: (*Stack).Dup},
		{Name: "drop", Effect: "( a b -- a )", Description: "Discard the top element", Fn: (*Stack).Drop},
		{Name: "swap", Effect: "( a b -- b a )", Description: "Exchange the two top elements", Fn: (*Stack).Swap},
		{Name: "over", Effect: "( a b -- a b a )", Description: "Copy the second element to the top", Fn: (*Stack).Over},
		{Name: "rot", Effect: "( a b c -- b c a )", Description: "Rotate the third element to the top", Fn: (*Stack).Rot},
		{Name: "nip", Effect: "( a b c -- a c )", Description: "Discard the second element", Fn: (*Stack).Nip},
		{Name: "tuck", Effect: "( a b c -- a c b c )", Description: "Copy the top element below the second", Fn: (*Stack).Tuck},
		{Name: "pick", Effect: "( xn ... x0 n -- xn ... x0 xn )", Description: "Copy the element at depth n to the top", Fn: withDepth((*Stack).Pick)},
		{Name: "roll", Effect: "( xn ... x0 n -- ... x0 xn )", Description: "Move the element at depth n to the top", Fn: withDepth((*Stack).Roll)},
		{Name: "depth", Effect: "( -- n )", Description: "Push the number of elements on the stack", Fn: depth},
		{Name: "capacity", Effect: "( -- n )", Description: "Push the capacity of the stack", Fn: capacity},
		{Name: "clear", Effect: "( ... -- )", Description: "Remove every element, keeping the capacity", Fn: clearAll},
		{Name: "realloc", Effect: "( n -- )", Description: "Resize the stack to n slots, truncating from the top", Fn: realloc},
		{Name: "+", Effect: "( a b -- a+b )", Description: "Add", Fn: binary(func(a, b float64) float64 { return a + b })},
		{Name: "-", Effect: "( a b -- a-b )", Description: "Subtract", Fn: binary(func(a, b float64) float64 { return a - b })},
		{Name: "*", Effect: "( a b -- a*b )", Description: "Multiply", Fn: binary(func(a, b float64) float64 { return a * b })},
		{Name: "/", Effect: "( a b -- a/b )", Description: "Divide", Fn: nonZero(binary(func(a, b float64) float64 { return a / b }))},
		{Name: "mod", Effect: "( a b -- a%b )", Description: "Remainder of the division", Fn: nonZero(binary(math.Mod))},
		{Name: "min", Effect: "( a b -- min )", Description: "Keep the smaller of the two top elements", Fn: binary(math.Min)},
		{Name: "max", Effect: "( a b -- max )", Description: "Keep the larger of the two top elements", Fn: binary(math.Max)},
		{Name: "negate", Effect: "( a -- -a )", Description: "Negate the top element", Fn: unary(func(a float64) float64 { return -a })},
		{Name: "abs", Effect: "( a -- |a| )", Description: "Absolute value of the top element", Fn: unary(math.Abs)},
	}
}

// withDepth adapts a depth-taking primitive to take its depth from the top of the stack.
// The depth argument is restored when the primitive fails.
func withDepth(op func(s *Stack, n int) error) Func {
	return func(s *Stack) error {
		n, err := popIndex(s, math.MaxInt32)
		if err != nil {
			return err
		}
		if err := op(s, n); err != nil {
			_ = s.Push(float64(n))
			return err
		}
		return nil
	}
}

// popIndex pops the top element as an integer in [0, limit], leaving the stack untouched on failure.
func popIndex(s *Stack, limit int) (int, error) {
	top, ok := s.Top().Get()
	if !ok {
		return 0, stack.ErrUnderflow
	}
	if top < 0 || top != math.Trunc(top) || top > float64(limit) {
		return 0, fmt.Errorf("%v: %w", top, ErrInvalidArgument)
	}
	_, err := s.Pop()
	return int(top), err
}

func depth(s *Stack) error {
	return s.Push(float64(s.Len()))
}

func capacity(s *Stack) error {
	return s.Push(float64(s.Cap()))
}

func clearAll(s *Stack) error {
	s.Clear()
	return nil
}

func realloc(s *Stack) error {
	n, err := popIndex(s, MaxCapacity)
	if err != nil {
		return err
	}
	s.Reallocate(n)
	return nil
}

func binary(f func(a, b float64) float64) Func {
	return func(s *Stack) error {
		if s.Len() < 2 {
			return stack.ErrUnderflow
		}
		b, _ := s.Pop()
		a, _ := s.Pop()
		return s.Push(f(a, b))
	}
}

func unary(f func(a float64) float64) Func {
	return func(s *Stack) error {
		a, err := s.Pop()
		if err != nil {
			return err
		}
		return s.Push(f(a))
	}
}

// nonZero rejects a zero divisor before op runs.
func nonZero(op Func) Func {
	return func(s *Stack) error {
		if b, ok := s.Top().Get(); ok && b == 0 && s.Len() >= 2 {
			return ErrDivisionByZero
		}
		return op(s)
	}
}
