package stack

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func fixture(capacity int, items ...int) *Stack[int] {
	s, err := FromSlice(capacity, items)
	if err != nil {
		panic(err)
	}
	return s
}

func TestNew(t *testing.T) {
	Convey("Given a new stack", t, func() {
		s := New[int](3)

		Convey("It should be empty with the requested capacity", func() {
			So(s.Len(), ShouldEqual, 0)
			So(s.Cap(), ShouldEqual, 3)
			So(s.Items(), ShouldBeEmpty)
		})

		Convey("The zero value should reject pushes", func() {
			var z Stack[int]
			So(z.Cap(), ShouldEqual, 0)
			So(z.Push(1), ShouldEqual, ErrOverflow)
		})

		Convey("A negative capacity should panic", func() {
			So(func() { New[int](-1) }, ShouldPanic)
		})
	})
}

func TestPushPop(t *testing.T) {
	Convey("Given a stack with capacity 2", t, func() {
		s := New[int](2)

		Convey("Push followed by Pop should round trip", func() {
			So(s.Push(7), ShouldBeNil)
			before := s.Len()
			So(s.Push(42), ShouldBeNil)
			x, err := s.Pop()
			So(err, ShouldBeNil)
			So(x, ShouldEqual, 42)
			So(s.Len(), ShouldEqual, before)
		})

		Convey("A third push should overflow and leave size at 2", func() {
			So(s.Push(1), ShouldBeNil)
			So(s.Push(2), ShouldBeNil)
			So(s.Push(3), ShouldEqual, ErrOverflow)
			So(s.Len(), ShouldEqual, 2)
			So(s.Items(), ShouldResemble, []int{1, 2})
		})

		Convey("Operations on the empty stack should underflow", func() {
			_, err := s.Pop()
			So(err, ShouldEqual, ErrUnderflow)
			So(s.Pick(0), ShouldEqual, ErrUnderflow)
			So(s.Roll(0), ShouldEqual, ErrUnderflow)
			_, err = s.Peek()
			So(err, ShouldEqual, ErrUnderflow)
			So(s.Len(), ShouldEqual, 0)
		})

		Convey("Peek should leave the stack unchanged", func() {
			So(s.Push(5), ShouldBeNil)
			x, err := s.Peek()
			So(err, ShouldBeNil)
			So(x, ShouldEqual, 5)
			So(s.Items(), ShouldResemble, []int{5})
		})
	})
}

func TestReallocate(t *testing.T) {
	Convey("Given a stack of capacity 5 holding 1 2 3", t, func() {
		s := fixture(5, 1, 2, 3)

		Convey("Shrinking to 2 keeps the bottom prefix", func() {
			s.Reallocate(2)
			So(s.Len(), ShouldEqual, 2)
			So(s.Cap(), ShouldEqual, 2)
			So(s.Items(), ShouldResemble, []int{1, 2})

			Convey("Growing back to 5 keeps the elements", func() {
				s.Reallocate(5)
				So(s.Len(), ShouldEqual, 2)
				So(s.Cap(), ShouldEqual, 5)
				So(s.Items(), ShouldResemble, []int{1, 2})
				So(s.Push(9), ShouldBeNil)
				So(s.Items(), ShouldResemble, []int{1, 2, 9})
			})
		})

		Convey("Reallocating to 0 empties the stack", func() {
			s.Reallocate(0)
			So(s.Len(), ShouldEqual, 0)
			So(s.Push(1), ShouldEqual, ErrOverflow)
		})

		Convey("Clear keeps the capacity", func() {
			s.Clear()
			So(s.Len(), ShouldEqual, 0)
			So(s.Cap(), ShouldEqual, 5)
		})
	})
}

func TestCopy(t *testing.T) {
	Convey("Given a stack and its copy", t, func() {
		a := fixture(4, 1, 2)
		b := a.Copy()

		So(b.Cap(), ShouldEqual, 4)
		So(b.Items(), ShouldResemble, []int{1, 2})

		Convey("Mutating the copy leaves the original alone", func() {
			So(b.Push(3), ShouldBeNil)
			_, _ = b.Pop()
			_, _ = b.Pop()
			So(b.Push(8), ShouldBeNil)
			So(a.Items(), ShouldResemble, []int{1, 2})
			So(a.Len(), ShouldEqual, 2)
		})

		Convey("Mutating the original leaves the copy alone", func() {
			So(a.Swap(), ShouldBeNil)
			So(a.Push(5), ShouldBeNil)
			So(b.Items(), ShouldResemble, []int{1, 2})
		})

		Convey("Assign replaces capacity and contents", func() {
			c := fixture(1, 9)
			c.Assign(a)
			So(c.Cap(), ShouldEqual, 4)
			So(c.Items(), ShouldResemble, []int{1, 2})
			So(c.Push(3), ShouldBeNil)
			So(a.Len(), ShouldEqual, 2)
		})
	})
}

func TestPickRoll(t *testing.T) {
	Convey("Given 1 2 3 4 in a stack of capacity 8", t, func() {
		s := fixture(8, 1, 2, 3, 4)

		Convey("Pick copies the element at depth", func() {
			So(s.Pick(3), ShouldBeNil)
			So(s.Items(), ShouldResemble, []int{1, 2, 3, 4, 1})
		})

		Convey("Roll moves the element at depth and keeps the order above it", func() {
			So(s.Roll(3), ShouldBeNil)
			So(s.Items(), ShouldResemble, []int{2, 3, 4, 1})
		})

		Convey("Roll 0 is a no-op", func() {
			So(s.Roll(0), ShouldBeNil)
			So(s.Items(), ShouldResemble, []int{1, 2, 3, 4})
		})

		Convey("Depths beyond the size underflow without mutation", func() {
			So(s.Pick(4), ShouldEqual, ErrUnderflow)
			So(s.Roll(4), ShouldEqual, ErrUnderflow)
			So(s.Pick(-1), ShouldEqual, ErrUnderflow)
			So(s.Items(), ShouldResemble, []int{1, 2, 3, 4})
		})

		Convey("Pick on a full stack overflows", func() {
			s.Reallocate(4)
			So(s.Pick(0), ShouldEqual, ErrOverflow)
			So(s.Roll(3), ShouldBeNil)
			So(s.Items(), ShouldResemble, []int{2, 3, 4, 1})
		})

		Convey("Top and At read without mutation", func() {
			So(s.Top().MustGet(), ShouldEqual, 4)
			So(s.At(2).MustGet(), ShouldEqual, 2)
			So(s.At(9).IsPresent(), ShouldBeFalse)
			So(s.Len(), ShouldEqual, 4)
		})
	})
}

func TestWords(t *testing.T) {
	Convey("Given 10 20 30", t, func() {
		s := fixture(6, 10, 20, 30)

		cases := []struct {
			name string
			op   func() error
			want []int
		}{
			{"dup", s.Dup, []int{10, 20, 30, 30}},
			{"drop", s.Drop, []int{10, 20}},
			{"swap", s.Swap, []int{10, 30, 20}},
			{"over", s.Over, []int{10, 20, 30, 20}},
			{"rot", s.Rot, []int{20, 30, 10}},
			{"nip", s.Nip, []int{10, 30}},
			{"tuck", s.Tuck, []int{10, 30, 20, 30}},
		}

		for _, c := range cases {
			Convey(c.name, func() {
				So(c.op(), ShouldBeNil)
				So(s.Items(), ShouldResemble, c.want)
			})
		}

		Convey("A chain of words", func() {
			So(s.Swap(), ShouldBeNil)
			So(s.Items(), ShouldResemble, []int{10, 30, 20})
			So(s.Rot(), ShouldBeNil)
			So(s.Items(), ShouldResemble, []int{30, 20, 10})
			So(s.Nip(), ShouldBeNil)
			So(s.Items(), ShouldResemble, []int{30, 10})
			So(s.Tuck(), ShouldBeNil)
			So(s.Items(), ShouldResemble, []int{10, 30, 10})
		})

		Convey("dup then drop is idempotent", func() {
			So(s.Dup(), ShouldBeNil)
			So(s.Drop(), ShouldBeNil)
			So(s.Items(), ShouldResemble, []int{10, 20, 30})
			So(s.Cap(), ShouldEqual, 6)
		})
	})

	Convey("Given a single element", t, func() {
		s := fixture(1, 1)

		Convey("Two-element words underflow without mutation", func() {
			So(s.Swap(), ShouldEqual, ErrUnderflow)
			So(s.Over(), ShouldEqual, ErrUnderflow)
			So(s.Rot(), ShouldEqual, ErrUnderflow)
			So(s.Nip(), ShouldEqual, ErrUnderflow)
			So(s.Tuck(), ShouldEqual, ErrUnderflow)
			So(s.Items(), ShouldResemble, []int{1})
		})
	})

	Convey("Given a full stack of two", t, func() {
		s := fixture(2, 1, 2)

		Convey("Tuck overflows without swapping", func() {
			So(s.Tuck(), ShouldEqual, ErrOverflow)
			So(s.Items(), ShouldResemble, []int{1, 2})
		})

		Convey("Swap and nip still work", func() {
			So(s.Swap(), ShouldBeNil)
			So(s.Nip(), ShouldBeNil)
			So(s.Items(), ShouldResemble, []int{1})
		})
	})
}

func TestInvariant(t *testing.T) {
	Convey("Size stays within capacity across mixed operations", t, func() {
		s := New[int](3)
		ops := []func() error{
			func() error { return s.Push(1) },
			s.Dup, s.Dup, s.Dup, s.Swap, s.Rot, s.Tuck, s.Nip, s.Drop,
			func() error { s.Reallocate(1); return nil },
			s.Over, s.Dup, s.Drop, s.Drop, s.Drop,
		}
		for _, op := range ops {
			_ = op()
			So(s.Len(), ShouldBeBetweenOrEqual, 0, s.Cap())
		}
	})
}

func TestString(t *testing.T) {
	Convey("String renders size, capacity and elements", t, func() {
		So(fixture(4, 1, 2).String(), ShouldEqual, "<2/4> 1 2")
		So(New[int](0).String(), ShouldEqual, "<0/0>")
	})

	Convey("FromSlice rejects more items than capacity", t, func() {
		_, err := FromSlice(1, []int{1, 2})
		So(errors.Is(err, ErrOverflow), ShouldBeTrue)
	})
}
