package interp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/xpslvs/stackr/stack"
	"github.com/xpslvs/stackr/word"
)

func TestEval(t *testing.T) {
	Convey("Given an interpreter with capacity 4", t, func() {
		var out bytes.Buffer
		in := New(&Options{Out: &out, Capacity: 4})

		Convey("Numbers are pushed and words applied", func() {
			So(in.Eval("10 20 30 swap"), ShouldBeNil)
			So(in.Stack().Items(), ShouldResemble, []float64{10, 30, 20})
		})

		Convey(". pops and prints the top", func() {
			So(in.Eval("1.5 2 + ."), ShouldBeNil)
			So(out.String(), ShouldEqual, "3.5\n")
			So(in.Stack().Len(), ShouldEqual, 0)
		})

		Convey(".s prints without popping", func() {
			So(in.Eval("1 2 .s"), ShouldBeNil)
			So(out.String(), ShouldEqual, "<2/4> 1 2\n")
			So(in.Stack().Len(), ShouldEqual, 2)
		})

		Convey("Comments are skipped", func() {
			So(in.Eval("1 ( a b -- ) 2 \\ 3 4"), ShouldBeNil)
			So(in.Stack().Items(), ShouldResemble, []float64{1, 2})
		})

		Convey("Overflow stops the line and keeps earlier tokens", func() {
			err := in.Eval("1 2 3 4 5 6")
			So(errors.Is(err, stack.ErrOverflow), ShouldBeTrue)
			So(err.Error(), ShouldStartWith, "5:")
			So(in.Stack().Items(), ShouldResemble, []float64{1, 2, 3, 4})
		})

		Convey("Underflow is reported with the word", func() {
			err := in.Eval("drop")
			So(errors.Is(err, stack.ErrUnderflow), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "drop: stack underflow")
		})

		Convey("Unknown words carry a suggestion", func() {
			err := in.Eval("1 dpu")
			var unknown *UnknownWordError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Name, ShouldEqual, "dpu")
			So(unknown.Suggestion.MustGet(), ShouldEqual, "dup")
			So(err.Error(), ShouldContainSubstring, "did you mean dup?")
		})

		Convey("; outside a definition fails", func() {
			So(errors.Is(in.Eval(";"), ErrUnexpectedEnd), ShouldBeTrue)
		})

		Convey("Reallocate forwards to the stack", func() {
			So(in.Eval("1 2 3"), ShouldBeNil)
			in.Reallocate(2)
			So(in.Stack().Cap(), ShouldEqual, 2)
			So(in.Stack().Items(), ShouldResemble, []float64{1, 2})
		})
	})
}

func TestDefinitions(t *testing.T) {
	Convey("Given an interpreter", t, func() {
		in := New(&Options{Capacity: 3})

		Convey("A colon definition becomes a word", func() {
			So(in.Eval(": sq dup * ;"), ShouldBeNil)
			So(in.Eval("3 sq"), ShouldBeNil)
			So(in.Stack().Items(), ShouldResemble, []float64{9})
			w := in.Dictionary().Lookup("sq").MustGet()
			So(w.User, ShouldBeTrue)
			So(w.Description, ShouldEqual, "dup *")
		})

		Convey("A definition may span lines", func() {
			So(in.Eval(": second"), ShouldBeNil)
			So(in.Compiling(), ShouldBeTrue)
			So(in.Eval("1 pick ;"), ShouldBeNil)
			So(in.Compiling(), ShouldBeFalse)
			So(in.Eval("7 8 second"), ShouldBeNil)
			So(in.Stack().Items(), ShouldResemble, []float64{7, 8, 7})
		})

		Convey("A failing user word leaves the stack unchanged", func() {
			So(in.Eval(": fill 0 0 0 ;"), ShouldBeNil)
			So(in.Eval("5"), ShouldBeNil)
			So(errors.Is(in.Eval("fill"), stack.ErrOverflow), ShouldBeTrue)
			So(in.Stack().Items(), ShouldResemble, []float64{5})
		})

		Convey("Unknown words abort the definition", func() {
			So(in.Eval(": bad nope ;"), ShouldNotBeNil)
			So(in.Compiling(), ShouldBeFalse)
			So(in.Dictionary().Lookup("bad").IsPresent(), ShouldBeFalse)
		})

		Convey("Numbers and directives cannot be defined", func() {
			So(errors.Is(in.Eval(": 42 dup ;"), ErrReserved), ShouldBeTrue)
			So(errors.Is(in.Eval(": .s dup ;"), ErrReserved), ShouldBeTrue)
			So(errors.Is(in.Eval(":"), ErrMissingName), ShouldBeTrue)
		})

		Convey("forget removes user words only", func() {
			So(in.Eval(": twice dup + ; forget twice"), ShouldBeNil)
			So(in.Dictionary().Lookup("twice").IsPresent(), ShouldBeFalse)
			So(in.Eval("forget dup"), ShouldNotBeNil)
		})

		Convey("forget uncovers the builtin a user word shadowed", func() {
			So(in.Eval(": dup 1 ;"), ShouldBeNil)
			So(in.Eval("5 dup"), ShouldBeNil)
			So(in.Stack().Items(), ShouldResemble, []float64{5, 1})
			So(in.Eval("clear forget dup"), ShouldBeNil)
			So(in.Eval("5 dup"), ShouldBeNil)
			So(in.Stack().Items(), ShouldResemble, []float64{5, 5})
			So(in.Dictionary().Lookup("dup").MustGet().User, ShouldBeFalse)
			So(in.Eval("forget dup"), ShouldNotBeNil)
		})

		Convey("realloc rejects capacities beyond the limit", func() {
			err := in.Eval("2e9 realloc")
			So(errors.Is(err, word.ErrInvalidArgument), ShouldBeTrue)
			So(in.Stack().Cap(), ShouldEqual, 3)
			So(in.Stack().Items(), ShouldResemble, []float64{2e9})
		})

		Convey("Reset abandons an open definition", func() {
			So(in.Eval(": half"), ShouldBeNil)
			in.Reset()
			So(in.Compiling(), ShouldBeFalse)
			So(in.Eval("1"), ShouldBeNil)
			So(in.Stack().Items(), ShouldResemble, []float64{1})
		})
	})
}

func TestOptions(t *testing.T) {
	Convey("Given an existing stack", t, func() {
		s, err := stack.FromSlice(2, []float64{1})
		So(err, ShouldBeNil)
		in := New(&Options{Stack: mo.Some(s), Dictionary: word.NewDictionary()})

		Convey("The interpreter operates on it", func() {
			So(in.Eval("2"), ShouldBeNil)
			So(s.Items(), ShouldResemble, []float64{1, 2})
			So(in.Stack(), ShouldPointTo, s)
		})

		Convey("Format renders it", func() {
			So(Format(s), ShouldEqual, "<1/2> 1")
		})
	})
}
