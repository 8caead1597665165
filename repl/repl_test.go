package repl

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/xpslvs/stackr/filesystem"
	"github.com/xpslvs/stackr/key"
	"github.com/xpslvs/stackr/recall"
	"github.com/xpslvs/stackr/session"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHandle(t *testing.T) {
	Convey("Given a loop without a session", t, func() {
		viper.Set(key.ReplShowStack, true)
		viper.Set(key.ReplPrompt, "ok> ")
		viper.Set(key.RecallEnabled, false)

		var out bytes.Buffer
		r, err := New(&Options{Capacity: 3}, &out)
		So(err, ShouldBeNil)

		Convey("Each line prints the stack", func() {
			So(r.Handle("1 2 swap"), ShouldBeFalse)
			So(out.String(), ShouldContainSubstring, "<2/3> 2 1")
		})

		Convey("Errors are printed and the loop goes on", func() {
			So(r.Handle("drop"), ShouldBeFalse)
			So(out.String(), ShouldContainSubstring, "stack underflow")
			So(r.Handle("4"), ShouldBeFalse)
			So(r.Interpreter().Stack().Items(), ShouldResemble, []float64{4})
		})

		Convey("Open definitions switch the prompt", func() {
			So(r.Prompt(), ShouldEqual, "ok> ")
			So(r.Handle(": sq"), ShouldBeFalse)
			So(r.Prompt(), ShouldEqual, continuePrompt)
			So(r.Handle("dup * ;"), ShouldBeFalse)
			So(r.Prompt(), ShouldEqual, "ok> ")
		})

		Convey("ok is printed when the stack is hidden", func() {
			viper.Set(key.ReplShowStack, false)
			So(r.Handle("1"), ShouldBeFalse)
			So(out.String(), ShouldContainSubstring, "ok")
			So(out.String(), ShouldNotContainSubstring, "<1/3>")
		})

		Convey("bye stops the loop", func() {
			So(r.Handle("  BYE "), ShouldBeTrue)
			So(r.Handle(""), ShouldBeFalse)
		})
	})
}

func TestSession(t *testing.T) {
	Convey("Given a saved session", t, func() {
		So(session.Remove(), ShouldBeNil)

		var out bytes.Buffer
		first, err := New(&Options{Capacity: 4, Session: true}, &out)
		So(err, ShouldBeNil)
		So(first.Handle("7 8"), ShouldBeFalse)

		Convey("A new loop resumes the stack", func() {
			second, err := New(&Options{Capacity: 16, Session: true}, &out)
			So(err, ShouldBeNil)
			So(second.Interpreter().Stack().Items(), ShouldResemble, []float64{7, 8})
			So(second.Interpreter().Stack().Cap(), ShouldEqual, 4)
		})

		Convey("Resize overrides the saved capacity", func() {
			second, err := New(&Options{Capacity: 1, Session: true, Resize: true}, &out)
			So(err, ShouldBeNil)
			So(second.Interpreter().Stack().Cap(), ShouldEqual, 1)
			So(second.Interpreter().Stack().Items(), ShouldResemble, []float64{7})
		})

		Convey("A failing line still saves the applied tokens", func() {
			So(first.Handle("9 nope"), ShouldBeFalse)
			saved, err := session.Load()
			So(err, ShouldBeNil)
			So(saved.MustGet().Items, ShouldResemble, []float64{7, 8, 9})
		})
	})
}

func TestCompleter(t *testing.T) {
	Convey("Given a completer over the builtin dictionary", t, func() {
		r, err := New(&Options{Capacity: 2}, &bytes.Buffer{})
		So(err, ShouldBeNil)
		c := &completer{dict: r.Interpreter().Dictionary()}

		Convey("The last token is completed from word names", func() {
			line := []rune("1 2 sw")
			suggestions, length := c.Do(line, len(line))
			So(length, ShouldEqual, 2)
			So(suggestions, ShouldResemble, [][]rune{[]rune("ap ")})
		})

		Convey("Remembered lines are offered when no word matches", func() {
			viper.Set(key.RecallEnabled, true)
			So(recall.Forget(), ShouldBeNil)
			So(recall.Remember("10 20 over", 1), ShouldBeNil)

			line := []rune("10 20")
			suggestions, length := c.Do(line, len(line))
			So(length, ShouldEqual, 5)
			So(suggestions, ShouldResemble, [][]rune{[]rune(" over")})
		})

		Convey("An empty line has no suggestions", func() {
			suggestions, _ := c.Do([]rune{}, 0)
			So(suggestions, ShouldBeEmpty)
		})
	})
}
