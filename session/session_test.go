package session

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/xpslvs/stackr/filesystem"
	"github.com/xpslvs/stackr/stack"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSession(t *testing.T) {
	Convey("Given no saved session", t, func() {
		So(Remove(), ShouldBeNil)

		Convey("Load should return nothing", func() {
			snapshot, err := Load()
			So(err, ShouldBeNil)
			So(snapshot.IsPresent(), ShouldBeFalse)
		})

		Convey("Restore should build an empty stack of the requested capacity", func() {
			s, err := Restore(8)
			So(err, ShouldBeNil)
			So(s.Cap(), ShouldEqual, 8)
			So(s.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given a saved stack", t, func() {
		s, err := stack.FromSlice(3, []float64{1, 2})
		So(err, ShouldBeNil)
		So(Save(s), ShouldBeNil)

		Convey("Load should return its snapshot", func() {
			snapshot, err := Load()
			So(err, ShouldBeNil)
			So(snapshot.MustGet(), ShouldResemble, Snapshot{Capacity: 3, Items: []float64{1, 2}})
		})

		Convey("Restore should keep the saved capacity over the requested one", func() {
			restored, err := Restore(64)
			So(err, ShouldBeNil)
			So(restored.Cap(), ShouldEqual, 3)
			So(restored.Items(), ShouldResemble, []float64{1, 2})

			Convey("And the restored stack should be independent", func() {
				So(restored.Push(3), ShouldBeNil)
				So(s.Len(), ShouldEqual, 2)
			})
		})

		Convey("Resume should keep the saved capacity unless asked to resize", func() {
			kept, err := Resume(64, false)
			So(err, ShouldBeNil)
			So(kept.Cap(), ShouldEqual, 3)

			resized, err := Resume(1, true)
			So(err, ShouldBeNil)
			So(resized.Cap(), ShouldEqual, 1)
			So(resized.Items(), ShouldResemble, []float64{1})
		})
	})
}
