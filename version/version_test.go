package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/xpslvs/stackr/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare orders semantic versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"0.1.0", "0.1.0", 0},
			{"v0.2.0", "0.1.9", 1},
			{"1.0.0", "1.0.1", -1},
			{"2.0.0", "10.0.0", -1},
			{"1.2", "1.2.0", 0},
			{"v1.3.0-rc1", "1.2.9", 1},
			{"1.0.0+build.7", "1.0.0", 0},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}
	})

	Convey("Compare rejects malformed versions", t, func() {
		for _, tag := range []string{"latest", "1.2.3.4", "1..2", "v-1.0.0"} {
			_, err := Compare(tag, "0.1.0")
			So(err, ShouldNotBeNil)
		}
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte(`{"tag_name": "v0.3.1"}`))
		}))
		defer srv.Close()

		prev := ReleasesURL
		ReleasesURL = srv.URL
		defer func() { ReleasesURL = prev }()
		_ = versionCacher.Set("")

		Convey("Latest strips the prefix and caches the answer", func() {
			v, err := Latest()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "0.3.1")

			v, err = Latest()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "0.3.1")
			So(hits, ShouldEqual, 1)
		})
	})
}
