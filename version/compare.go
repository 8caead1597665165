package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// release is the numeric core of a tag: major, minor and patch.
type release [3]int

func parseRelease(tag string) (release, error) {
	var r release

	core := strings.TrimPrefix(strings.TrimSpace(tag), "v")
	core, _, _ = strings.Cut(core, "+")
	core, _, _ = strings.Cut(core, "-")

	parts := strings.Split(core, ".")
	if len(parts) > len(r) {
		return r, fmt.Errorf("malformed version %q", tag)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return r, fmt.Errorf("malformed version %q", tag)
		}
		r[i] = n
	}

	return r, nil
}

// Compare orders two release tags such as "v1.2.3" or "1.2".
// It returns 1 when a is newer, -1 when b is newer and 0 otherwise.
// Missing components count as zero; pre-release and build suffixes are ignored.
func Compare(a, b string) (int, error) {
	ra, err := parseRelease(a)
	if err != nil {
		return 0, err
	}

	rb, err := parseRelease(b)
	if err != nil {
		return 0, err
	}

	for i := range ra {
		if c := cmp.Compare(ra[i], rb[i]); c != 0 {
			return c, nil
		}
	}

	return 0, nil
}
