// Package version looks up the latest stackr release and tells the user when an upgrade is available.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xpslvs/stackr/filesystem"
	"github.com/xpslvs/stackr/network"
	"github.com/xpslvs/stackr/util"
	"github.com/xpslvs/stackr/where"
)

// ReleasesURL is queried for the latest published release.
var ReleasesURL = "https://api.github.com/repos/xpslvs/stackr/releases/latest"

var versionCacher = filesystem.NewCache[string](where.Version(), time.Hour*24*2)

// Latest returns the most recent released version without the "v" prefix.
// The answer is cached for two days.
func Latest() (version string, err error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	resp, err := network.Client.Get(ReleasesURL)
	if err != nil {
		return
	}

	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected status %s", resp.Status)
		return
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	err = json.NewDecoder(resp.Body).Decode(&release)
	if err != nil {
		return
	}

	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(version)
	return
}
