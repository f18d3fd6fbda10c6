package version

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	defer func(tag, commit, label string) {
		gitTag, gitCommit, versionLabel = tag, commit, label
	}(gitTag, gitCommit, versionLabel)

	gitTag, gitCommit, versionLabel = "", "", ""
	assert.Equal(t, "<unknown>", GetVersion(true, false))

	gitTag, gitCommit = "v1.2.3", "g0f4c894"
	assert.Equal(t, "1.2.3", GetVersion(true, false))
	assert.Equal(t, "1.2.3.g0f4c894", GetVersion(true, true))
	assert.Equal(t,
		fmt.Sprintf("webskel version 1.2.3, %s/%s. commit: g0f4c894",
			runtime.GOOS, runtime.GOARCH),
		GetVersion(false, false))

	versionLabel = "dev"
	assert.Equal(t, "1.2.3/dev", GetVersion(true, false))
}
