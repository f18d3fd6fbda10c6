package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	goVersion "github.com/hashicorp/go-version"
)

const (
	unknownVersion  = "<unknown>"
	cliVersionTitle = "webskel"
)

// These variables are set at build time.
// See the magefile for details.
var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

// normalize re-renders a git tag as a dotted version number, dropping
// a leading "v". Tags that do not parse as a version are kept as is.
func normalize(tag string) string {
	parsed, err := goVersion.NewVersion(tag)
	if err != nil {
		return tag
	}

	segments := []string{}
	for _, num := range parsed.Segments() {
		segments = append(segments, strconv.Itoa(num))
	}

	return strings.Join(segments, ".")
}

// GetVersion returns string with webskel version info.
func GetVersion(showShort bool, needCommit bool) string {
	version := unknownVersion
	if gitTag != "" {
		version = normalize(gitTag)
		if versionLabel != "" {
			version = fmt.Sprintf("%s/%s", version, versionLabel)
		}
	}

	if needCommit {
		return fmt.Sprintf("%s.%s", version, gitCommit)
	}
	if showShort {
		return version
	}

	return fmt.Sprintf("%s version %s, %s/%s. commit: %s",
		cliVersionTitle, version, runtime.GOOS, runtime.GOARCH, gitCommit)
}
