package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the ranktable CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders v with one colour per semver component. Anything that is
// not a plain major.minor.patch[-suffix] string is returned unchanged.
func Colored(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return v
	}
	patch, suffix := parts[2], ""
	if dash := strings.IndexByte(patch, '-'); dash >= 0 {
		patch, suffix = patch[:dash], patch[dash:]
	}
	if patch == "" {
		return v
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(patch) + suffix
}
