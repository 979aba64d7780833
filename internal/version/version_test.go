package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// GitCommit and BuildDate are optional
	_ = GitCommit
	_ = BuildDate
}

func TestColored_PlainWhenColorDisabled(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	cases := []string{"0.1.0-dev", "1.2.3", "1.0.0-rc.1+build.7", "dev", "1.2", "1.2."}
	for _, v := range cases {
		if got := Colored(v); got != v {
			t.Errorf("Colored(%q) = %q, want unchanged", v, got)
		}
	}
}

func TestColored_AddsEscapesWhenEnabled(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = orig }()

	if got := Colored("1.2.3"); got == "1.2.3" {
		t.Errorf("expected colour escapes in %q", got)
	}
	if got := Colored("dev"); got != "dev" {
		t.Errorf("Colored(dev) = %q, want unchanged", got)
	}
}
