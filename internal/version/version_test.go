package version

import (
	"testing"

	"github.com/fatih/color"
)

func withOverrides(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate, origNoColor := Version, GitCommit, BuildDate, color.NoColor
	Version, GitCommit, BuildDate = v, commit, date
	color.NoColor = true
	t.Cleanup(func() {
		Version, GitCommit, BuildDate, color.NoColor = origVersion, origCommit, origDate, origNoColor
	})
}

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColoredWithoutColor(t *testing.T) {
	withOverrides(t, "1.2.3-rc1", "", "")
	if got := Colored(); got != "1.2.3-rc1" {
		t.Errorf("Colored() = %q, want %q", got, "1.2.3-rc1")
	}
}

func TestColoredKeepsUnparsableVersion(t *testing.T) {
	withOverrides(t, "nightly", "", "")
	if got := Colored(); got != "nightly" {
		t.Errorf("Colored() = %q, want %q", got, "nightly")
	}
}

func TestString(t *testing.T) {
	withOverrides(t, "1.2.3", "abc123", "2024-01-15T10:30:00Z")
	want := "vhdlfmt 1.2.3 (abc123) built 2024-01-15T10:30:00Z"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
