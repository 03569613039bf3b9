// Package version describes the running digiprefs build.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set via -ldflags "-X github.com/iiroan/digiprefs/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info holds version information for a build
type Info struct {
	Version   string `yaml:"version"`
	Commit    string `yaml:"commit"`
	BuildDate string `yaml:"build_date"`
	GoVersion string `yaml:"go_version"`
	Platform  string `yaml:"platform"`
}

// Current returns the info stamped into this binary.
func Current() Info {
	return NewInfo(Version, Commit, BuildDate)
}

// NewInfo fills in the toolchain and platform of the running process.
func NewInfo(version, commit, buildDate string) Info {
	return Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// IsDev reports whether the binary was built without a release version.
func (v Info) IsDev() bool {
	return v.Version == "" || v.Version == "dev"
}

// Short returns "digiprefs <version>", with the short commit for dev builds.
func (v Info) Short() string {
	if v.IsDev() && v.Commit != "" && v.Commit != "unknown" {
		commit := v.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		return fmt.Sprintf("digiprefs dev+%s", commit)
	}
	return "digiprefs " + v.Version
}

// Fields returns label/value pairs in display order.
func (v Info) Fields() [][2]string {
	return [][2]string{
		{"Version", v.Version},
		{"Commit", v.Commit},
		{"Build Date", v.BuildDate},
		{"Go Version", v.GoVersion},
		{"OS/Arch", v.Platform},
	}
}

// YAML renders the info for scripts.
func (v Info) YAML() (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshaling version: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
