package version

import (
	"fmt"
	"runtime"
)

// These values are overridden at build time via -ldflags "-X ...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown" // RFC3339 UTC preferred
)

type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit,omitempty" yaml:"gitCommit,omitempty"`
	BuildDate string `json:"buildDate,omitempty" yaml:"buildDate,omitempty"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

func Get() Info {
	info := Info{
		Version:   Version,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if GitCommit != "unknown" {
		info.GitCommit = GitCommit
	}
	if BuildDate != "unknown" {
		info.BuildDate = BuildDate
	}
	return info
}

// String renders the one-line form printed by `stackops version`.
func (i Info) String() string {
	s := fmt.Sprintf("stackops %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
	if i.GitCommit != "" {
		s += " commit " + i.GitCommit
	}
	if i.BuildDate != "" {
		s += " built " + i.BuildDate
	}
	return s
}
