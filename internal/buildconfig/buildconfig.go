package buildconfig

import "runtime"

// Build-time variables injected via ldflags:
//
//	-X github.com/Harshitk-cp/mindshift/internal/buildconfig.version=v1.2.3
var (
	version = "dev"
	commit  = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}

// Version returns the build version
func Version() string {
	return version
}

// Current returns the build information of this binary.
func Current() Info {
	return Info{
		Version:   version,
		Commit:    commit,
		GoVersion: runtime.Version(),
	}
}

// String formats the build information for CLI output.
func (i Info) String() string {
	return "mindshift " + i.Version + " (" + i.Commit + ", " + i.GoVersion + ")"
}
