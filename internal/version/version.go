package version

// These variables are overridden at build time using -ldflags.
// Keep sensible defaults for local development.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// BuildInfo is the build metadata served by the version endpoint.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date,omitempty"`
	Dirty   bool   `json:"dirty"`
}

func Info() BuildInfo {
	return BuildInfo{Version: Version, Commit: Commit, Date: Date, Dirty: Dirty == "true"}
}
