// Package buildinfo carries the version stamped in with -ldflags -X.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short is the release version if set, else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// String is the full line printed by -version.
func String() string {
	return fmt.Sprintf("sparkgfx %s (commit %s, built %s)", Version, Commit, Date)
}
