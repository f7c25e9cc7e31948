package app

import (
	"fmt"
	"strconv"
	"strings"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/postlog-io/postlog-backend/internal/app.Version=1.2.3"
var (
	Version   = "0.1.0"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs and health endpoints.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// VersionParts splits Version into its numeric major, minor, and revision
// components for the public info endpoint. Missing or non-numeric parts
// come back as zero.
func VersionParts() (major, minor, rev int) {
	parts := strings.SplitN(strings.TrimPrefix(Version, "v"), ".", 3)
	nums := make([]int, 3)
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			break
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2]
}
