// Package version pins the version reported by `ctok version`.
package version

import "fmt"

const (
	major = 0
	minor = 2
	patch = 0
)

func String() string { return fmt.Sprintf("ctok %d.%d.%d", major, minor, patch) }
