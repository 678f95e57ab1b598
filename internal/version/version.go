package version

import "runtime/debug"

// Current is the build version, set with -ldflags "-X github.com/virtualboard/sectionscan/internal/version.Current=v1.2.3".
var Current = "dev"

// String returns Current, or the module version recorded by `go install` when no version was linked in.
func String() string {
	if Current != "dev" {
		return Current
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Current
}
