package version

// version is overridden at build time with
// -ldflags "-X github.com/cbodonnell/tetris/pkg/version.version=v1.2.3"
var version = "dev"

// Get returns the build version.
func Get() string {
	return version
}
