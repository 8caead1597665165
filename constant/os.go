package constant

// GOOS values stackr has shell integrations for: opening files and clearing the screen.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)

// Supported reports whether goos has a known way to launch external programs.
func Supported(goos string) bool {
	switch goos {
	case Windows, Darwin, Linux, Android:
		return true
	}
	return false
}
