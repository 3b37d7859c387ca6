// internal/version/version.go
package version

// Version is overridden at release time via
// -ldflags "-X bfield/internal/version.Version=...".
var Version = "0.1.0"
