// Package version contains version information.
package version

// Version is the software version.
const Version = "0.5.0"
