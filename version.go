// Package negotiationgo provides the version information for negotiation-go.
package negotiationgo

// Version is the current version of negotiation-go.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
