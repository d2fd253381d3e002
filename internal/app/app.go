// Package app holds identifiers shared by every wl package.
package app

// Name is the application name. It names the config directory and the binary.
const Name = "wl"
