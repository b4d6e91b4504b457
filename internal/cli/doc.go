// Package cli defines the Cobra command tree for the vizkit CLI. Each file
// in this package registers one top-level command (package, install,
// uninstall, etc.) with the root command. Command implementations delegate to
// internal packages for the packaging pipeline and only handle flag parsing,
// I/O formatting, and user interaction.
package cli
