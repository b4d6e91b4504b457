// Package extension manages the host application's extensions directory:
// resolving which root the host reads from, scanning what is already
// installed, and installing or removing plugin directories by id.
package extension
