// Package manifest reads, validates, and derives identity from a plugin's
// package.json descriptor. Load is the single source of truth for manifest
// shape: downstream packages only ever see a *Manifest produced here, with
// the namespace/publisher and extension id already derived.
package manifest
