// Package artifact writes the per-run output files.
package artifact
