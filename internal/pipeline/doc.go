// Package pipeline wires extraction, normalization, filtering, ranking, and
// serialization into a single linear pass over one snapshot.
package pipeline
