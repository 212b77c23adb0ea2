// Package rank orders the accepted records and caps the final feed size.
package rank
