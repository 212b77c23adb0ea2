// Package config defines the immutable pipeline configuration.
//
// Configuration is assembled once at startup from defaults, an optional YAML
// file (located via XDG conventions or --config), and CLI flag overrides. The
// resulting Config value is passed to every component; nothing reads
// process-wide mutable state mid-run.
package config
