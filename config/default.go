package config

import _ "embed"

// DefaultConfigYAML is the built-in configuration, compiled into the binary
// so the server starts without any external file.
//
//go:embed default_config.yaml
var DefaultConfigYAML []byte
