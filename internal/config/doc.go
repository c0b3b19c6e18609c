// Package config loads runtime configuration from multiple sources (YAML files,
// environment variables, CLI flags) with precedence: CLI flags > Environment
// variables > YAML config > Defaults. Paint prices and the coverage rate are
// estimator constants and cannot be configured.
package config
