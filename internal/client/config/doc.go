// Package config loads the CLI's runtime settings. Overlay order is
// defaults → environment (with optional .env) → JSON file → flags, with
// later sources taking precedence.
package config
