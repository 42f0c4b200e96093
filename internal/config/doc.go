// Package config resolves the runtime settings of the lookup tool from
// environment variables and CLI arguments with precedence: CLI arguments >
// Environment variables > Defaults.
package config
