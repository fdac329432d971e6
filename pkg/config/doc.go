// Package config loads the CLI configuration from SEALCAM_* environment
// variables, reading an optional .env file first. Transport credentials
// are validated lazily via RequireTransport so that local encrypt and
// decrypt commands work without a bot token.
package config
