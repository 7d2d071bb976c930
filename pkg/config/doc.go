// Package config loads ctxgen settings from a YAML file, a .env file and
// CTXGEN_* environment variables, in increasing order of precedence.
package config
