// Package config loads and validates application configuration from
// environment variables and an optional config file. Environment
// variables use the STUDYFORGE_ prefix and take precedence over file
// values; validation happens once at load time so the rest of the
// application can trust the struct.
package config
