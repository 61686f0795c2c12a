// Package config manages user-level defaults stored at ~/.mkpkg/config.yaml.
// Values are read from MKPKG_* environment variables first, then the file.
// The file is validated against an embedded JSON schema before it is used,
// and every write is validated before it reaches disk.
package config
