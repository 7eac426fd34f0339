// Package config handles loading punch's TOML configuration.
//
// # Configuration Discovery
//
//  1. An explicitly provided path is used as-is (after tilde expansion)
//  2. Otherwise ~/.config/punch/config.toml
//  3. A missing file is not an error; hardcoded defaults apply
//  4. Present-but-empty fields fall back to defaults
//
// # Fields
//
//	api_base     = "127.0.0.1:8460"   # workforce backend host:port or URL
//	token        = ""                 # bearer token; empty disables auth
//	poll_seconds = 15                 # background snapshot refetch interval
//	mirror_tty   = ""                 # device for the detached mirror; empty
//	                                  # means the capability is unavailable
//
// Tilde paths are expanded against the user's home directory; relative paths
// are made absolute. Load returns errors only for unreadable files, parse
// failures, and unresolvable paths, so punch works out of the box on a host
// with the backend in its default location.
package config
