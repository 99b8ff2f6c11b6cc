// Package config loads popcorn's TOML configuration.
//
// # Discovery
//
// Load reads the path it is given, or ~/.config/popcorn/config.toml when the
// path is empty. A missing file yields Default(); fields that are missing or
// blank keep their defaults.
//
// # Fields
//
//	api_url = "https://www.omdbapi.com/"
//	api_key = "..."
//	data_dir = "~/.local/share/popcorn"
//	request_timeout = "10s"
//	load_watched = true
//
// The OMDB_API_KEY environment variable wins over api_key. The key is never
// compiled into the binary; Validate fails when neither source provides one.
//
// # Derived paths
//
//   - DBPath: <data_dir>/popcorn.db, the bbolt file holding the watched list
//   - LogPath: <data_dir>/popcorn.log, where log output goes while the TUI runs
//
// Tilde paths are expanded against the home directory and relative paths are
// made absolute.
package config
