// Package config manages user-level settings stored at ~/.emod-cli/config.yaml.
// Settings cover where project templates come from and where they are
// cached. Load returns an explicit *Config value; nothing in this package
// keeps global state.
package config
