// Package config provides user configuration management for inputshowcase.
//
// This package manages a YAML-based configuration file that stores the
// suggestion lists offered while typing (hashtags, mentions, search
// catalogue, recent and popular searches), the character limits of the
// free-text fields and application preferences. The configuration follows
// OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/inputshowcase/config.yaml or $HOME/.config/inputshowcase/config.yaml
//   - macOS: $HOME/.config/inputshowcase/config.yaml
//   - Windows: %LOCALAPPDATA%\inputshowcase\config.yaml
//
// SetConfigPath overrides the location (the --config flag).
//
// # Usage Example
//
//	path, _ := config.GetConfigPath()
//	registry, err := config.LoadRegistryFrom(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	registry.AddHashtag("#GoLang")
//	registry.RecordSearch("keyboard types")
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// A Registry is not safe for concurrent mutation. Saves are serialized by a
// package mutex and written atomically through a temporary file.
package config
