// SPDX-License-Identifier: MPL-2.0

// Package config handles pwgen configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/pwgen/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/pwgen/config.cue on macOS, %APPDATA%\pwgen\config.cue
// on Windows), falling back to ./config.cue. Values act as defaults for the generator
// (length, count, diceware settings, word list, secure preset) and the terminal UI.
// Any key can be overridden from the environment with the PWGEN_ prefix, for example
// PWGEN_GENERATOR_LENGTH=20.
//
// Files are validated against the embedded CUE schema (config_schema.cue) before being
// merged into Viper, so typos and out-of-range values are reported with their CUE path.
package config
