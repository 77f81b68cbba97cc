// Package config loads ruoka's optional TOML configuration.
//
// # Configuration Discovery
//
//  1. An explicit path passed to Load
//  2. $RUOKA_CONFIG
//  3. ~/.config/ruoka/config.toml
//
// A missing file is not an error; the built-in defaults (six Hervanta
// kitchens, the canonical meal-option order) are used instead. Blank fields
// also fall back to defaults.
//
// # TOML Format
//
//	service_url = "http://www.juvenes.fi/.../GetMenuByWeekday"
//	language = "fi"
//	theme = "Classic"
//	log_level = "warn"
//	request_timeout = "10s"
//	continue_on_error = false
//
//	[[restaurants]]
//	name = "Newton"
//	kitchen = 6
//	menutype = 60
//
//	[[meal_options]]
//	key = "LOUNAS1"
//	name = "Rohee"
//
// A restaurants or meal_options table replaces the corresponding default
// list entirely; order in the file is display order. A meal option without
// a name is shown under its capitalized key.
//
// # Environment
//
// RUOKA_LANG and RUOKA_LOG_LEVEL override the file. LoadDotEnv reads a .env
// file from the working directory first without clobbering variables that
// are already set.
package config
