// Package config holds the settings that shape the editing engine and
// loads them from layered sources.
//
// Layers, lowest priority first:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension, with any "@include"d files
//  3. Environment variables with the SHORTCUTS_ prefix
//
// Settings:
//
//	word.extraChars   characters counted as part of a word besides letters,
//	                  digits and "_" (default "")
//	case.minorWords   words title case leaves in lower case (default the, a, an)
//	case.locale       BCP 47 tag for case mapping (default "und")
//	logging.level     debug, info, warn or error (default "info")
//	dispatch.maxCount       largest repeat count accepted (default 10000, 0 = no cap)
//	dispatch.metrics        keep per-action counters (default false)
//	dispatch.slowThreshold  warn about dispatches slower than this, e.g. "50ms"
//
// # Sub-packages
//
//   - loader: file and environment loading, DeepMerge
//   - watcher: reloads a config file when it changes on disk
package config
