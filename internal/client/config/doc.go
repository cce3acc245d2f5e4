// Package config loads runtime configuration for the Gadai console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c / -config or the
//     GADAI_CONFIG environment variable.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-i int      notification poll interval (seconds)
//	-d string   path of the local session store
//	-t int      request timeout (seconds)
//	-l string   log format: text, json or console
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "5s" or integer nanoseconds. Absent keys keep earlier values:
//
//	{
//	  "base_url": "https://gadai.example.com/api",
//	  "poll_interval": "5s",
//	  "store_path": "/var/lib/gadai/session.db",
//	  "request_timeout": "10s",
//	  "log_format": "json"
//	}
package config
