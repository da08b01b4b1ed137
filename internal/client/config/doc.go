// Package config loads runtime configuration for the lumina CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see Default).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables, optionally seeded from a .env file in the
//     working directory.
//  4. Command-line flags, which override everything else.
//
// When no base URL is configured anywhere, it follows the environment:
// production uses the hosted backend, local uses http://localhost:8000.
//
// Supported flags
//
//	-a string   backend base URL
//	-e string   environment: production or local
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn or error
//
// Environment variables
//
//	LUMINA_ENV, LUMINA_API_BASE_URL, LUMINA_DB_PATH,
//	LUMINA_REQUEST_TIMEOUT ("15s" or whole seconds), LUMINA_LOG_LEVEL
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "15s" or
// integer nanoseconds:
//
//	{
//	  "env": "local",
//	  "api_base_url": "http://localhost:8000",
//	  "db_path": "/home/me/.config/lumina/lumina.db",
//	  "request_timeout": "15s",
//	  "log_level": "debug"
//	}
package config
