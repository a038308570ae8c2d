// Package services implements the application core: location-context
// resolution, address extraction, the first-aid chat, and report assembly.
// Services depend on driven ports only and implement the driving ports
// consumed by the CLI, HTTP API and TUI adapters.
package services
