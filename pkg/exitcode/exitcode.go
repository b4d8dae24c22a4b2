/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/

// Package exitcode provides the process exit codes used by toolbox.
//
// Tool-backed subcommands (install, update, verify, net) forward the exit
// status of the external command verbatim, so any value may be observed
// there; the constants below cover toolbox's own outcomes.
package exitcode

const (
	// Success also covers no-op runs and operator interrupts.
	Success = 0
	// Failure is returned for every recognized operational failure: unknown
	// tool, missing diagnostic dependency, declined confirmation, bad import.
	Failure = 1
	// ConfigError is only used when the process cannot bootstrap logging.
	ConfigError = 2
)

// String returns a human-readable description of the exit code
func String(code int) string {
	switch code {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case ConfigError:
		return "Configuration error"
	default:
		return "Forwarded tool exit status"
	}
}
