// Package app wires the application together: logging, configuration
// loading, plan processing and output assembly.
//
// One App instance owns its logger and registry, so tests can run multiple
// isolated instances in one process.
package app
