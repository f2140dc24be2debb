// Package orchestrator wires the loader → decode → section dispatch →
// serialize pipeline, providing dependency injection friendly helpers for
// consumers that prefer a single entry point.
package orchestrator
