// Package application provides dependency wiring for the lookup tool.
// It creates the document source and resolver from the resolved
// configuration, keeping the main package focused on argument parsing
// and exit codes.
package application
