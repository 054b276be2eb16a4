package main

// Exit codes returned by graphwalk.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // Command failed (rejected input, no path, cycle)
	ExitConfigError = 2 // Bad flags, settings, scenario or preset
)
