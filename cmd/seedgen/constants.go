package main

// Default limits for CLI commands.
const (
	DefaultHistoryLimit = 20
	checksumDisplayLen  = 12
)
