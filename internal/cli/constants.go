package cli

import "time"

// File permission constants.
const (
	logFilePermission    = 0o600
	outputFilePermission = 0o644
	directoryPermission  = 0o750
)

// Runner configuration constants.
const (
	DefaultTimeout  = 30 * time.Second
	employeesPath   = "/employees"
	maxErrorBodyLen = 4096
)
