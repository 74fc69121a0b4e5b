package cli

import "errors"

// Sentinel errors for the command line tool.
var (
	ErrRemote       = errors.New("remote generation failed")
	ErrSaveResult   = errors.New("save result failed")
	ErrSetupLogging = errors.New("setup logging failed")
)
