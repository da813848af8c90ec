package warp

import (
	"io"

	"github.com/akeil/warp/internal/logging"
)

// SetLogLevel sets the log level by name.
// Valid names are "debug", "info", "warning", "error" and "none".
func SetLogLevel(level string) error {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return NewInvalidParameter("%v", err)
	}
	logging.SetLevel(lvl)
	return nil
}

// SetLogOutput redirects log messages to w.
func SetLogOutput(w io.Writer) {
	logging.SetOutput(w)
}
