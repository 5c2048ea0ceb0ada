package app

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/pkg/errors"
)

// ConfigureLogging routes the default apex logger to w at the named level.
func ConfigureLogging(level string, w io.Writer) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	log.SetHandler(text.New(w))
	log.SetLevel(lvl)
	return nil
}
