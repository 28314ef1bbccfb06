// Package file provides a resolver that treats paths as local filesystem paths.
package file

import (
	"github.com/sirupsen/logrus"
)

// Resolver is the local filesystem resolver.  It holds no state beyond its
// configuration, so a single Resolver may be used from multiple goroutines.
// The zero value is ready to use.
type Resolver struct {
	log logrus.FieldLogger
}

// Config encapsulates a local filesystem resolver config.
//
// Resolution failures are never returned to callers, they are flattened
// into absence.  If a Logger is provided, the underlying cause of each
// absence is logged to it at debug level.
type Config struct {
	Logger logrus.FieldLogger
}

// NewResolver initializes a new local filesystem resolver.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{
		log: cfg.Logger,
	}
}

func (r *Resolver) logger() logrus.FieldLogger {
	if r == nil || r.log == nil {
		return logrus.WithField("component", "file.Resolver")
	}
	return r.log
}
