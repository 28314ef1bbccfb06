// Package afs provides a resolver backed by an afero filesystem.
//
// This allows the same resolution rules as the local filesystem resolver
// to be applied to in-memory, read-only, or layered filesystems.
package afs

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Resolver resolves paths against an afero.Fs
type Resolver struct {
	fs  afero.Fs
	log logrus.FieldLogger
}

// Config encapsulates an afero resolver config.  If no Fs is given,
// the OS filesystem is used.
type Config struct {
	Fs     afero.Fs
	Logger logrus.FieldLogger
}

// NewResolver initializes a new resolver over the configured filesystem.
func NewResolver(cfg Config) *Resolver {
	r := &Resolver{
		fs:  cfg.Fs,
		log: cfg.Logger,
	}

	if r.fs == nil {
		r.fs = afero.NewOsFs()
	}

	if r.log == nil {
		r.log = logrus.WithField("component", "afs.Resolver")
	}

	return r
}

// Resolve opens the named file in the filesystem.  Only regular files
// resolve; any failure to stat or open is reported as absence.
func (r *Resolver) Resolve(path string) (io.ReadCloser, bool) {
	log := r.log.WithField("path", path)

	info, err := r.fs.Stat(path)
	if err != nil {
		log.WithError(err).Debug("path does not resolve")
		return nil, false
	}

	if info.IsDir() || !info.Mode().IsRegular() {
		log.Debugf("not a regular file (%s)", info.Mode())
		return nil, false
	}

	f, err := r.fs.Open(path)
	if err != nil {
		log.WithError(err).Debug("could not open file")
		return nil, false
	}

	return f, true
}

// Dispose does nothing.  The filesystem belongs to whoever configured it.
func (r *Resolver) Dispose() error {
	return nil
}
