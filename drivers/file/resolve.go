package file

import (
	"io"
	"os"
)

// Resolve opens the file at the given path for reading.
//
// Only regular files resolve.  Missing paths, directories, devices, and
// symlinks that do not lead to a regular file are absent.  So is any
// file that exists but cannot be opened (e.g. permission denied, or it
// disappeared between the stat and the open).
func (r *Resolver) Resolve(path string) (io.ReadCloser, bool) {
	log := r.logger().WithField("path", path)

	info, err := os.Stat(path)
	if err != nil {
		log.WithError(err).Debug("path does not resolve")
		return nil, false
	}

	if info.IsDir() || !info.Mode().IsRegular() {
		log.Debugf("not a regular file (%s)", info.Mode())
		return nil, false
	}

	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Debug("could not open file")
		return nil, false
	}

	// The path may have been swapped for something else since the stat
	opened, err := f.Stat()
	if err != nil || !opened.Mode().IsRegular() {
		_ = f.Close()
		log.WithError(err).Debug("file changed while opening")
		return nil, false
	}

	return f, true
}

// Dispose does nothing, there is nothing to release.
func (r *Resolver) Dispose() error {
	return nil
}
