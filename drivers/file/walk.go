package file

import (
	"io"
	"os"
	"path/filepath"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
)

// WalkFunc is invoked once for each entry encountered by Walk.  If the entry
// resolved, ok is true and stream is open for reading; Walk closes it once
// WalkFunc returns, so it must not be retained.  Any error terminates the walk.
type WalkFunc func(ospath string, stream io.ReadCloser, ok bool) error

// Walk visits every entry underneath dir (but not dir itself) in lexical order,
// and attempts to resolve each one.  This shows how the resolver classifies
// the contents of a tree: regular files resolve, everything else is absent.
//
// Symbolic links are resolved, but never descended into.
func (r *Resolver) Walk(dir string, f WalkFunc) error {

	if _, err := os.Stat(dir); err != nil {
		return errors.Wrapf(err, "error walking directory %s", dir)
	}

	root := filepath.Clean(dir)
	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(ospath string, de *godirwalk.Dirent) (err error) {
			if ospath == root {
				return nil
			}

			stream, ok := r.Resolve(ospath)
			if ok {
				defer func() {
					if e := stream.Close(); e != nil && err == nil {
						err = errors.Wrapf(e, "error closing %s", ospath)
					}
				}()
			}

			return f(ospath, stream, ok)
		},
		FollowSymbolicLinks: false,
	})
	if err != nil {
		return errors.Wrapf(err, "error performing walk of %s", dir)
	}
	return nil
}
