package streamres

import (
	"io"
	"io/ioutil"

	"github.com/birkland/streamres/drivers/file"
	"github.com/pkg/errors"
)

// Resolver maps a path to an open, readable stream.
type Resolver interface {

	// Resolve returns a stream positioned at the start of the resource
	// identified by path.  The caller owns the stream and must close it.
	// If the resource cannot be resolved for any reason, Resolve returns
	// false and a nil stream.
	Resolve(path string) (io.ReadCloser, bool)

	// Dispose releases anything held by the resolver itself.  It is invoked
	// by the owner once the resolver is no longer needed.
	Dispose() error
}

// Func is a function that can be used to satisfy the Resolver interface.
// Its Dispose is a no-op.
type Func func(path string) (io.ReadCloser, bool)

// Resolve a path by invoking the function
func (f Func) Resolve(path string) (io.ReadCloser, bool) {
	return f(path)
}

// Dispose does nothing
func (Func) Dispose() error {
	return nil
}

// NopDisposer may be embedded in resolvers that hold nothing worth releasing.
type NopDisposer struct{}

// Dispose does nothing
func (NopDisposer) Dispose() error {
	return nil
}

// Default resolves paths as local filesystem paths.  Only regular files
// resolve; everything else is absent.
var Default Resolver = file.NewResolver(file.Config{})

// ReadAll resolves the given path and reads it to completion, closing the
// stream afterwards.  ok is false if the path did not resolve; err is only
// ever set for failures that happen after a stream was obtained.
func ReadAll(r Resolver, path string) (content []byte, ok bool, err error) {
	stream, ok := r.Resolve(path)
	if !ok {
		return nil, false, nil
	}
	defer func() {
		if e := stream.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "error closing stream for %s", path)
		}
	}()

	content, err = ioutil.ReadAll(stream)
	if err != nil {
		return nil, true, errors.Wrapf(err, "could not read %s", path)
	}

	return content, true, nil
}

type chain []Resolver

// Chain combines resolvers so that each is tried in order.  The first one to
// produce a stream wins.  A path is absent only if every resolver reports it
// absent.  Disposing the chain disposes every member.
func Chain(resolvers ...Resolver) Resolver {
	c := make(chain, 0, len(resolvers))
	for _, r := range resolvers {
		if r != nil {
			c = append(c, r)
		}
	}
	return c
}

func (c chain) Resolve(path string) (io.ReadCloser, bool) {
	for _, r := range c {
		if stream, ok := r.Resolve(path); ok {
			return stream, true
		}
	}
	return nil, false
}

// All members are disposed, even if some fail.
func (c chain) Dispose() error {
	var err error
	for i, r := range c {
		e := r.Dispose()
		if e == nil {
			continue
		}
		if err == nil {
			err = errors.Wrapf(e, "could not dispose resolver %d", i)
		} else {
			err = errors.Wrapf(err, "also could not dispose resolver %d: %s", i, e)
		}
	}
	return err
}
