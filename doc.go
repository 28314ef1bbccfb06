// Package streamres defines an API for turning a textual path into a readable
// byte stream.
//
// Resolution is provided by one or more Resolver implementations.  Resolvers
// may read from the local filesystem, an afero filesystem, etc.  A Resolver
// that cannot produce a stream for a path reports absence rather than an error,
// so callers only ever deal with "here is your stream" or "there is nothing
// here".  See individual driver documentation under drivers/ for more
// information.
package streamres
