// Package qtn translates requests found in issue comments into structured
// commands. It is a thin, stateless layer: a Question reads one comment,
// acknowledges it in the same thread and returns a Req naming the command
// and its parameters. The issue tracker itself is reached through the
// Comment interface.
package qtn
