package qtn

import (
	"context"
	"net/url"
	"sort"
)

// Req is a structured request: a command name plus string parameters.
type Req struct {
	Command string
	Params  map[string]string
}

// Empty reports whether the request carries no command.
func (r Req) Empty() bool {
	return r.Command == ""
}

// Keys lists parameter names in ascending order.
func (r Req) Keys() []string {
	keys := make([]string, 0, len(r.Params))
	for k := range r.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Comment is one comment of an issue thread.
type Comment interface {
	// Number is the comment's own number.
	Number() int
	// Issue is the number of the issue holding the comment.
	Issue() int
	// Repo returns the repository coordinates, e.g. `org/repo`.
	Repo() string
	Body() string
	// Reply posts text to the same thread.
	Reply(ctx context.Context, text string) error
}

// Question understands one kind of request. home is where the requester can
// follow progress.
type Question interface {
	Understand(ctx context.Context, comment Comment, home *url.URL) (Req, error)
}
