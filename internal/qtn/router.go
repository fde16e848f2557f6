package qtn

import (
	"context"
	"net/url"
	"sort"
	"strings"
)

// Router hands a comment to the first question whose keyword it mentions.
type Router struct {
	phrases   *Phrases
	questions map[string]Question
}

// NewRouter creates a router; keywords are matched case-insensitively.
func NewRouter(phrases *Phrases, questions map[string]Question) *Router {
	if phrases == nil {
		phrases = DefaultPhrases()
	}
	normalized := make(map[string]Question, len(questions))
	for word, q := range questions {
		normalized[strings.ToLower(word)] = q
	}
	return &Router{phrases: phrases, questions: normalized}
}

// Understand implements Question. Comments that mention no keyword get a
// help reply and an empty request.
func (r *Router) Understand(ctx context.Context, comment Comment, home *url.URL) (Req, error) {
	words := r.keywords()
	fields := strings.FieldsFunc(strings.ToLower(comment.Body()), func(c rune) bool {
		return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-' || c == '_')
	})
	for _, field := range fields {
		if q, ok := r.questions[field]; ok {
			return q.Understand(ctx, comment, home)
		}
	}

	help, err := r.phrases.Format("unknown.help", strings.Join(words, ", "))
	if err != nil {
		return Req{}, err
	}
	if err := comment.Reply(ctx, help); err != nil {
		return Req{}, err
	}
	return Req{}, nil
}

func (r *Router) keywords() []string {
	words := make([]string, 0, len(r.questions))
	for word := range r.questions {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
