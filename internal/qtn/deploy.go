package qtn

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vk/unitgrid/internal/ctxlog"
)

// Deploy understands a request to deploy the repository's master branch.
type Deploy struct {
	phrases *Phrases
}

// NewDeploy creates the question with the given phrase book. A nil book
// means the embedded one.
func NewDeploy(phrases *Phrases) *Deploy {
	if phrases == nil {
		phrases = DefaultPhrases()
	}
	return &Deploy{phrases: phrases}
}

// Understand acknowledges the comment and returns the deploy request.
func (d *Deploy) Understand(ctx context.Context, comment Comment, home *url.URL) (Req, error) {
	reply, err := d.phrases.Format("deploy.start", home.String())
	if err != nil {
		return Req{}, err
	}
	if err := comment.Reply(ctx, reply); err != nil {
		return Req{}, fmt.Errorf("failed to acknowledge comment #%d: %w", comment.Number(), err)
	}

	ctxlog.FromContext(ctx).Info("Deploy request found.",
		"repo", comment.Repo(),
		"issue", comment.Issue(),
		"comment", comment.Number(),
	)
	return Req{
		Command: "deploy",
		Params: map[string]string{
			"head_branch": "master",
			"head":        fmt.Sprintf("git@github.com:%s.git", comment.Repo()),
		},
	}, nil
}
