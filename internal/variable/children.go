package variable

import (
	"context"
	"strings"

	"github.com/vk/unitgrid/internal/model"
)

// instantiateAll evaluates nodes strictly left to right. A side effect of
// node i is visible before node i+1 starts.
func instantiateAll(ctx context.Context, users model.Users, args model.Arguments, nodes []model.Variable) ([]any, error) {
	values := make([]any, 0, len(nodes))
	for _, node := range nodes {
		value, err := node.Instantiate(ctx, users, args)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// mergeArguments unions the argument declarations of nodes. When two nodes
// declare the same position the later one wins; collisions are not an error.
func mergeArguments(nodes []model.Variable) (map[int]string, error) {
	merged := make(map[int]string)
	for _, node := range nodes {
		args, err := node.Arguments()
		if err != nil {
			return nil, err
		}
		for pos, title := range args {
			merged[pos] = title
		}
	}
	return merged, nil
}

// joinText renders nodes as a comma separated list without whitespace.
func joinText(nodes []model.Variable) string {
	parts := make([]string, len(nodes))
	for i, node := range nodes {
		parts[i] = node.AsText()
	}
	return strings.Join(parts, ",")
}

func copyNodes(nodes []model.Variable) []model.Variable {
	copied := make([]model.Variable, len(nodes))
	copy(copied, nodes)
	return copied
}
