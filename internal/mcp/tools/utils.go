package tools

import (
	"encoding/json"
	"fmt"

	"github.com/roivaz/pr-summary/internal/pullrequest"
)

func parseIntArgument(name string, value any) (int, error) {
	switch v := value.(type) {
	case float64:
		if v <= 0 {
			return 0, fmt.Errorf("%s must be positive", name)
		}
		return int(v), nil
	case int:
		if v <= 0 {
			return 0, fmt.Errorf("%s must be positive", name)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("%s must be provided", name)
	}
}

// parseRef reads the repository and pr_number arguments shared by every tool.
func parseRef(args map[string]any) (pullrequest.Ref, error) {
	repoArg, _ := args["repository"].(string)
	repo, err := pullrequest.ParseRepository(repoArg)
	if err != nil {
		return pullrequest.Ref{}, err
	}
	number, err := parseIntArgument("pr_number", args["pr_number"])
	if err != nil {
		return pullrequest.Ref{}, err
	}
	return repo.PullRequest(number), nil
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
