package pullrequest

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ResolveRef picks the pull request to act on. An explicit positive number
// wins and requires repository; otherwise the Actions event payload at
// eventPath is used.
func ResolveRef(repository string, number int, eventPath string) (Ref, error) {
	if number > 0 {
		repo, err := ParseRepository(repository)
		if err != nil {
			return Ref{}, fmt.Errorf("github repository: %w", err)
		}
		return repo.PullRequest(number), nil
	}
	if eventPath != "" {
		return RefFromEvent(eventPath)
	}
	return Ref{}, fmt.Errorf("a pull request number or GITHUB_EVENT_PATH is required")
}

// RefFromEvent reads a GitHub Actions event payload (the file named by
// GITHUB_EVENT_PATH) and extracts the pull request it refers to.
func RefFromEvent(path string) (Ref, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ref{}, fmt.Errorf("read event payload: %w", err)
	}
	return RefFromEventPayload(data)
}

func RefFromEventPayload(data []byte) (Ref, error) {
	if !gjson.ValidBytes(data) {
		return Ref{}, fmt.Errorf("event payload is not valid json")
	}

	number := gjson.GetBytes(data, "pull_request.number")
	if !number.Exists() {
		number = gjson.GetBytes(data, "number")
	}

	ref := Ref{
		Owner:  gjson.GetBytes(data, "repository.owner.login").Str,
		Repo:   gjson.GetBytes(data, "repository.name").Str,
		Number: int(number.Int()),
	}
	if err := ref.Validate(); err != nil {
		return Ref{}, fmt.Errorf("event payload: %w", err)
	}
	return ref, nil
}
