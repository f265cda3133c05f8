package pullrequest

import (
	"errors"
	"fmt"
	"strings"

	vcsurl "github.com/gitsight/go-vcsurl"
)

// Ref identifies a pull request within a repository.
type Ref struct {
	Owner  string
	Repo   string
	Number int
}

func (r Ref) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// Repository names a repository by owner login and name.
type Repository struct {
	Owner string
	Name  string
}

func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// PullRequest returns the Ref of pull request number in r.
func (r Repository) PullRequest(number int) Ref {
	return Ref{Owner: r.Owner, Repo: r.Name, Number: number}
}

func (r Ref) Validate() error {
	var errs []error
	if r.Owner == "" {
		errs = append(errs, errors.New("repository owner is required"))
	}
	if r.Repo == "" {
		errs = append(errs, errors.New("repository name is required"))
	}
	if r.Number <= 0 {
		errs = append(errs, fmt.Errorf("pull request number must be positive, got %d", r.Number))
	}
	return errors.Join(errs...)
}

// ParseRepository accepts either "owner/name" or a repository URL
// (https, ssh or git@ forms).
func ParseRepository(value string) (Repository, error) {
	owner, name, err := splitRepository(value)
	if err != nil {
		return Repository{}, err
	}
	return Repository{Owner: owner, Name: name}, nil
}

func splitRepository(value string) (owner, name string, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", "", errors.New("empty repository")
	}

	if !strings.Contains(value, "://") && !strings.HasPrefix(value, "git@") {
		parts := strings.Split(strings.Trim(value, "/"), "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return "", "", fmt.Errorf("repository %q must be in owner/name form", value)
		}
		return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
	}

	info, err := vcsurl.Parse(value)
	if err != nil {
		return "", "", fmt.Errorf("parse repository url %q: %w", value, err)
	}
	if info.Username == "" || info.Name == "" {
		return "", "", fmt.Errorf("repository url %q has no owner/name", value)
	}
	return info.Username, strings.TrimSuffix(info.Name, ".git"), nil
}
