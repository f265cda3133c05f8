package pullrequest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/go-github/v66/github"

	"github.com/roivaz/pr-summary/internal/logging"
)

// ChangedFile is the serialized form of one file in a pull request. Patch is
// empty for binary files.
type ChangedFile struct {
	Filename string `json:"filename"`
	Patch    string `json:"patch"`
}

type Collector struct {
	client *github.Client
	log    logging.Logger
}

func NewCollector(client *github.Client, log logr.Logger) *Collector {
	return &Collector{client: client, log: logging.New(log).WithName("collector")}
}

// CollectDiff lists the files changed by the pull request and concatenates
// their serialized records. Only the first page returned by the API is used.
func (c *Collector) CollectDiff(ctx context.Context, ref Ref) (string, error) {
	files, _, err := c.client.PullRequests.ListFiles(ctx, ref.Owner, ref.Repo, ref.Number, nil)
	if err != nil {
		return "", fmt.Errorf("list files for %s: %w", ref, err)
	}

	changed := make([]ChangedFile, 0, len(files))
	for _, f := range files {
		c.log.Debug("changed file", "pr", ref.String(), "file", f.GetFilename(), "status", f.GetStatus())
		changed = append(changed, ChangedFile{Filename: f.GetFilename(), Patch: f.GetPatch()})
	}

	bundle, err := BuildDiffBundle(changed)
	if err != nil {
		return "", err
	}
	c.log.Info("collected diff", "pr", ref.String(), "files", len(changed), "chars", len(bundle))
	c.log.Debug("raw diff", "pr", ref.String(), "diff", bundle)
	return bundle, nil
}

// BuildDiffBundle serializes each file as one JSON record, newline separated,
// in the order given. HTML characters are left unescaped so patches reach the
// model as written.
func BuildDiffBundle(files []ChangedFile) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for _, f := range files {
		// Encode terminates every record with a newline
		if err := enc.Encode(f); err != nil {
			return "", fmt.Errorf("serialize %s: %w", f.Filename, err)
		}
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
