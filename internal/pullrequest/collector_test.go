package pullrequest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/pr-summary/internal/logging"
)

func TestBuildDiffBundle(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		bundle, err := BuildDiffBundle(nil)
		require.NoError(t, err)
		assert.Empty(t, bundle)
	})

	t.Run("every record once in listing order", func(t *testing.T) {
		files := []ChangedFile{
			{Filename: "b.go", Patch: "@@ -1 +1 @@\n-old\n+new"},
			{Filename: "logo.png"},
			{Filename: "a.go", Patch: "+added"},
		}
		bundle, err := BuildDiffBundle(files)
		require.NoError(t, err)

		records := []string{
			`{"filename":"b.go","patch":"@@ -1 +1 @@\n-old\n+new"}`,
			`{"filename":"logo.png","patch":""}`,
			`{"filename":"a.go","patch":"+added"}`,
		}
		assert.Equal(t, strings.Join(records, "\n"), bundle)
		for _, r := range records {
			assert.Equal(t, 1, strings.Count(bundle, r))
		}
	})
}

func TestBuildDiffBundle_KeepsHTMLCharacters(t *testing.T) {
	bundle, err := BuildDiffBundle([]ChangedFile{{Filename: "ch.go", Patch: "+\tv := <-ch && a > b"}})
	require.NoError(t, err)
	assert.Equal(t, `{"filename":"ch.go","patch":"+\tv := <-ch && a > b"}`, bundle)
	assert.NotContains(t, bundle, `\u00`)
}

func TestCollector_CollectDiff(t *testing.T) {
	client, mux := newTestClient(t)
	mux.HandleFunc("GET /repos/acme/widgets/pulls/42/files", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("page"))
		fmt.Fprint(w, `[{"filename":"a.txt","status":"modified","patch":"+line1"}]`)
	})

	c := NewCollector(client, logging.Discard())
	bundle, err := c.CollectDiff(context.Background(), Ref{Owner: "acme", Repo: "widgets", Number: 42})
	require.NoError(t, err)
	assert.Equal(t, `{"filename":"a.txt","patch":"+line1"}`, bundle)
}

func TestCollector_CollectDiff_APIError(t *testing.T) {
	client, mux := newTestClient(t)
	mux.HandleFunc("GET /repos/acme/widgets/pulls/7/files", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})

	c := NewCollector(client, logging.Discard())
	_, err := c.CollectDiff(context.Background(), Ref{Owner: "acme", Repo: "widgets", Number: 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acme/widgets#7")
}
