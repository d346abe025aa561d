package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/palette/internal/search"
)

func demoSource(t *testing.T) *Source {
	t.Helper()
	s, err := Demo()
	require.NoError(t, err)
	return s
}

func TestDemoCorpusParses(t *testing.T) {
	s := demoSource(t)
	scopes, err := s.FetchScopes(context.Background())
	require.NoError(t, err)
	assert.Len(t, scopes, 3)
}

func TestFetchResultsSubstringMatch(t *testing.T) {
	s := demoSource(t)
	resp, err := s.FetchResults(context.Background(), search.Request{Query: "milk"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Results)

	// Title match ("Milk" list item) outranks the snippet match.
	assert.Equal(t, "l-shopping-milk", resp.Results[0].ID)
}

func TestFetchResultsProfileFilter(t *testing.T) {
	s := demoSource(t)
	resp, err := s.FetchResults(context.Background(), search.Request{Profile: "bob"})
	require.NoError(t, err)
	for _, r := range resp.Results {
		assert.Equal(t, "bob", r.InstanceID)
	}
	assert.Len(t, resp.Results, 2)
}

func TestFetchResultsPluginFilter(t *testing.T) {
	s := demoSource(t)
	resp, err := s.FetchResults(context.Background(), search.Request{Profile: "alice", Plugin: "lists"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)
	for _, r := range resp.Results {
		assert.Equal(t, "lists", r.PluginID)
	}
}

func TestFetchResultsBrowseWithEmptyQuery(t *testing.T) {
	s := demoSource(t)
	resp, err := s.FetchResults(context.Background(), search.Request{Profile: "alice"})
	require.NoError(t, err)
	assert.Len(t, resp.Results, 5)
}

func TestFetchResultsTagTerm(t *testing.T) {
	s := demoSource(t)
	resp, err := s.FetchResults(context.Background(), search.Request{Query: "tag:pinned"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	for _, r := range resp.Results {
		assert.Contains(t, []string{"n-groceries", "n-ideas"}, r.ID)
	}
}

func TestFetchResultsAllTermsMustMatch(t *testing.T) {
	s := demoSource(t)
	resp, err := s.FetchResults(context.Background(), search.Request{Query: "milk zzz"})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

func TestFetchResultsCanceledContext(t *testing.T) {
	s := demoSource(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.FetchResults(ctx, search.Request{Query: "milk"})
	assert.Error(t, err)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("scopes: [pluginId: {{"))
	assert.Error(t, err)
}
