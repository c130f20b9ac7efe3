package arxiv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSendsQueryAndPage(t *testing.T) {
	t.Parallel()

	var gotQuery, gotPage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotPage = r.URL.Query().Get("p")
		_, _ = w.Write([]byte(`[
			{
				"id": "2101.00001",
				"title": "A Study of Things",
				"summary": "We study things.",
				"authors": [["A. Author"], ["B. Author"]],
				"links": [
					{"href": "https://arxiv.org/abs/2101.00001", "rel": "alternate"},
					{"href": "https://arxiv.org/pdf/2101.00001", "rel": "related", "type": "application/pdf", "title": "pdf"}
				],
				"published": "2021-01-01T00:00:00Z",
				"updated": "2021-01-02T00:00:00Z",
				"categories": [{"term": "cs.DS", "scheme": "http://arxiv.org/schemas/atom"}]
			}
		]`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, server.Client())
	results, err := client.Search(context.Background(), Params{Page: 7, Query: "sorting networks"})
	require.NoError(t, err)

	assert.Equal(t, "sorting networks", gotQuery)
	assert.Equal(t, "7", gotPage)

	require.Len(t, results, 1)
	assert.Equal(t, "2101.00001", results[0].ID)
	assert.Equal(t, "A. Author, B. Author", results[0].AuthorLine())
	assert.Equal(t, "cs.DS", results[0].Categories[0].Term)

	link, ok := results[0].PDFLink()
	require.True(t, ok)
	assert.Equal(t, "https://arxiv.org/pdf/2101.00001", link.Href)
}

func TestSearchPropagatesServiceErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, server.Client())
	_, err := client.Search(context.Background(), NewParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSearchPropagatesDecodeErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, server.Client())
	_, err := client.Search(context.Background(), NewParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestExtractIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"abs url", "https://arxiv.org/abs/2101.00001", "2101.00001"},
		{"pdf url", "https://arxiv.org/pdf/2205.12345.pdf", "2205.12345"},
		{"uppercase pdf suffix", "https://arxiv.org/pdf/2205.12345.PDF", "2205.12345"},
		{"versioned", "https://arxiv.org/abs/2308.01234v2", "2308.01234v2"},
		{"not arxiv", "https://example.com/foo", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extractIdentifier(tt.in))
		})
	}
}
