// Package source implements a search provider backed by a YAML corpus of
// scopes and documents. It powers the standalone binary (embedded demo
// corpus or a user-supplied file) and doubles as the integration-test
// backend. Matching is plain case-insensitive substring search with a small
// field weighting; `tag:x` terms filter on document tags.
package source

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/palette/internal/catalog"
	"github.com/oakwood-commons/palette/internal/search"
)

// Document is one searchable record in the corpus.
type Document struct {
	PluginID   string        `yaml:"pluginId"`
	InstanceID string        `yaml:"instanceId"`
	ID         string        `yaml:"id"`
	Title      string        `yaml:"title"`
	Subtitle   string        `yaml:"subtitle,omitempty"`
	Snippet    string        `yaml:"snippet,omitempty"`
	Tags       []string      `yaml:"tags,omitempty"`
	Launch     search.Launch `yaml:"launch"`
}

// Corpus is the on-disk shape of a source file.
type Corpus struct {
	Scopes    []catalog.Scope `yaml:"scopes"`
	Documents []Document      `yaml:"documents"`
}

// Source serves scope and search requests from an in-memory corpus.
type Source struct {
	corpus Corpus
}

// New wraps a corpus in a provider.
func New(c Corpus) *Source {
	return &Source{corpus: c}
}

// Parse decodes a YAML corpus.
func Parse(data []byte) (*Source, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	return New(c), nil
}

// LoadFile reads and decodes a corpus file.
func LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return Parse(data)
}

// FetchScopes lists the searchable scopes declared by the corpus.
func (s *Source) FetchScopes(ctx context.Context) ([]catalog.Scope, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.corpus.Scopes, nil
}

// FetchResults runs a search. An empty query with a profile or plugin set
// browses everything in scope. Results come back best-score first, ties in
// corpus order.
func (s *Source) FetchResults(ctx context.Context, req search.Request) (search.Response, error) {
	if err := ctx.Err(); err != nil {
		return search.Response{}, err
	}

	terms, tags := splitTerms(req.Query)

	type scored struct {
		res   search.Result
		score float64
		pos   int
	}
	var hits []scored
	for i, doc := range s.corpus.Documents {
		if req.Profile != "" && !strings.EqualFold(doc.InstanceID, req.Profile) {
			continue
		}
		if req.Plugin != "" && !strings.EqualFold(doc.PluginID, req.Plugin) {
			continue
		}
		if !hasAllTags(doc, tags) {
			continue
		}
		score, ok := scoreDoc(doc, terms)
		if !ok {
			continue
		}
		hits = append(hits, scored{res: resultFor(doc, score), score: score, pos: i})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].pos < hits[j].pos
	})

	results := make([]search.Result, 0, len(hits))
	for _, h := range hits {
		results = append(results, h.res)
	}
	return search.Response{Results: results}, nil
}

func resultFor(doc Document, score float64) search.Result {
	return search.Result{
		PluginID:   doc.PluginID,
		InstanceID: doc.InstanceID,
		ID:         doc.ID,
		Title:      doc.Title,
		Subtitle:   doc.Subtitle,
		Snippet:    doc.Snippet,
		Score:      score,
		Launch:     doc.Launch,
	}
}

// splitTerms separates ordinary search terms from tag: filters.
func splitTerms(query string) (terms, tags []string) {
	for _, f := range strings.Fields(query) {
		if t, ok := strings.CutPrefix(f, "tag:"); ok {
			if t != "" {
				tags = append(tags, t)
			}
			continue
		}
		terms = append(terms, strings.ToLower(f))
	}
	return terms, tags
}

func hasAllTags(doc Document, tags []string) bool {
	for _, want := range tags {
		found := false
		for _, have := range doc.Tags {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// scoreDoc requires every term to match somewhere; title matches weigh more
// than subtitle or snippet matches. No terms means a browse match.
func scoreDoc(doc Document, terms []string) (float64, bool) {
	if len(terms) == 0 {
		return 0, true
	}
	title := strings.ToLower(doc.Title)
	subtitle := strings.ToLower(doc.Subtitle)
	snippet := strings.ToLower(doc.Snippet)

	var score float64
	for _, term := range terms {
		switch {
		case strings.Contains(title, term):
			score += 2
		case strings.Contains(subtitle, term):
			score += 1
		case strings.Contains(snippet, term):
			score += 0.5
		default:
			return 0, false
		}
	}
	return score, true
}
