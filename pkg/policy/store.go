// Package policy answers HR policy questions by keyword lookup over a yaml
// corpus. The lookup strategy is deliberately swappable: the dialog core only
// ever sees "best matching policy text or nothing".
package policy

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"hrdesk/pkg/config"
)

// Policy is one titled policy entry from the corpus.
type Policy struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Text returns the user-facing form of the policy.
func (p Policy) Text() string {
	return p.Title + "\n" + strings.TrimSpace(p.Body)
}

type corpusFile struct {
	Policies []Policy `yaml:"policies"`
}

// Store holds the policy corpus and serves fuzzy keyword searches over it.
// Safe for concurrent reads; Load may be called at any time to swap the
// corpus (hot reload).
type Store struct {
	path string
	topK int

	mu       sync.RWMutex
	policies []Policy
	haystack []string // one searchable "TITLE body" string per policy
}

// NewStore creates a policy store reading its corpus from path. topK bounds
// how many fuzzy candidates are considered per query.
func NewStore(path string, topK int) *Store {
	if topK <= 0 {
		topK = 3
	}
	return &Store{path: path, topK: topK}
}

// Load reads and indexes the corpus file, replacing any previous corpus.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read policy corpus: %w", err)
	}

	var corpus corpusFile
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		return fmt.Errorf("parse policy corpus: %w", err)
	}
	if len(corpus.Policies) == 0 {
		return fmt.Errorf("policy corpus %s contains no policies", s.path)
	}

	haystack := make([]string, len(corpus.Policies))
	for i, p := range corpus.Policies {
		haystack[i] = p.Title + " " + p.Body
	}

	s.mu.Lock()
	s.policies = corpus.Policies
	s.haystack = haystack
	s.mu.Unlock()

	slog.Info("Policy corpus loaded", "path", s.path, "policies", len(corpus.Policies))
	return nil
}

// WatchReload re-loads the corpus whenever the file changes on disk,
// until ctx is cancelled. A corrupt rewrite keeps the previous corpus.
func (s *Store) WatchReload(ctx context.Context) {
	reloadCh := config.Watch(ctx, s.path)
	go func() {
		for range reloadCh {
			if err := s.Load(); err != nil {
				slog.Error("Policy corpus reload failed, keeping previous", "error", err)
			}
		}
	}()
}

// All returns a copy of the loaded policies.
func (s *Store) All() []Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]Policy, len(s.policies))
	copy(cp, s.policies)
	return cp
}

// Search returns the best-matching policy for a free-text query, or false
// when nothing in the corpus matches at all. The query is broken into words
// and each word is fuzzy-matched against every policy; per-policy scores
// accumulate so the entry matching the most query words wins.
func (s *Store) Search(query string) (Policy, bool) {
	words := queryWords(query)
	if len(words) == 0 {
		return Policy{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	scores := make(map[int]int)
	for _, word := range words {
		matches := fuzzy.Find(word, s.haystack)
		limit := s.topK
		if limit > len(matches) {
			limit = len(matches)
		}
		for _, m := range matches[:limit] {
			scores[m.Index] += m.Score + 1
		}
	}
	if len(scores) == 0 {
		return Policy{}, false
	}

	best, bestScore := -1, 0
	for idx, score := range scores {
		if best < 0 || score > bestScore {
			best, bestScore = idx, score
		}
	}
	slog.Debug("Policy match", "title", s.policies[best].Title, "score", bestScore)
	return s.policies[best], true
}

// queryWords splits a query into lowercased words worth matching on; very
// short words carry no signal and are dropped.
func queryWords(query string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		w = strings.Trim(w, ".,:;!?'\"()")
		if len(w) >= 3 {
			words = append(words, w)
		}
	}
	return words
}
