package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mouse-blink/cooplint/internal/syntax"
)

// Parser turns one compilation unit into a syntax tree.
type Parser interface {
	Parse(ctx context.Context, file string, source []byte) (*syntax.Tree, error)
}

// CachingParser memoizes lowered trees keyed by file path and content
// hash, so repeated runs over an unchanged project skip re-parsing.
// Trees are immutable after construction, so sharing them is safe.
type CachingParser struct {
	inner Parser
	cache *lru.Cache[string, *syntax.Tree]
}

// DefaultCacheSize bounds the number of retained trees.
const DefaultCacheSize = 512

// NewCachingParser wraps inner with an LRU tree cache. A non-positive
// size falls back to DefaultCacheSize.
func NewCachingParser(inner Parser, size int) (*CachingParser, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, *syntax.Tree](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create parse cache: %w", err)
	}

	return &CachingParser{inner: inner, cache: cache}, nil
}

// Parse returns the cached tree for unchanged content, parsing once on miss.
func (p *CachingParser) Parse(ctx context.Context, file string, source []byte) (*syntax.Tree, error) {
	key := fmt.Sprintf("%s@%x", file, sha256.Sum256(source))

	if tree, ok := p.cache.Get(key); ok {
		return tree, nil
	}

	tree, err := p.inner.Parse(ctx, file, source)
	if err != nil {
		return nil, err
	}

	p.cache.Add(key, tree)

	return tree, nil
}

// Len returns the number of cached trees.
func (p *CachingParser) Len() int { return p.cache.Len() }
