//go:build !cgo

package adapter

import (
	"context"
	"errors"

	"github.com/mouse-blink/cooplint/internal/syntax"
)

// ErrParserUnavailable signals a build without the tree-sitter grammar.
var ErrParserUnavailable = errors.New("kotlin parser unavailable: binary built without cgo")

// KotlinParser is the no-cgo stand-in for the tree-sitter parser.
type KotlinParser struct{}

// NewKotlinParser constructs the stub parser.
func NewKotlinParser() *KotlinParser {
	return &KotlinParser{}
}

// ParserAvailable reports whether a real Kotlin parser is compiled in.
func ParserAvailable() bool { return false }

// Parse always fails; the engine surfaces the error as a file error.
func (p *KotlinParser) Parse(_ context.Context, _ string, _ []byte) (*syntax.Tree, error) {
	return nil, ErrParserUnavailable
}
