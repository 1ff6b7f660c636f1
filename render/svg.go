package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ErrEmptyDOT is returned by SVG when given no DOT source.
var ErrEmptyDOT = errors.New("render: empty DOT source")

// SVG lays out dot with Graphviz and returns the SVG document.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	if len(dot) == 0 {
		return nil, ErrEmptyDOT
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
