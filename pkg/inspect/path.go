// Package inspect provides action graph inspection utilities for the
// simulator and debugging tools.
//
// The inspect package offers a unified interface for:
//   - Parsing query expressions (e.g., "gameplay/fire@left")
//   - Resolving button, field, side and space names
//   - Reading the combined state of an action
//   - Formatting output for display
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// Path errors.
var (
	ErrEmptyPath   = errors.New("empty path")
	ErrInvalidPath = errors.New("invalid path format")
	ErrInvalidSide = errors.New("invalid subaction")
)

// Path represents a parsed inspection query.
// Format: set[/action[@subaction]]
type Path struct {
	// Set is the action set name.
	Set string

	// Action is the action name, empty for a set query.
	Action string

	// Subaction is the top-level user path the query is filtered by, or
	// "" for all of them.
	Subaction string

	// IsPartial indicates the path names a set only.
	IsPartial bool

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a query string into a Path.
//
// Supported formats:
//   - "set" - partial (for listing actions)
//   - "set/action" - action state across every subaction path
//   - "set/action@left" - action state for one hand
//   - "set/action@/user/hand/right" - action state for a user path
func ParsePath(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}

	p := &Path{Raw: input}

	query := input
	if at := strings.IndexByte(input, '@'); at >= 0 {
		query = input[:at]
		sub, err := parseSubaction(input[at+1:])
		if err != nil {
			return nil, err
		}
		p.Subaction = sub
	}

	if strings.HasPrefix(query, "/") || strings.Contains(query, "//") {
		return nil, ErrInvalidPath
	}
	parts := strings.Split(query, "/")
	if len(parts) > 2 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, input)
	}
	for _, part := range parts {
		if !xrpath.IsValidName(part) {
			return nil, fmt.Errorf("%w: bad name %q", ErrInvalidPath, part)
		}
	}

	p.Set = parts[0]
	if len(parts) == 1 {
		if p.Subaction != "" {
			return nil, fmt.Errorf("%w: subaction without action", ErrInvalidPath)
		}
		p.IsPartial = true
		return p, nil
	}
	p.Action = parts[1]
	return p, nil
}

// parseSubaction accepts a side name or a top-level user path.
func parseSubaction(s string) (string, error) {
	if side, ok := ResolveSide(s); ok {
		return xrpath.HandPath(side), nil
	}
	switch s {
	case xrpath.UserHandLeft, xrpath.UserHandRight, xrpath.UserHead, xrpath.UserGamepad:
		return s, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidSide, s)
}

// String returns the path in its canonical form.
func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString(p.Set)
	if p.IsPartial {
		return sb.String()
	}
	sb.WriteString("/")
	sb.WriteString(p.Action)
	if p.Subaction != "" {
		sb.WriteString("@")
		sb.WriteString(p.Subaction)
	}
	return sb.String()
}
