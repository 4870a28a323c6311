//go:build tools

package tools

// Tool dependencies tracked with blank imports so `go run` resolves the
// pinned versions. Mocks are configured in .mockery.yaml; run
// go run github.com/vektra/mockery/v2 to refresh them.
import (
	_ "github.com/vektra/mockery/v2"
)
