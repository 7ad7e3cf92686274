// Package sandbox confines user-supplied paths to a fixed data root.
package sandbox

import (
	"os"
	"path/filepath"
	"strings"

	"csvlens/domain/core"
)

// Resolver canonicalizes paths against a data root and rejects anything that
// resolves outside it. Resolution happens fresh on every call; nothing is
// cached.
type Resolver struct {
	root string
}

// NewResolver creates a resolver for the given data root. The root itself is
// canonicalized once so later ancestor checks compare canonical paths.
func NewResolver(dataRoot string) (*Resolver, error) {
	abs, err := filepath.Abs(dataRoot)
	if err != nil {
		return nil, core.NewNotFoundError(dataRoot)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, core.NewNotFoundError(dataRoot)
	}
	return &Resolver{root: canonical}, nil
}

// Root returns the canonical data root
func (r *Resolver) Root() string {
	return r.root
}

// Resolve joins a relative input under the root, canonicalizes the result
// (following symlinks and .. segments), and verifies that the canonical path
// is the root or a descendant of it. The containment check runs on the
// canonical path so symlinks cannot escape the sandbox.
func (r *Resolver) Resolve(input string) (string, error) {
	p := input
	if !filepath.IsAbs(p) {
		p = filepath.Join(r.root, p)
	}

	canonical, err := filepath.EvalSymlinks(p)
	if err != nil {
		return "", core.NewNotFoundError(input)
	}
	if _, err := os.Stat(canonical); err != nil {
		return "", core.NewNotFoundError(input)
	}

	if !r.contains(canonical) {
		return "", core.NewSandboxViolationError(input)
	}
	return canonical, nil
}

// contains reports whether p equals the root or has it as an ancestor
func (r *Resolver) contains(p string) bool {
	if p == r.root {
		return true
	}
	return strings.HasPrefix(p, r.root+string(filepath.Separator))
}
