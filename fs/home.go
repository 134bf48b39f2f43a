package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the default home directory.
const HomeEnv = "NEARBY_HOME"

// Home is the root of the directories nearby writes to.
//
// Layout:
//
//	<root>/
//	  documents/                       (user-visible data)
//	  support/                         (application-private data)
//	    bookmarked_locations.json
type Home struct {
	root string
}

// NewHome creates a Home with an explicit root path.
func NewHome(root string) Home {
	return Home{root: root}
}

// DefaultHome returns the home named by NEARBY_HOME, or "nearby" under the
// user's config directory.
func DefaultHome() (Home, error) {
	if root := os.Getenv(HomeEnv); root != "" {
		return Home{root: root}, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return Home{}, fmt.Errorf("determine config directory: %w", err)
	}
	return Home{root: filepath.Join(base, "nearby")}, nil
}

// Root returns the home directory path.
func (h Home) Root() string {
	return h.root
}

// Documents returns the directory for user-visible data.
func (h Home) Documents() string {
	return filepath.Join(h.root, "documents")
}

// ApplicationSupport returns the directory for application-private data.
func (h Home) ApplicationSupport() string {
	return filepath.Join(h.root, "support")
}
