package analyzertests

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixture is a document written to disk so that it can be uploaded. Whoever creates a Fixture
// is responsible for removing it.
type Fixture struct {
	Path     string
	Filename string
	Content  string
}

// FixtureSpec describes a fixture to be created by WithFixtures.
type FixtureSpec struct {
	Filename string
	Content  string
}

var writeFixtureFile = os.WriteFile

// FixtureGenerator writes fixture documents into a scratch directory.
type FixtureGenerator struct {
	dir string
}

// NewFixtureGenerator returns a FixtureGenerator that writes into dir, or into the system temp
// directory if dir is empty.
func NewFixtureGenerator(dir string) *FixtureGenerator {
	if dir == "" {
		dir = os.TempDir()
	}
	return &FixtureGenerator{dir: dir}
}

func (g *FixtureGenerator) Dir() string {
	return g.dir
}

// CreateTestFile writes content as UTF-8 to a new file. The file name on disk is made unique so
// that concurrent or repeated runs never collide; Filename keeps the name that is reported to
// the analyzer.
func (g *FixtureGenerator) CreateTestFile(filename, content string) (Fixture, error) {
	if err := os.MkdirAll(g.dir, 0755); err != nil {
		return Fixture{}, fmt.Errorf("error creating scratch directory: %w", err)
	}
	path := filepath.Join(g.dir, uuid.NewString()+"-"+filepath.Base(filename))
	if err := writeFixtureFile(path, []byte(content), 0600); err != nil {
		_ = os.Remove(path)
		return Fixture{}, fmt.Errorf("error writing fixture file: %w", err)
	}
	return Fixture{Path: path, Filename: filename, Content: content}, nil
}

// Remove deletes the fixture file. A file that is already gone is not an error.
func (f Fixture) Remove() error {
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// WithFixtures creates the specified fixtures, calls action with them, and then removes them.
// The files are removed even if the test case fails or panics partway through; a failure to
// remove one is only logged.
func WithFixtures(t *T, specs []FixtureSpec, action func([]Fixture)) {
	var fixtures []Fixture
	defer func() {
		for _, f := range fixtures {
			if err := f.Remove(); err != nil {
				t.Debug("Could not remove fixture %s: %s", f.Path, err)
			}
		}
	}()
	for _, s := range specs {
		f, err := t.Fixtures().CreateTestFile(s.Filename, s.Content)
		require.NoError(t, err, "could not create fixture %s", s.Filename)
		t.Debug("Created fixture %s", f.Path)
		fixtures = append(fixtures, f)
	}
	action(fixtures)
}
