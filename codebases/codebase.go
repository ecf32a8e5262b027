package codebases

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Codebase is an in-memory store of tracked files keyed by path relative
// to the project root. Files are never removed within a run.
type Codebase struct {
	files map[string]*TrackedFile
}

func New() *Codebase {
	return &Codebase{
		files: make(map[string]*TrackedFile),
	}
}

// Scan ingests all files under root whose relative path matches pattern.
func Scan(root string, pattern string) (*Codebase, error) {
	codebase := New()
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)
		if !MatchPattern(pattern, relPath) {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return codebase.Add(relPath, string(content))
	})
	if err != nil {
		return nil, err
	}
	return codebase, nil
}

func (c *Codebase) Add(path string, contents string) error {
	if _, ok := c.files[path]; ok {
		return fmt.Errorf("file already tracked: %s", path)
	}
	c.files[path] = newTrackedFile(path, contents)
	return nil
}

func (c *Codebase) Retrieve(path string) (*TrackedFile, bool) {
	file, ok := c.files[path]
	return file, ok
}

func (c *Codebase) Edit(path string, contents string) error {
	file, ok := c.files[path]
	if !ok {
		return fmt.Errorf("file not tracked: %s", path)
	}
	file.append(contents)
	return nil
}

func (c *Codebase) Contains(path string) bool {
	_, ok := c.files[path]
	return ok
}

func (c *Codebase) NumFiles() int {
	return len(c.files)
}

func (c *Codebase) Paths() []string {
	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// FormattedPaths renders the tracked paths as a bulleted list, one per line.
func (c *Codebase) FormattedPaths() string {
	var sb strings.Builder
	for i, path := range c.Paths() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("* ")
		sb.WriteString(path)
	}
	return sb.String()
}

// WriteTo mirrors the current contents of every tracked file onto the
// filesystem under dir, preserving the directory structure.
func (c *Codebase) WriteTo(dir string) error {
	for _, path := range c.Paths() {
		file := c.files[path]
		target := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(target, []byte(file.Contents()), 0644); err != nil {
			return err
		}
	}
	return nil
}
