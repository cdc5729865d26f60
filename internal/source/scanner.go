// Package source discovers article files under a project root: walking
// the tree, applying the configured doublestar include/exclude patterns
// and optional .gitignore rules, in a fixed deterministic order so that
// repeated builds assign the same document IDs to the same files.
package source

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/KochevDmitry/mai-ir/internal/config"
)

// Scanner walks one project root and yields the file paths eligible to
// be indexed as articles.
type Scanner struct {
	root            string
	include         []string
	exclude         []string
	gitignoreParser *config.GitignoreParser
}

// New creates a Scanner from cfg. When cfg.Source.RespectGitignore is
// set, .gitignore in root (if any) contributes additional exclusions.
func New(cfg *config.Config) *Scanner {
	s := &Scanner{
		root:    cfg.Project.Root,
		include: cfg.Source.Include,
		exclude: cfg.Source.Exclude,
	}
	if cfg.Source.RespectGitignore {
		gp := config.NewGitignoreParser()
		if err := gp.LoadGitignore(cfg.Project.Root); err == nil {
			s.gitignoreParser = gp
		}
	}
	return s
}

// Scan walks root and returns every regular file that passes the
// include/exclude/gitignore filters, sorted lexicographically by
// relative path so build order is stable across runs.
func (s *Scanner) Scan() ([]string, error) {
	var matches []string

	err := filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && s.isExcluded(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.isExcluded(rel, false) {
			return nil
		}
		if !s.isIncluded(rel) {
			return nil
		}
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}

func (s *Scanner) isIncluded(rel string) bool {
	if len(s.include) == 0 {
		return true
	}
	for _, pattern := range s.include {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

func (s *Scanner) isExcluded(rel string, isDir bool) bool {
	for _, pattern := range s.exclude {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	if s.gitignoreParser != nil && s.gitignoreParser.ShouldIgnore(rel, isDir) {
		return true
	}
	return false
}
