// Package wordbank loads themed word lists and partitions them by task id.
//
// A word bank is a directory of YAML files. Each file names a theme and
// lists, per task id, the words of that theme dealt with that task:
//
//	theme: Animals
//	1: [giraffe, penguin]
//	5: [rooster]
//
// Files contributing to the same task id accumulate. Any malformed file
// fails the whole load so a game never starts from a partial bank.
package wordbank

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/charades/internal/models"
	"github.com/KirkDiggler/charades/internal/tasks"
	"gopkg.in/yaml.v3"
)

const themeKey = "theme"

// ErrLoadFailure wraps every error produced while loading a word bank
var ErrLoadFailure = errors.New("word bank load failure")

// Bank maps a task id to the words that can be dealt with it
type Bank map[int][]models.WordEntry

// Clone returns a deep copy so a game can consume words without touching the source
func (b Bank) Clone() Bank {
	clone := make(Bank, len(b))
	for id, words := range b {
		clone[id] = append([]models.WordEntry(nil), words...)
	}
	return clone
}

// Counts returns the number of words per task id
func (b Bank) Counts() map[int]int {
	counts := make(map[int]int, len(b))
	for id, words := range b {
		counts[id] = len(words)
	}
	return counts
}

// Total returns the number of words across all task ids
func (b Bank) Total() int {
	total := 0
	for _, words := range b {
		total += len(words)
	}
	return total
}

// TaskIDs returns the task ids holding at least one word, ascending
func (b Bank) TaskIDs() []int {
	ids := make([]int, 0, len(b))
	for id, words := range b {
		if len(words) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Loader produces a fresh word bank
//
//go:generate mockgen -package=mocks -destination=mocks/mock_loader.go github.com/KirkDiggler/charades/internal/wordbank Loader
type Loader interface {
	Load() (Bank, error)
}

// Source loads a word bank from a directory tree of an fs.FS
type Source struct {
	// FS holds the theme files
	FS fs.FS

	// Root is the directory walked inside FS. Defaults to ".".
	Root string

	// Catalog validates the task ids. Defaults to tasks.Default().
	Catalog *tasks.Catalog
}

// Load walks the source and builds the bank
func (s *Source) Load() (Bank, error) {
	if s == nil || s.FS == nil {
		return nil, fmt.Errorf("%w: no file system configured", ErrLoadFailure)
	}

	root := s.Root
	if root == "" {
		root = "."
	}

	catalog := s.Catalog
	if catalog == nil {
		catalog = tasks.Default()
	}

	bank := make(Bank)
	err := fs.WalkDir(s.FS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isThemeFile(p) {
			return nil
		}

		data, err := fs.ReadFile(s.FS, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}

		return parseThemeFile(p, data, catalog, bank)
	})
	if err != nil {
		if errors.Is(err, ErrLoadFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}

	if bank.Total() == 0 {
		return nil, fmt.Errorf("%w: no words found under %q", ErrLoadFailure, root)
	}

	return bank, nil
}

func isThemeFile(p string) bool {
	base := path.Base(p)
	if strings.HasPrefix(base, ".") {
		return false
	}
	ext := strings.ToLower(path.Ext(base))
	return ext == ".yaml" || ext == ".yml"
}

// parseThemeFile validates one file completely before adding any of its words
func parseThemeFile(p string, data []byte, catalog *tasks.Catalog, bank Bank) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoadFailure, p, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return fmt.Errorf("%w: %s: empty file", ErrLoadFailure, p)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: %s: expected a mapping at the top level", ErrLoadFailure, p)
	}

	var theme string
	type taskWords struct {
		id    int
		words []string
	}
	var parsed []taskWords

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		if key.Value == themeKey {
			if value.Kind != yaml.ScalarNode || strings.TrimSpace(value.Value) == "" {
				return fmt.Errorf("%w: %s: theme must be a non-empty string", ErrLoadFailure, p)
			}
			theme = strings.TrimSpace(value.Value)
			continue
		}

		id, err := strconv.Atoi(key.Value)
		if err != nil {
			return fmt.Errorf("%w: %s: line %d: %q is not a task id", ErrLoadFailure, p, key.Line, key.Value)
		}
		if !catalog.Has(id) {
			return fmt.Errorf("%w: %s: line %d: unknown task id %d", ErrLoadFailure, p, key.Line, id)
		}
		if value.Kind != yaml.SequenceNode {
			return fmt.Errorf("%w: %s: line %d: task %d must list words", ErrLoadFailure, p, value.Line, id)
		}

		words := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			word := strings.TrimSpace(item.Value)
			if item.Kind != yaml.ScalarNode || word == "" {
				return fmt.Errorf("%w: %s: line %d: task %d has an empty or nested word", ErrLoadFailure, p, item.Line, id)
			}
			words = append(words, word)
		}
		parsed = append(parsed, taskWords{id: id, words: words})
	}

	if theme == "" {
		return fmt.Errorf("%w: %s: missing %q key", ErrLoadFailure, p, themeKey)
	}

	for _, tw := range parsed {
		for _, word := range tw.words {
			bank[tw.id] = append(bank[tw.id], models.WordEntry{Theme: theme, Word: word})
		}
	}

	return nil
}
