package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Store holds the categorized topic dataset. It is loaded once at startup
// and never mutated afterwards, so it is safe for concurrent readers.
type Store struct {
	categories []Category
	index      map[string]int
}

// Category is an ordered set of named subtopics.
type Category struct {
	name   string
	topics []Topic
	index  map[string]int
}

// Topic is a named markdown content entry within a category.
type Topic struct {
	Name    string
	Content string
}

// Load decodes the dataset JSON from r, preserving the document order of
// category and subtopic keys. encoding/json maps would lose that order, so
// the object is walked token by token.
func Load(r io.Reader) (*Store, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("dataset root: %w", err)
	}

	s := &Store{index: make(map[string]int)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("category key: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("category key: expected string, got %v", tok)
		}

		cat, err := loadCategory(dec, name)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}

		if i, seen := s.index[name]; seen {
			// Duplicate category: last content wins, first position wins.
			s.categories[i] = cat
			continue
		}
		s.index[name] = len(s.categories)
		s.categories = append(s.categories, cat)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("dataset root: %w", err)
	}
	return s, nil
}

func loadCategory(dec *json.Decoder, name string) (Category, error) {
	cat := Category{name: name, index: make(map[string]int)}

	if err := expectDelim(dec, '{'); err != nil {
		return cat, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return cat, fmt.Errorf("subtopic key: %w", err)
		}
		topic, ok := tok.(string)
		if !ok {
			return cat, fmt.Errorf("subtopic key: expected string, got %v", tok)
		}

		var content string
		if err := dec.Decode(&content); err != nil {
			return cat, fmt.Errorf("subtopic %q: %w", topic, err)
		}

		if i, seen := cat.index[topic]; seen {
			cat.topics[i].Content = content
			continue
		}
		cat.index[topic] = len(cat.topics)
		cat.topics = append(cat.topics, Topic{Name: topic, Content: content})
	}
	if _, err := dec.Token(); err != nil {
		return cat, err
	}
	return cat, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// LoadFile loads the dataset from a local JSON file.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return s, nil
}

// Categories returns category names in stored order.
func (s *Store) Categories() []string {
	names := make([]string, len(s.categories))
	for i, c := range s.categories {
		names[i] = c.name
	}
	return names
}

// Category looks up a category by name.
func (s *Store) Category(name string) (*Category, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return &s.categories[i], true
}

// Len returns the number of categories.
func (s *Store) Len() int {
	return len(s.categories)
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Topics returns subtopic names in stored order.
func (c *Category) Topics() []string {
	names := make([]string, len(c.topics))
	for i, t := range c.topics {
		names[i] = t.Name
	}
	return names
}

// Content looks up a subtopic's markdown content.
func (c *Category) Content(topic string) (string, bool) {
	i, ok := c.index[topic]
	if !ok {
		return "", false
	}
	return c.topics[i].Content, true
}
