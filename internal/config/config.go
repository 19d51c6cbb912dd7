package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Sentinel errors reported to the CLI layer.
var (
	// ErrConfigUnreadable indicates the config file exists but cannot be read
	// or parsed. Callers must report this and exit non-zero rather than
	// silently falling back to defaults.
	ErrConfigUnreadable = errors.New("config file unreadable")

	// ErrInvalidValue indicates an unknown settings key or a value that
	// failed validation for its key.
	ErrInvalidValue = errors.New("invalid value")
)

// Settings keys. The set is fixed; unknown keys are rejected at the boundary.
const (
	KeyModel              = "model"
	KeyTemperature        = "temperature"
	KeyBaseBranch         = "base_branch"
	KeySystemMessage      = "system_message"
	KeyReviewInstructions = "review_instructions"
)

// Keys lists all settings keys in display order.
var Keys = []string{
	KeyModel,
	KeyTemperature,
	KeyBaseBranch,
	KeySystemMessage,
	KeyReviewInstructions,
}

// Setting is a single stored key/value pair.
type Setting struct {
	Key   string
	Value string
}

// storedValues is the on-disk shape of the config file. Absent keys are
// omitted so that resolution can distinguish "not set" from a zero value.
type storedValues struct {
	Model              string   `json:"model,omitempty"`
	Temperature        *float64 `json:"temperature,omitempty"`
	BaseBranch         string   `json:"base_branch,omitempty"`
	SystemMessage      string   `json:"system_message,omitempty"`
	ReviewInstructions string   `json:"review_instructions,omitempty"`
}

// Store holds the per-repository settings backed by a JSON file.
// It is constructed explicitly and passed to the resolver and CLI commands;
// there is no process-wide singleton.
type Store struct {
	path   string
	values storedValues
}

// StorePath returns the config file path for a repository root.
func StorePath(repoRoot string) string {
	return filepath.Join(repoRoot, ConfigFileName)
}

// Load reads the store backed by the given file. A missing file yields an
// empty store (defaults apply at resolution time). A present but unparsable
// file yields ErrConfigUnreadable.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigUnreadable, err)
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrConfigUnreadable, path, err)
	}

	return s, nil
}

// NewMemoryStore returns a store with no backing file, for resolution
// without filesystem side effects. Set still validates but skips
// persistence.
func NewMemoryStore() *Store {
	return &Store{}
}

// Path returns the backing file path, or "" for an in-memory store.
func (s *Store) Path() string {
	return s.path
}

// Init writes the built-in defaults to the backing file if it does not
// already exist. It reports whether a new file was created; calling Init
// on an initialized store is a no-op.
func (s *Store) Init() (bool, error) {
	if s.path == "" {
		return false, errors.New("store has no backing file")
	}

	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("%w: %v", ErrConfigUnreadable, err)
	}

	temp := DefaultTemperature
	s.values = storedValues{
		Model:              DefaultModel,
		Temperature:        &temp,
		BaseBranch:         DefaultBaseBranch,
		SystemMessage:      DefaultSystemMessage,
		ReviewInstructions: DefaultReviewInstructions,
	}

	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the stored value for a key and whether it is set.
// Unknown keys report as unset.
func (s *Store) Get(key string) (string, bool) {
	switch key {
	case KeyModel:
		return s.values.Model, s.values.Model != ""
	case KeyTemperature:
		if s.values.Temperature == nil {
			return "", false
		}
		return formatTemperature(*s.values.Temperature), true
	case KeyBaseBranch:
		return s.values.BaseBranch, s.values.BaseBranch != ""
	case KeySystemMessage:
		return s.values.SystemMessage, s.values.SystemMessage != ""
	case KeyReviewInstructions:
		return s.values.ReviewInstructions, s.values.ReviewInstructions != ""
	default:
		return "", false
	}
}

// Set validates and stores a value, persisting immediately.
// A failed validation leaves both the store and the backing file unchanged.
func (s *Store) Set(key, value string) error {
	switch key {
	case KeyModel:
		s.values.Model = value
	case KeyTemperature:
		temp, err := ParseTemperature(value)
		if err != nil {
			return err
		}
		s.values.Temperature = &temp
	case KeyBaseBranch:
		s.values.BaseBranch = value
	case KeySystemMessage:
		s.values.SystemMessage = value
	case KeyReviewInstructions:
		s.values.ReviewInstructions = value
	default:
		return fmt.Errorf("%w: unknown configuration key %q", ErrInvalidValue, key)
	}

	if s.path == "" {
		return nil
	}
	return s.save()
}

// List returns the currently stored settings in key-definition order.
// Keys without a stored value are omitted.
func (s *Store) List() []Setting {
	var out []Setting
	for _, key := range Keys {
		if value, ok := s.Get(key); ok {
			out = append(out, Setting{Key: key, Value: value})
		}
	}
	return out
}

// save writes the store to its backing file.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// ParseTemperature parses and validates a temperature value.
// The accepted range is [0, 2] inclusive.
func ParseTemperature(value string) (float64, error) {
	temp, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: temperature %q is not a number", ErrInvalidValue, value)
	}
	if temp < 0 || temp > 2 {
		return 0, fmt.Errorf("%w: temperature %v out of range [0, 2]", ErrInvalidValue, temp)
	}
	return temp, nil
}

func formatTemperature(temp float64) string {
	return strconv.FormatFloat(temp, 'g', -1, 64)
}
