package config

import "fmt"

// Overrides carries the CLI-supplied values for one invocation.
// A nil field means the flag was not provided. Temperature is kept as the
// raw flag text so that validation of the final resolved value happens in
// one place, regardless of which source supplied it.
type Overrides struct {
	Model              *string
	Temperature        *string
	BaseBranch         *string
	SystemMessage      *string
	ReviewInstructions *string
}

// Settings is the effective record used for a single invocation.
// It is created fresh per invocation and never persisted.
type Settings struct {
	Model              string
	Temperature        float64
	BaseBranch         string
	SystemMessage      string
	ReviewInstructions string
}

// Resolve merges CLI overrides, stored values, and built-in defaults into
// one Settings record. Precedence is evaluated independently per key:
// CLI flag, then stored value, then default. The resolved temperature is
// validated whatever its source; an invalid CLI temperature fails with
// ErrInvalidValue even when the store holds a valid one.
func Resolve(overrides Overrides, store *Store) (Settings, error) {
	rawTemp := resolveKey(overrides.Temperature, store, KeyTemperature, formatTemperature(DefaultTemperature))
	temp, err := ParseTemperature(rawTemp)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Model:              resolveKey(overrides.Model, store, KeyModel, DefaultModel),
		Temperature:        temp,
		BaseBranch:         resolveKey(overrides.BaseBranch, store, KeyBaseBranch, DefaultBaseBranch),
		SystemMessage:      resolveKey(overrides.SystemMessage, store, KeySystemMessage, DefaultSystemMessage),
		ReviewInstructions: resolveKey(overrides.ReviewInstructions, store, KeyReviewInstructions, DefaultReviewInstructions),
	}, nil
}

// resolveKey applies the per-key precedence chain.
func resolveKey(override *string, store *Store, key, fallback string) string {
	if override != nil {
		return *override
	}
	if value, ok := store.Get(key); ok {
		return value
	}
	return fallback
}

// Get returns the effective value for a key as display text.
// Unknown keys return ErrInvalidValue.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case KeyModel:
		return s.Model, nil
	case KeyTemperature:
		return formatTemperature(s.Temperature), nil
	case KeyBaseBranch:
		return s.BaseBranch, nil
	case KeySystemMessage:
		return s.SystemMessage, nil
	case KeyReviewInstructions:
		return s.ReviewInstructions, nil
	default:
		return "", fmt.Errorf("%w: unknown configuration key %q", ErrInvalidValue, key)
	}
}

// List returns all effective settings in key-definition order.
func (s Settings) List() []Setting {
	out := make([]Setting, 0, len(Keys))
	for _, key := range Keys {
		value, _ := s.Get(key)
		out = append(out, Setting{Key: key, Value: value})
	}
	return out
}
