// Package i18n loads the per-locale string bundles shipped with the binary.
// One complete bundle exists per supported locale; bundles are never merged
// across locales.
package i18n

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"casa_schuck/internal/domain"
)

//go:embed dictionaries/*.json
var bundles embed.FS

type Source struct{}

func NewSource() *Source { return &Source{} }

// Load decodes the bundle for loc. Unknown locales and bundles with unknown
// or missing entries fail fast: routing guarantees only valid locales reach
// this point, so any error here is a deploy-time defect, not user input.
func (s *Source) Load(ctx context.Context, loc domain.Locale) (domain.Dictionary, error) {
	if _, ok := domain.ParseLocale(string(loc)); !ok {
		return domain.Dictionary{}, fmt.Errorf("i18n: unsupported locale %q", loc)
	}
	if err := ctx.Err(); err != nil {
		return domain.Dictionary{}, err
	}

	raw, err := bundles.ReadFile(fmt.Sprintf("dictionaries/%s.json", loc))
	if err != nil {
		return domain.Dictionary{}, fmt.Errorf("i18n: read bundle %s: %w", loc, err)
	}

	var d domain.Dictionary
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return domain.Dictionary{}, fmt.Errorf("i18n: decode bundle %s: %w", loc, err)
	}
	d.Locale = loc

	if err := d.Validate(); err != nil {
		return domain.Dictionary{}, err
	}
	return d, nil
}
