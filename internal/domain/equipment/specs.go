package equipment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuzvak/nhh-storefront/internal/domain/errors"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a machine's display name into its storage identifier,
// e.g. "Genie GS-1932 Electric Scissor" -> "genie-gs-1932-electric-scissor".
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// ValidSlug reports whether s is already in slug form.
func ValidSlug(s string) bool {
	return s != "" && Slugify(s) == s
}

func SpecsKey(slug string) string {
	return "specs:" + slug
}

func DownloadsKey(slug string) string {
	return "downloads:" + slug
}

type Spec struct {
	Label string
	Value string
}

// SpecSheet is an ordered label -> value mapping. It serialises as a JSON
// object whose keys keep the sheet's order.
type SpecSheet []Spec

func (s SpecSheet) Get(label string) (string, bool) {
	for _, spec := range s {
		if spec.Label == label {
			return spec.Value, true
		}
	}
	return "", false
}

// Set overwrites an existing label in place or appends a new one.
func (s *SpecSheet) Set(label, value string) error {
	label = strings.TrimSpace(label)
	value = strings.TrimSpace(value)
	if label == "" || value == "" {
		return errors.ErrSpecFieldRequired
	}

	for i := range *s {
		if (*s)[i].Label == label {
			(*s)[i].Value = value
			return nil
		}
	}
	*s = append(*s, Spec{Label: label, Value: value})
	return nil
}

func (s SpecSheet) Len() int {
	return len(s)
}

// Merge layers overrides on top of base without touching either.
func Merge(base, overrides SpecSheet) SpecSheet {
	out := make(SpecSheet, len(base), len(base)+len(overrides))
	copy(out, base)

	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].Label == o.Label {
				out[i].Value = o.Value
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}

func (s SpecSheet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, spec := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(spec.Label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(spec.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *SpecSheet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("spec sheet: expected object, got %v", tok)
	}

	sheet := SpecSheet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("spec sheet: unexpected key %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("spec sheet: value for %q: %w", label, err)
		}

		replaced := false
		for i := range sheet {
			if sheet[i].Label == label {
				sheet[i].Value = value
				replaced = true
				break
			}
		}
		if !replaced {
			sheet = append(sheet, Spec{Label: label, Value: value})
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = sheet
	return nil
}
