package mangadex

import (
	"encoding/json"
	"net/url"
	"time"
)

const (
	// dateTimeLayout is the layout the API uses for timestamps in bodies.
	dateTimeLayout = "2006-01-02T15:04:05-07:00"
	// queryDateTimeLayout is the layout accepted by date filters in queries.
	queryDateTimeLayout = "2006-01-02T15:04:05"
)

// DateTime is a timestamp in the API's "YYYY-MM-DDTHH:MM:SS+HH:MM" format.
type DateTime struct {
	time.Time
}

// NewDateTime wraps t, dropping sub-second precision the API does not carry.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.Truncate(time.Second)}
}

// MarshalJSON writes the API layout.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateTimeLayout))
}

// UnmarshalJSON accepts any RFC 3339 timestamp.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}

	d.Time = t

	return nil
}

// MarshalYAML writes the API layout.
func (d DateTime) MarshalYAML() (interface{}, error) {
	return d.Format(dateTimeLayout), nil
}

// EncodeValues implements query.Encoder. Date filters are sent in UTC without an offset.
func (d *DateTime) EncodeValues(key string, v *url.Values) error {
	if d == nil || d.IsZero() {
		return nil
	}

	v.Set(key, d.UTC().Format(queryDateTimeLayout))

	return nil
}

// LocalizedString maps a language to text. The API sends an empty array
// instead of an empty object, so both are accepted.
type LocalizedString map[Language]string

// UnmarshalJSON accepts either an object or an array of single-entry objects.
func (l *LocalizedString) UnmarshalJSON(b []byte) error {
	var m map[Language]string
	if err := json.Unmarshal(b, &m); err == nil {
		*l = m

		return nil
	}

	var list []map[Language]string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}

	out := make(LocalizedString)

	for _, entry := range list {
		for lang, text := range entry {
			out[lang] = text
		}
	}

	*l = out

	return nil
}

// Get returns the text for lang, falling back to English.
func (l LocalizedString) Get(lang Language) string {
	if text, ok := l[lang]; ok {
		return text
	}

	return l[LanguageEnglish]
}
