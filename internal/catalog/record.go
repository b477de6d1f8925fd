package catalog

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/content"
)

// itemNamespace seeds ids derived for records that arrive without one.
var itemNamespace = uuid.MustParse("8f2c7c1e-5d0b-4c59-9a57-3f0f8a1d6b42")

// record is the wire shape shared by fixtures and the content API.
type record struct {
	ID          string   `json:"id" koanf:"id"`
	Type        string   `json:"type" koanf:"type"`
	Title       string   `json:"title" koanf:"title"`
	Description string   `json:"description" koanf:"description"`
	MediaURL    string   `json:"media_url" koanf:"media_url"`
	CoverURL    string   `json:"cover_url" koanf:"cover_url"`
	Body        string   `json:"body" koanf:"body"`
	Quote       string   `json:"quote" koanf:"quote"`
	Source      string   `json:"source" koanf:"source"`
	Tags        []string `json:"tags" koanf:"tags"`
	CreatedAt   any      `json:"created_at" koanf:"created_at"`
	InitialTime float64  `json:"initial_time" koanf:"initial_time"`
	Duration    float64  `json:"duration" koanf:"duration"`
}

// envelope accepts the list under any of the keys content APIs commonly use.
type envelope struct {
	Posts []record `json:"posts"`
	Items []record `json:"items"`
	Data  []record `json:"data"`
}

func decodeJSON(data []byte) ([]record, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var records []record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	switch {
	case env.Posts != nil:
		return env.Posts, nil
	case env.Items != nil:
		return env.Items, nil
	default:
		return env.Data, nil
	}
}

// resolver rewrites relative media locators against a base.
type resolver func(ref string) string

// fileResolver resolves relative paths against a fixture's directory.
func fileResolver(dir string) resolver {
	return func(ref string) string {
		if ref == "" || strings.Contains(ref, "://") || filepath.IsAbs(ref) {
			return ref
		}
		return filepath.Join(dir, ref)
	}
}

// urlResolver resolves relative references against the API URL.
func urlResolver(base *url.URL) resolver {
	return func(ref string) string {
		if ref == "" {
			return ref
		}
		u, err := url.Parse(ref)
		if err != nil {
			return ref
		}
		return base.ResolveReference(u).String()
	}
}

// toItems converts records in order. Records with an unknown type are
// skipped, as are later records repeating an id given in the feed. Derived
// ids never cause a drop.
func toItems(records []record, resolve resolver, log *zap.Logger) []content.Item {
	items := make([]content.Item, 0, len(records))
	seen := make(map[string]bool, len(records))

	for i, r := range records {
		kind, ok := content.ParseKind(r.Type)
		if !ok {
			log.Warn("skipping record with unknown type", zap.Int("index", i), zap.String("type", r.Type))
			continue
		}

		created := parseTime(r.CreatedAt)
		title := strings.TrimSpace(r.Title)
		if title == "" {
			title = "Untitled"
		}

		id := strings.TrimSpace(r.ID)
		switch {
		case id == "":
			id = deriveID(kind, title, created, r, i)
			if seen[id] {
				id = deriveID(kind, title, created, r, i, "#"+strconv.Itoa(i))
			}
		case seen[id]:
			log.Warn("skipping duplicate record", zap.Int("index", i), zap.String("id", id))
			continue
		}
		seen[id] = true

		items = append(items, content.Item{
			ID:          id,
			Kind:        kind,
			Title:       title,
			Description: r.Description,
			MediaURL:    resolve(r.MediaURL),
			CoverURL:    resolve(r.CoverURL),
			Body:        r.Body,
			Quote:       r.Quote,
			Source:      r.Source,
			Tags:        r.Tags,
			CreatedAt:   created,
			InitialTime: max(r.InitialTime, 0),
			Duration:    max(r.Duration, 0),
		})
	}
	return items
}

// deriveID returns an id stable across reloads, built from the record's
// content. The index only breaks ties between records with no timestamp;
// extra parts separate records that are otherwise identical.
func deriveID(kind content.Kind, title string, created time.Time, r record, index int, extra ...string) string {
	parts := []string{kind.String(), title}
	if created.IsZero() {
		parts = append(parts, fmt.Sprintf("#%d", index))
	} else {
		parts = append(parts, created.UTC().Format(time.RFC3339Nano))
	}
	parts = append(parts, r.MediaURL, r.Description, r.Body, r.Quote, r.Source)
	parts = append(parts, extra...)
	return uuid.NewSHA1(itemNamespace, []byte(strings.Join(parts, "\x00"))).String()
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, strings.TrimSpace(t)); err == nil {
				return parsed
			}
		}
	case float64:
		return time.Unix(int64(t), 0).UTC()
	case int64:
		return time.Unix(t, 0).UTC()
	}
	return time.Time{}
}
