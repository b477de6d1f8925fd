package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/content"
)

// FixtureLoader reads the catalog from a local .json or .toml file.
// Relative media paths resolve against the fixture's directory.
type FixtureLoader struct {
	Path string
	Log  *zap.Logger
}

// tomlFixture is the layout of a TOML fixture: one [[items]] table per entry.
// created_at must be an offset datetime or a string; the parser rejects a
// bare local date such as 2024-05-06, so write "2024-05-06" instead.
type tomlFixture struct {
	Items []record `koanf:"items"`
}

// Load implements Loader.
func (f *FixtureLoader) Load(ctx context.Context) ([]content.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := f.Log
	if log == nil {
		log = zap.NewNop()
	}

	var (
		records []record
		err     error
	)
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".toml":
		records, err = readTOMLFixture(f.Path)
	case ".json", "":
		records, err = readJSONFixture(f.Path)
	default:
		return nil, fmt.Errorf("unsupported fixture format %q", filepath.Ext(f.Path))
	}
	if err != nil {
		return nil, err
	}

	items := toItems(records, fileResolver(filepath.Dir(f.Path)), log)
	log.Debug("fixture loaded", zap.String("path", f.Path), zap.Int("items", len(items)))
	return items, nil
}

func readJSONFixture(path string) ([]record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	records, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

func readTOMLFixture(path string) ([]record, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	var fx tomlFixture
	if err := k.Unmarshal("", &fx); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return fx.Items, nil
}
