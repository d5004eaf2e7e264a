package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sql-sith/pslkit/api"
	"github.com/sql-sith/pslkit/source"
	"go.uber.org/zap"
)

const testDatasetText = `// com : https://www.verisign.com/domain-names
com
`

func TestDatasetConfigSource(t *testing.T) {
	var c DatasetConfig

	src, err := c.Source()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := src.(*source.HTTPSource); !ok {
		t.Errorf("Expected HTTP source by default, got %T", src)
	}

	c = DatasetConfig{Path: "psl.dat"}
	src, err = c.Source()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := src.(*source.FileSource); !ok {
		t.Errorf("Expected file source, got %T", src)
	}

	c = DatasetConfig{Path: "psl.dat", URL: "https://example.com/psl.dat"}
	if _, err = c.Source(); err == nil {
		t.Error("Expected error when both path and URL are set")
	}
}

func TestConfigManager(t *testing.T) {
	name := filepath.Join(t.TempDir(), "psl.dat")
	if err := os.WriteFile(name, []byte(testDatasetText), 0o644); err != nil {
		t.Fatal(err)
	}

	sc := Config{
		PSL: DatasetConfig{Path: name},
		API: api.Config{
			Enabled: true,
			Listen:  "127.0.0.1:0",
		},
	}

	m, err := sc.Manager(context.Background(), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	if m.Table().Len() != 2 {
		t.Errorf("Expected 2 retained lines, got %d", m.Table().Len())
	}
}

func TestConfigManagerNoServices(t *testing.T) {
	name := filepath.Join(t.TempDir(), "psl.dat")
	if err := os.WriteFile(name, []byte(testDatasetText), 0o644); err != nil {
		t.Fatal(err)
	}

	sc := Config{PSL: DatasetConfig{Path: name}}
	if _, err := sc.Manager(context.Background(), zap.NewNop()); err == nil {
		t.Error("Expected error when no services are enabled")
	}
}

func TestConfigManagerDatasetUnavailable(t *testing.T) {
	sc := Config{
		PSL: DatasetConfig{Path: filepath.Join(t.TempDir(), "nonexistent.dat")},
		API: api.Config{Enabled: true, Listen: "127.0.0.1:0"},
	}
	if _, err := sc.Manager(context.Background(), zap.NewNop()); err == nil {
		t.Error("Expected error for unavailable dataset")
	}
}
