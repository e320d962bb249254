package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/salescampus/salescampus-backend/pkg/migrate"
)

func TestKVEntriesMigrationContainsSchema(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_kv_entries.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no kv_entries migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS kv_entries",
		"k TEXT PRIMARY KEY",
		"v TEXT NOT NULL",
		"DROP TABLE IF EXISTS kv_entries",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestValidateMigrationsDir(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir invalid: %v", err)
	}
}

func TestDialectFor(t *testing.T) {
	cases := []struct {
		driver  string
		want    string
		wantErr bool
	}{
		{"sqlite", "sqlite3", false},
		{"postgres", "postgres", false},
		{"memory", "", true},
		{"redis", "", true},
	}
	for _, tc := range cases {
		got, err := migrate.DialectFor(tc.driver)
		if tc.wantErr {
			if err == nil {
				t.Errorf("driver %q: expected error", tc.driver)
			}
			continue
		}
		if err != nil {
			t.Errorf("driver %q: unexpected error %v", tc.driver, err)
			continue
		}
		if got != tc.want {
			t.Errorf("driver %q: got dialect %q want %q", tc.driver, got, tc.want)
		}
	}
}
