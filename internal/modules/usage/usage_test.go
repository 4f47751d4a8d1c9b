// README: Generation-ledger integration tests (Postgres-backed, env-gated).
package usage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestRecordAndRecent(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	entries := []Entry{
		{Kind: "weather", Model: "llama3.2:1b", PromptChars: 420, ReplyChars: 180, DurationMS: 900, OK: true},
		{Kind: "trip_plan", Model: "llama3.2:1b", PromptChars: 510, ReplyChars: 0, DurationMS: 60000, OK: false},
	}
	for _, e := range entries {
		if err := svc.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := svc.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	// Most recent first.
	if got[0].Kind != "trip_plan" || got[0].OK {
		t.Fatalf("first entry = %+v", got[0])
	}
	if got[1].Kind != "weather" || !got[1].OK || got[1].PromptChars != 420 {
		t.Fatalf("second entry = %+v", got[1])
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("created_at not populated")
	}
}

func TestRecentClampsLimit(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	for i := 0; i < DefaultRecentLimit+5; i++ {
		if err := svc.Record(ctx, Entry{Kind: "weather", Model: "m", OK: true}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := svc.Recent(ctx, -1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != DefaultRecentLimit {
		t.Fatalf("got %d entries, want the default limit %d", len(got), DefaultRecentLimit)
	}
}

// setupTestService creates a real postgres-backed Service for integration
// tests. It skips the test when WAYFARER_TEST_DSN is not set.
func setupTestService(t *testing.T) *Service {
	t.Helper()

	dsn := os.Getenv("WAYFARER_TEST_DSN")
	if dsn == "" {
		t.Skip("WAYFARER_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)

	if err := applyMigrations(ctx, db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE generation_log"); err != nil {
		t.Fatalf("truncate generation_log: %v", err)
	}

	return NewService(NewStore(db))
}

func applyMigrations(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_init.sql"))
	if err != nil {
		return err
	}
	for _, stmt := range splitSQL(stripSQLComments(string(content))) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	for _, line := range strings.Split(input, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if stmt := strings.TrimSpace(p); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
