package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user without a password.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedJournal creates a private journal owned by ownerID.
func SeedJournal(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Journal {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	j := domain.Journal{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      "Journal " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO journals (id, owner_id, name, is_public, created_at, updated_at) VALUES ($1, $2, $3, false, $4, $4)`,
		j.ID, j.OwnerID, j.Name, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJournal: %v", err)
	}
	return j
}

// SeedGroup creates an active metric group.
func SeedGroup(t *testing.T, pool *pgxpool.Pool, journalID uuid.UUID, sortOrder int) domain.MetricGroup {
	t.Helper()

	g := domain.MetricGroup{
		ID:        uuid.New(),
		JournalID: journalID,
		Name:      "Group " + uniqueSuffix(),
		SortOrder: sortOrder,
		Active:    true,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO metric_groups (id, journal_id, name, sort_order, active) VALUES ($1, $2, $3, $4, true)`,
		g.ID, g.JournalID, g.Name, g.SortOrder,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}
	return g
}

// SeedMetric creates an active metric of kind with the given schema JSON.
func SeedMetric(t *testing.T, pool *pgxpool.Pool, group domain.MetricGroup, kind, schema string) domain.Metric {
	t.Helper()

	m := domain.Metric{
		ID:        uuid.New(),
		JournalID: group.JournalID,
		GroupID:   group.ID,
		Name:      "Metric " + uniqueSuffix(),
		Kind:      kind,
		Schema:    json.RawMessage(schema),
		Active:    true,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO metrics (id, journal_id, group_id, name, kind, schema, active) VALUES ($1, $2, $3, $4, $5, $6, true)`,
		m.ID, m.JournalID, m.GroupID, m.Name, m.Kind, []byte(schema),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMetric: %v", err)
	}
	return m
}

// SeedPost creates an empty post of journalID dated date.
func SeedPost(t *testing.T, pool *pgxpool.Pool, journalID uuid.UUID, date domain.Date) domain.Post {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Post{
		ID:        uuid.New(),
		JournalID: journalID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO posts (id, journal_id, date, created_at, updated_at) VALUES ($1, $2, $3, $4, $4)`,
		p.ID, p.JournalID, date.Time(), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}
	return p
}

// SeedValue stores a raw metric value.
func SeedValue(t *testing.T, pool *pgxpool.Pool, postID, metricID uuid.UUID, value string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO metric_values (post_id, metric_id, value) VALUES ($1, $2, $3)`,
		postID, metricID, []byte(value),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedValue: %v", err)
	}
}

// AddReader lists userID as a reader of journalID.
func AddReader(t *testing.T, pool *pgxpool.Pool, journalID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO journal_readers (journal_id, user_id) VALUES ($1, $2)`,
		journalID, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: AddReader: %v", err)
	}
}
