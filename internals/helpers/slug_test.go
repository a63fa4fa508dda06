package helper

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Hello   World!!  ", "hello-world"},
		{"Café Événement", "cafe-evenement"},
		{"Already-Slugged", "already-slugged"},
		{"---", "item"},
		{"", "item"},
		{"UPPER case 123", "upper-case-123"},
		{"a__b..c", "a-b-c"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, 0), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyMaxLen(t *testing.T) {
	got := Slugify(strings.Repeat("ab ", 100), 10)
	assert.LessOrEqual(t, len(got), 10)
	assert.False(t, strings.HasPrefix(got, "-"))
	assert.False(t, strings.HasSuffix(got, "-"))
}

func slugTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec(`CREATE TABLE items (id integer primary key, slug text)`).Error)
	return db
}

func TestEnsureUniqueSlugCI(t *testing.T) {
	db := slugTestDB(t)
	ctx := context.Background()

	slug, err := EnsureUniqueSlugCI(ctx, db, "items", "slug", "my-event", nil, 160)
	require.NoError(t, err)
	assert.Equal(t, "my-event", slug)

	require.NoError(t, db.Exec(`INSERT INTO items (slug) VALUES ('my-event')`).Error)

	slug, err = EnsureUniqueSlugCI(ctx, db, "items", "slug", "my-event", nil, 160)
	require.NoError(t, err)
	assert.Equal(t, "my-event-2", slug)

	require.NoError(t, db.Exec(`INSERT INTO items (slug) VALUES ('my-event-2')`).Error)

	slug, err = EnsureUniqueSlugCI(ctx, db, "items", "slug", "my-event", nil, 160)
	require.NoError(t, err)
	assert.Equal(t, "my-event-3", slug)
}

func TestEnsureUniqueSlugCICaseInsensitive(t *testing.T) {
	db := slugTestDB(t)

	require.NoError(t, db.Exec(`INSERT INTO items (slug) VALUES ('My-Event')`).Error)

	slug, err := EnsureUniqueSlugCI(context.Background(), db, "items", "slug", "my-event", nil, 160)
	require.NoError(t, err)
	assert.Equal(t, "my-event-2", slug)
}

func TestEnsureUniqueSlugCIScope(t *testing.T) {
	db := slugTestDB(t)

	require.NoError(t, db.Exec(`INSERT INTO items (id, slug) VALUES (1, 'my-event')`).Error)

	// Excluding the row that owns the slug keeps the base slug available,
	// which is what an update-without-title-change relies on.
	slug, err := EnsureUniqueSlugCI(context.Background(), db, "items", "slug", "my-event",
		func(q *gorm.DB) *gorm.DB { return q.Where("id <> ?", 1) }, 160)
	require.NoError(t, err)
	assert.Equal(t, "my-event", slug)
}

func TestEnsureUniqueSlugCIRespectsMaxLen(t *testing.T) {
	db := slugTestDB(t)

	base := strings.Repeat("a", 20)
	require.NoError(t, db.Exec(`INSERT INTO items (slug) VALUES (?)`, base).Error)

	slug, err := EnsureUniqueSlugCI(context.Background(), db, "items", "slug", base, nil, 20)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(slug), 20)
	assert.True(t, strings.HasSuffix(slug, "-2"))
}
