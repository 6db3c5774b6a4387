package database

import (
	"net/url"
	"testing"

	"github.com/deppfellow/blog-posts/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "blog",
		Password: "p@ss:w/rd",
		Name:     "blog",
		SSLMode:  "require",
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)

	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:5432", u.Host)
	assert.Equal(t, "/blog", u.Path)
	assert.Equal(t, "require", u.Query().Get("sslmode"))

	password, ok := u.User.Password()
	require.True(t, ok)
	assert.Equal(t, "p@ss:w/rd", password)
}

func TestDSN_IPv6(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "::1", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"})
	assert.Contains(t, dsn, "[::1]:5432")
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "001_create_posts.sql", entries[0].Name())
}
