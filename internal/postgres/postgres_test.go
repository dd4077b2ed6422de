package postgres_test

import (
	"net/url"
	"testing"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/config"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := postgres.DSN(config.Postgres{
		Host:     "db",
		Port:     5432,
		DBName:   "restaurant_pos",
		User:     "pos",
		Password: "p@ss word",
		SSLMode:  "disable",
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)

	password, _ := u.User.Password()
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "pos", u.User.Username())
	assert.Equal(t, "p@ss word", password)
	assert.Equal(t, "db:5432", u.Host)
	assert.Equal(t, "/restaurant_pos", u.Path)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "restaurant-pos", u.Query().Get("application_name"))
}
