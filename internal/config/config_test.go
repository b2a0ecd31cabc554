package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	env, err := ProcessEnvironmentVariables()

	assert.NoError(t, err)
	assert.Equal(t, "3000", env.Port)
	assert.Equal(t, "mongodb://localhost:27017", env.MongoURI)
	assert.Equal(t, "expensedb", env.MongoDB)
	assert.Equal(t, "production", env.Environment)
	assert.False(t, env.IsDevelopment())
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "expenses_test")
	t.Setenv("APP_ENV", "development")

	env, err := ProcessEnvironmentVariables()

	assert.NoError(t, err)
	assert.Equal(t, "8080", env.Port)
	assert.Equal(t, "mongodb://db:27017", env.MongoURI)
	assert.Equal(t, "expenses_test", env.MongoDB)
	assert.True(t, env.IsDevelopment())
}
