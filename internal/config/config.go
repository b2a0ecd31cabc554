package config

import (
	"os"
)

// EnvironmentDevelopment enables stack traces in error response bodies.
const EnvironmentDevelopment = "development"

type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	Environment string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults match the local docker compose setup
	env := Config{
		Port:        "3000",
		MongoURI:    "mongodb://localhost:27017",
		MongoDB:     "expensedb",
		Environment: "production",
	}

	envPort := os.Getenv("PORT")
	envMongoURI := os.Getenv("MONGO_URI")
	envMongoDB := os.Getenv("MONGO_DB")
	envEnvironment := os.Getenv("APP_ENV")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envMongoURI) != 0 {
		env.MongoURI = envMongoURI
	}

	if len(envMongoDB) != 0 {
		env.MongoDB = envMongoDB
	}

	if len(envEnvironment) != 0 {
		env.Environment = envEnvironment
	}

	return &env, nil
}

// IsDevelopment reports whether error responses may carry stack traces.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}
