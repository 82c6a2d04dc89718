/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Credentials carries per-backend secrets. They never appear in plan files;
// they come from the process environment, optionally seeded from a .env file.
type Credentials struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string

	MongoURI string

	AstraUsername string
	AstraPassword string
}

// LoadEnv loads a .env file when present and reads backend credentials from
// the environment. A missing .env file is not an error; explicit environment
// variables always win over the file.
func LoadEnv(paths ...string) Credentials {
	// godotenv does not override variables that are already set.
	_ = godotenv.Load(paths...)

	return Credentials{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          os.Getenv("AWS_REGION"),
		MongoURI:           os.Getenv("MONGO_URI"),
		AstraUsername:      os.Getenv("ASTRA_USERNAME"),
		AstraPassword:      os.Getenv("ASTRA_PASSWORD"),
	}
}
