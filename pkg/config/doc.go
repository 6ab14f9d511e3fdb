// Package config loads buildmat configuration from the environment.
//
// Values are parsed with github.com/caarlos0/env/v11 into Config. Optional
// .env files are read with github.com/joho/godotenv; they never override
// variables already set in the process environment.
//
//	cfg, err := config.Load(config.WithEnvFiles(".env"))
//	if err != nil {
//		return err
//	}
//
// Nested sections use prefixes:
//
//	APP_ENV=production
//	LOG_LEVEL=warn
//	DEFAULT_LOCALE=es
//	IMAGE_MAX_BYTES=5242880
//	IMAGE_ALLOWED_TYPES=image/jpeg,image/png,image/webp
//	STORAGE_DRIVER=s3
//	STORAGE_S3_BUCKET=uploads
//	STORAGE_S3_REGION=eu-west-1
//
// Tests pass an explicit map with WithEnvironment so the process
// environment is left untouched.
package config
