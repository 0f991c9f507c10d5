// Package config provides database connection configurations for tests,
// covering all supported adapter types (pgx.Pool, sql.DB, sqlx.DB).
package config
