// Package main provides the entry point of the superheroes API.
// It serves a JSON REST API with fiber for heroes, powers and the hero
// powers linking them, stored with gorm in SQLite, MySQL or PostgreSQL.
// Run "superheroes start" to serve and "superheroes migrate up" to
// prepare the schema of an external database.
package main
