// Package models contains the database model definitions of heroes, powers
// and the hero_powers join table.
//
// Constrained fields are changed through setters (SetDescription,
// SetStrength) or the New* constructors, which reject invalid values with a
// *ValidationError before anything is written. A BeforeSave hook re-runs
// the same checks, so a field assigned directly never reaches the database
// unchecked.
package models
