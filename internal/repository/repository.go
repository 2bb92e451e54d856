// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
// Queries are written with "$n" placeholders and rebound for the
// configured engine.
package repository
