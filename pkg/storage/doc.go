// Package storage provides persistent storage for the homebar application.
// It uses BadgerDB as the embedded database; the cocktail book, the bar
// inventory, and the last evaluation fingerprints all live in one store.
package storage
