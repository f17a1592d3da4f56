// Package gorm provides GORM-based implementations of the archive store
// interfaces defined in pkg/server/store.
package gorm
