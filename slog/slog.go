// Package slog provides logging decorators for linkwalk services.
package slog
