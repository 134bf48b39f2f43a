// Package nearby provides location search over a static catalog of
// weather-station locations. Searches match place names case-insensitively,
// skip locations the user has already bookmarked, and deliver results
// asynchronously.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, slog/, fs/).
package nearby
