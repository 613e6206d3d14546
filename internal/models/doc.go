// Package models defines the core domain records for Vensoc.
//
// # Records
//
//   - Event: an organizer-created cost-sharing session with a fixed
//     per-person amount
//   - Participant: one caller's membership and payment status within an Event
//   - OrganizerProfile: an authenticated user's Venmo payment handle
//   - User: a registered account
//
// # Design Principles
//
// 1. **Invariants at construction**: records that carry invariants (positive
// two-decimal amounts, non-empty names, a resolvable payment handle) are
// built through constructors that reject invalid input before anything
// touches storage.
//
// 2. **Avoid circular references**: relationships use ID strings, never
// pointers.
//
// 3. **String timestamps**: created_at/joined_at values are RFC 3339 UTC
// strings with a fixed-width fractional second, so ordering comparisons are
// plain lexicographic comparisons and match how the storage layer orders
// rows.
//
// A participant carries at most one identity channel set at creation: an
// authenticated user ID or an anonymous guest identity key. Historical rows
// are never merged when a guest later signs in; callers that need a single
// canonical row per event use the identity resolver.
package models
