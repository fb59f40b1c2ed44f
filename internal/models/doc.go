// Package models defines the core domain models for gymparty.
//
// # Models
//
//   - User: a registered account, the identity every other model refers to
//   - Party: a short-lived, code-joinable group that checks in together
//   - Membership: a user's seat in a party
//   - AttendanceRecord: one row per user per calendar day in the shared ledger
//
// # Conventions
//
// 1. IDs are UUID strings; relationships reference IDs, never pointers.
// 2. Timestamps are Unix seconds (int64); zero means "unset".
// 3. Calendar dates are "YYYY-MM-DD" strings in the attendance time zone.
package models
