// Package agent provides the domain model for field agents: identity,
// administrative status, and salted credential hashing/verification.
//
// Key business rules:
//   - Employee code and email are globally unique
//   - Identity fields are immutable after registration; only status changes
//   - Login requires Active status; parcel assignment does not
//   - Stored credentials are "salt$digest" (hex SHA-256 of salt‖password);
//     the raw password never reaches the aggregate or storage
package agent
