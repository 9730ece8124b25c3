// Package parcel provides domain entities and business logic for parcel
// lifecycle management. It implements the Parcel aggregate root, the Status
// state machine and the immutable HistoryEntry ledger record.
//
// Key business rules:
//   - Status follows the workflow pending -> assigned -> en_route -> delivered,
//     with cancelled reachable from any non-terminal state
//   - Delivered and cancelled are terminal; no further transition succeeds
//   - An agent is bound iff the parcel has progressed past pending
//   - Delivery confirmation requires validated coordinates and is only
//     accepted from assigned or en_route
//   - Every mutation is paired with a HistoryEntry in the same unit of work;
//     the ledger is the source of truth, the parcel row a projection
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
