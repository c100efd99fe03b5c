// Package kernel provides core domain primitives for the freight system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Prefix: The per-container-type serial number prefix
//   - SerialNumber: A value object for the sequential container identity "<PREFIX>-<sequence>"
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
