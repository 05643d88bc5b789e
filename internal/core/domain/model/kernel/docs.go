// Package kernel provides core domain primitives for the support service.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - OrderID: A value object for order references with validation and
//     comparison capabilities
//
// These primitives enforce domain invariants, ensuring that domain objects
// are always in a valid state. They are designed to be immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
