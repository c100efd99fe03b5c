// Package container implements the shipping container domain model.
//
// A Container is a tagged-variant entity over the kinds Basic, Liquid, Gas,
// and Refrigerated. All variants share the same attribute set (dimensions,
// tare weight, maximum payload, current cargo mass) and the same identity
// scheme (sequential per-kind serial numbers minted by the Registry); the
// kind decides the effective load limit, the emptying behavior, and whether
// overload attempts raise hazard notifications.
//
// Business rules enforced by this package:
//   - Cargo mass never goes negative and never exceeds the variant's
//     effective load limit
//   - A dangerous liquid container accepts at most 50% of its maximum
//     payload, a safe one at most 90%
//   - Emptying a gas container retains 5% of the prior cargo as residue
//   - A refrigerated container can only be built when its maintained
//     temperature is safe for the declared product
//   - Serial numbers are unique per kind, start at 1, and are never reused
package container
