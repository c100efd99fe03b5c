// Package ship implements the container ship aggregate.
//
// A ContainerShip owns an ordered collection of containers and enforces two
// invariants after every mutation: the container count never exceeds the
// ship's capacity, and the summed weight of all containers (tare plus cargo,
// in tons) never exceeds the ship's weight cap. Every mutating operation
// validates against both caps before touching state, so a failing call
// leaves the ship exactly as it was.
//
// Container ownership is a convention of the caller: the aggregate does not
// prevent the same container instance from being handed to two ships.
package ship
