package http

// Request and response bodies of the freight HTTP API.

// Error is the standard error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewContainer is the request body for container registration.
// Dangerous applies to liquid containers, pressure to gas containers,
// product and temperature to refrigerated ones; fields irrelevant to the
// kind are ignored.
type NewContainer struct {
	Kind        string  `json:"kind"`
	Height      float64 `json:"height"`
	Depth       float64 `json:"depth"`
	TareWeight  float64 `json:"tareWeight"`
	MaxPayload  float64 `json:"maxPayload"`
	Dangerous   bool    `json:"dangerous,omitempty"`
	Pressure    float64 `json:"pressure,omitempty"`
	Product     string  `json:"product,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// ContainerCreated is the response body for successful container
// registration.
type ContainerCreated struct {
	Serial string `json:"serial"`
}

// UnassignedContainer describes a container waiting ashore.
type UnassignedContainer struct {
	Serial        string  `json:"serial"`
	Kind          string  `json:"kind"`
	CargoMassKg   float64 `json:"cargoMassKg"`
	MaxPayloadKg  float64 `json:"maxPayloadKg"`
	TotalWeightKg float64 `json:"totalWeightKg"`
}

// LoadCargoRequest is the request body for loading cargo into a container.
type LoadCargoRequest struct {
	Mass float64 `json:"mass"`
}

// NewShip is the request body for commissioning a ship.
type NewShip struct {
	Name              string  `json:"name"`
	MaxSpeedKnots     float64 `json:"maxSpeedKnots"`
	MaxContainerCount int     `json:"maxContainerCount"`
	MaxWeightTons     float64 `json:"maxWeightTons"`
}

// ShipCreated is the response body for successful ship commissioning.
type ShipCreated struct {
	ID string `json:"id"`
}

// StowedContainer describes a container on board a ship.
type StowedContainer struct {
	Serial        string  `json:"serial"`
	Kind          string  `json:"kind"`
	TotalWeightKg float64 `json:"totalWeightKg"`
}

// Ship describes a ship and its manifest.
type Ship struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	MaxSpeedKnots     float64           `json:"maxSpeedKnots"`
	MaxContainerCount int               `json:"maxContainerCount"`
	MaxWeightTons     float64           `json:"maxWeightTons"`
	Containers        []StowedContainer `json:"containers"`
}

// LoadContainersRequest is the request body for loading a batch of
// containers onto a ship.
type LoadContainersRequest struct {
	Serials []string `json:"serials"`
}

// ReplaceContainerRequest is the request body for swapping a container on
// board for another.
type ReplaceContainerRequest struct {
	ReplacementSerial string `json:"replacementSerial"`
}
