package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/product"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateContainerCommandIsNotConstructed = errors.New(
	"CreateContainerCommand must be created via NewCreateContainerCommand constructor",
)

// CreateContainerCommand represents a request to register a new container in
// the fleet. It carries the shared attributes of every variant plus the
// variant-specific ones; fields irrelevant to the requested kind are ignored.
//
// Variant fields:
//   - dangerous applies to Liquid containers
//   - pressure applies to Gas containers
//   - product and temperature apply to Refrigerated containers
type CreateContainerCommand struct { //nolint:recvcheck //using for validation
	kind       container.Kind
	height     float64
	depth      float64
	tareWeight float64
	maxPayload float64

	dangerous   bool
	pressure    float64
	product     product.Product
	temperature float64

	guard guard.ConstructorGuard
}

// NewCreateContainerCommand creates a command to register a new container.
// Validates the kind, the shared attributes, and the variant fields relevant
// to the kind; full domain validation (including the refrigerated
// temperature-safety rule) runs again at construction time in the handler.
func NewCreateContainerCommand(
	kind container.Kind,
	height, depth, tareWeight, maxPayload float64,
	dangerous bool,
	pressure float64,
	prod product.Product,
	temperature float64,
) (CreateContainerCommand, error) {
	command := CreateContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setKind(kind),
		command.setDimension("height", height, &command.height),
		command.setDimension("depth", depth, &command.depth),
		command.setDimension("tareWeight", tareWeight, &command.tareWeight),
		command.setDimension("maxPayload", maxPayload, &command.maxPayload),
		command.setVariantFields(kind, dangerous, pressure, prod, temperature),
	); err != nil {
		return CreateContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateContainerCommand) Validate() error {
	return c.guard.Validate(ErrCreateContainerCommandIsNotConstructed)
}

// Kind returns the requested container kind.
func (c CreateContainerCommand) Kind() container.Kind {
	return c.kind
}

// Height returns the outer height in centimeters.
func (c CreateContainerCommand) Height() float64 {
	return c.height
}

// Depth returns the outer depth in centimeters.
func (c CreateContainerCommand) Depth() float64 {
	return c.depth
}

// TareWeight returns the empty weight in kilograms.
func (c CreateContainerCommand) TareWeight() float64 {
	return c.tareWeight
}

// MaxPayload returns the nominal cargo capacity in kilograms.
func (c CreateContainerCommand) MaxPayload() float64 {
	return c.maxPayload
}

// Dangerous returns the danger flag for liquid containers.
func (c CreateContainerCommand) Dangerous() bool {
	return c.dangerous
}

// Pressure returns the working pressure for gas containers.
func (c CreateContainerCommand) Pressure() float64 {
	return c.pressure
}

// Product returns the product for refrigerated containers.
func (c CreateContainerCommand) Product() product.Product {
	return c.product
}

// Temperature returns the maintained temperature for refrigerated containers.
func (c CreateContainerCommand) Temperature() float64 {
	return c.temperature
}

func (c *CreateContainerCommand) setKind(kind container.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateContainerCommand) setDimension(name string, value float64, target *float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			name,
			fmt.Errorf("%g is not greater than 0", value),
		)
	}

	*target = value
	return nil
}

func (c *CreateContainerCommand) setVariantFields(
	kind container.Kind,
	dangerous bool,
	pressure float64,
	prod product.Product,
	temperature float64,
) error {
	switch kind {
	case container.Liquid:
		c.dangerous = dangerous
	case container.Gas:
		if pressure < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"pressure",
				fmt.Errorf("%g is negative", pressure),
			)
		}
		c.pressure = pressure
	case container.Refrigerated:
		if err := prod.Validate(); err != nil {
			return err
		}
		c.product = prod
		c.temperature = temperature
	case container.Basic, container.Unknown:
		// no variant fields
	}

	return nil
}
