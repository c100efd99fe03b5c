package container

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/product"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	// dangerousLiquidLoadFactor caps a dangerous liquid cargo at 50% of the
	// maximum payload.
	dangerousLiquidLoadFactor = 0.5

	// safeLiquidLoadFactor caps a non-dangerous liquid cargo at 90% of the
	// maximum payload.
	safeLiquidLoadFactor = 0.9

	// gasResidueFraction is the share of cargo a gas container retains when
	// emptied.
	gasResidueFraction = 0.05
)

var (
	// ErrOverfill indicates a load attempt exceeding the container's
	// effective load limit. The container's cargo is unchanged.
	ErrOverfill = errors.New("cargo mass exceeds the container's effective load limit")

	// ErrUnsafeTemperature indicates an attempt to build a refrigerated
	// container whose maintained temperature is below the minimum safe
	// temperature of its product. No instance is created.
	ErrUnsafeTemperature = errors.New("maintained temperature is below the product's required temperature")

	// ErrContainerIsNotConstructed is returned when using a Container that
	// was not created through one of the constructor functions.
	ErrContainerIsNotConstructed = errors.New("Container must be created via its constructor")
)

// Container is a shipping container entity. The kind field discriminates the
// variant; variant-specific behavior (effective load limit, emptying residue,
// hazard notification) is resolved internally rather than through subtyping.
//
// All attributes except the cargo mass are immutable after construction.
// Identity is the serial number: two containers are the same entity exactly
// when their serials are equal.
type Container struct {
	// serial uniquely identifies the container across the fleet
	serial kernel.SerialNumber
	// kind discriminates the variant
	kind Kind
	// height and depth are the outer dimensions in centimeters
	height float64
	depth  float64
	// tareWeight is the empty weight in kilograms
	tareWeight float64
	// maxPayload is the nominal cargo capacity in kilograms
	maxPayload float64
	// cargoMass is the currently loaded cargo in kilograms
	cargoMass float64

	// dangerous marks hazardous liquid cargo (liquid variant only)
	dangerous bool
	// pressure is the working pressure in bar, informational (gas variant only)
	pressure float64
	// prod and temperature describe the refrigerated payload
	prod        product.Product
	temperature float64

	// notifier is the optional hazard side channel (liquid and gas variants)
	notifier HazardNotifier

	guard guard.ConstructorGuard
}

// NewBasicContainer creates a basic dry container, assigning the next serial
// number with the "B" prefix from the registry. Dimensions and weights must
// be positive.
func NewBasicContainer(registry *Registry, height, depth, tareWeight, maxPayload float64) (*Container, error) {
	return newContainer(registry, Basic, height, depth, tareWeight, maxPayload)
}

// NewLiquidContainer creates a liquid container, assigning the next serial
// number with the "L" prefix from the registry. When dangerous is set, the
// effective load limit drops from 90% to 50% of the maximum payload. The
// notifier may be nil; when present it is invoked on rejected overloads.
func NewLiquidContainer(
	registry *Registry,
	height, depth, tareWeight, maxPayload float64,
	dangerous bool,
	notifier HazardNotifier,
) (*Container, error) {
	c, err := newContainer(registry, Liquid, height, depth, tareWeight, maxPayload)
	if err != nil {
		return nil, err
	}

	c.dangerous = dangerous
	c.notifier = notifier
	return c, nil
}

// NewGasContainer creates a gas container, assigning the next serial number
// with the "G" prefix from the registry. Pressure is informational and
// imposes no load constraint, but must not be negative. The notifier may be
// nil; when present it is invoked on rejected overloads.
func NewGasContainer(
	registry *Registry,
	height, depth, tareWeight, maxPayload float64,
	pressure float64,
	notifier HazardNotifier,
) (*Container, error) {
	c, err := newContainer(registry, Gas, height, depth, tareWeight, maxPayload)
	if err != nil {
		return nil, err
	}

	if err := c.setPressure(pressure); err != nil {
		return nil, err
	}

	c.notifier = notifier
	return c, nil
}

// NewRefrigeratedContainer creates a refrigerated container, assigning the
// next serial number with the "C" prefix from the registry.
//
// The maintained temperature must be at or above the product's required
// temperature; violating combinations fail with ErrUnsafeTemperature and
// never produce a live instance.
func NewRefrigeratedContainer(
	registry *Registry,
	height, depth, tareWeight, maxPayload float64,
	prod product.Product,
	temperature float64,
) (*Container, error) {
	c, err := newContainer(registry, Refrigerated, height, depth, tareWeight, maxPayload)
	if err != nil {
		return nil, err
	}

	if err := c.setProduct(prod, temperature); err != nil {
		return nil, err
	}

	return c, nil
}

// newContainer builds the variant-independent part of a container and mints
// its serial number from the registry.
func newContainer(registry *Registry, kind Kind, height, depth, tareWeight, maxPayload float64) (*Container, error) {
	if registry == nil {
		return nil, errs.NewValueIsRequiredError("registry")
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	serial, err := registry.Next(kind.SerialPrefix())
	if err != nil {
		return nil, err
	}

	c := &Container{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setSerial(serial),
		c.setHeight(height),
		c.setDepth(depth),
		c.setTareWeight(tareWeight),
		c.setMaxPayload(maxPayload),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreContainer reconstructs a container from persistent storage.
// Unlike the New* constructors it takes an explicit serial number and cargo
// mass, and accepts every variant through the kind discriminator. The
// restored container behaves identically to one created through normal
// domain operations.
//
// The notifier may be nil and is typically re-attached by the repository,
// since callbacks do not survive persistence.
func RestoreContainer(
	serial kernel.SerialNumber,
	kind Kind,
	height, depth, tareWeight, maxPayload, cargoMass float64,
	dangerous bool,
	pressure float64,
	prod product.Product,
	temperature float64,
	notifier HazardNotifier,
) (*Container, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setSerial(serial),
		c.setHeight(height),
		c.setDepth(depth),
		c.setTareWeight(tareWeight),
		c.setMaxPayload(maxPayload),
	); err != nil {
		return nil, err
	}

	switch kind {
	case Liquid:
		c.dangerous = dangerous
		c.notifier = notifier
	case Gas:
		if err := c.setPressure(pressure); err != nil {
			return nil, err
		}
		c.notifier = notifier
	case Refrigerated:
		if err := c.setProduct(prod, temperature); err != nil {
			return nil, err
		}
	case Basic, Unknown:
		// no variant state
	}

	if err := c.setCargoMass(cargoMass); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares two containers by their serial numbers, following the
// DDD convention that entity equality is identity, not attribute equality.
func (c *Container) IsEqual(other *Container) bool {
	return other != nil && c.serial.IsEqual(other.serial)
}

// Validate checks that the container was created through a constructor.
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

// Serial returns the container's serial number.
func (c *Container) Serial() kernel.SerialNumber {
	return c.serial
}

// Kind returns the container's variant discriminator.
func (c *Container) Kind() Kind {
	return c.kind
}

// Height returns the outer height in centimeters.
func (c *Container) Height() float64 {
	return c.height
}

// Depth returns the outer depth in centimeters.
func (c *Container) Depth() float64 {
	return c.depth
}

// TareWeight returns the empty weight in kilograms.
func (c *Container) TareWeight() float64 {
	return c.tareWeight
}

// MaxPayload returns the nominal cargo capacity in kilograms.
func (c *Container) MaxPayload() float64 {
	return c.maxPayload
}

// CargoMass returns the currently loaded cargo in kilograms.
func (c *Container) CargoMass() float64 {
	return c.cargoMass
}

// IsDangerous reports the danger flag of a liquid container.
// Always false for other kinds.
func (c *Container) IsDangerous() bool {
	return c.dangerous
}

// Pressure returns the working pressure of a gas container in bar.
// Zero for other kinds.
func (c *Container) Pressure() float64 {
	return c.pressure
}

// Product returns the refrigerated product.
// product.Unknown for other kinds.
func (c *Container) Product() product.Product {
	return c.prod
}

// Temperature returns the maintained temperature of a refrigerated container
// in degrees Celsius. Zero for other kinds.
func (c *Container) Temperature() float64 {
	return c.temperature
}

// TotalWeight returns tare weight plus cargo mass in kilograms. This is the
// figure ships account against their weight cap.
func (c *Container) TotalWeight() float64 {
	return c.tareWeight + c.cargoMass
}

// EffectiveMaxLoad returns the variant's hazard-adjusted cargo ceiling in
// kilograms. Liquid containers are capped below their nominal payload; all
// other kinds accept the full maximum payload.
func (c *Container) EffectiveMaxLoad() float64 {
	if c.kind == Liquid {
		if c.dangerous {
			return dangerousLiquidLoadFactor * c.maxPayload
		}
		return safeLiquidLoadFactor * c.maxPayload
	}
	return c.maxPayload
}

// LoadCargo sets the cargo mass to the given value. Loading replaces the
// current cargo rather than adding to it.
//
// A mass above the effective load limit fails with ErrOverfill and leaves
// the cargo unchanged; on hazard-capable variants the hazard notifier, when
// present, fires exactly once before the error is returned.
func (c *Container) LoadCargo(mass float64) error {
	if mass < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"mass",
			fmt.Errorf("%g is negative", mass),
		)
	}

	limit := c.EffectiveMaxLoad()
	if mass > limit {
		c.notifyHazard(mass, limit)
		return ErrOverfill
	}

	c.cargoMass = mass
	return nil
}

// EmptyCargo unloads the container. Gas containers retain 5% of the prior
// cargo mass as residual gas; every other kind is left fully empty.
// Emptying always succeeds.
func (c *Container) EmptyCargo() {
	if c.kind == Gas {
		c.cargoMass *= gasResidueFraction
		return
	}
	c.cargoMass = 0
}

/// String returns a formatted one-line summary of the container: serial,
// kind, dimensions, weights, and variant detail. Used for listings and
// inspection by external callers.
func (c *Container) String() string {
	summary := fmt.Sprintf(
		"%s %s container: height %.1f cm, depth %.1f cm, tare %.1f kg, max payload %.1f kg, cargo %.1f kg",
		c.serial, c.kind, c.height, c.depth, c.tareWeight, c.maxPayload, c.cargoMass,
	)

	switch c.kind {
	case Liquid:
		return fmt.Sprintf("%s, dangerous=%t", summary, c.dangerous)
	case Gas:
		return fmt.Sprintf("%s, pressure %.1f bar", summary, c.pressure)
	case Refrigerated:
		return fmt.Sprintf("%s, %s at %.1f°C", summary, c.prod, c.temperature)
	case Basic, Unknown:
		return summary
	}
	return summary
}

// notifyHazard fires the hazard side channel for a rejected overload.
// It is a no-op for kinds without the capability or when no notifier is
// attached; it never alters the outcome of the load attempt.
func (c *Container) notifyHazard(mass, limit float64) {
	if c.notifier == nil || !c.kind.IsHazardCapable() {
		return
	}

	c.notifier.NotifyHazard(fmt.Sprintf(
		"hazardous overload attempt on %s container %s: attempted %.2f kg, limit %.2f kg, dangerous=%t",
		c.kind, c.serial, mass, limit, c.dangerous,
	))
}

func (c *Container) setSerial(serial kernel.SerialNumber) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	if serial.Prefix() != c.kind.SerialPrefix() {
		return errs.NewValueIsInvalidErrorWithCause(
			"serialNumber",
			fmt.Errorf("prefix %s does not belong to kind %s", serial.Prefix(), c.kind),
		)
	}

	c.serial = serial
	return nil
}

func (c *Container) setHeight(height float64) error {
	if height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"height",
			fmt.Errorf("%g is not greater than 0", height),
		)
	}

	c.height = height
	return nil
}

func (c *Container) setDepth(depth float64) error {
	if depth <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"depth",
			fmt.Errorf("%g is not greater than 0", depth),
		)
	}

	c.depth = depth
	return nil
}

func (c *Container) setTareWeight(tareWeight float64) error {
	if tareWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"tareWeight",
			fmt.Errorf("%g is not greater than 0", tareWeight),
		)
	}

	c.tareWeight = tareWeight
	return nil
}

func (c *Container) setMaxPayload(maxPayload float64) error {
	if maxPayload <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxPayload",
			fmt.Errorf("%g is not greater than 0", maxPayload),
		)
	}

	c.maxPayload = maxPayload
	return nil
}

func (c *Container) setPressure(pressure float64) error {
	if pressure < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"pressure",
			fmt.Errorf("%g is negative", pressure),
		)
	}

	c.pressure = pressure
	return nil
}

// setProduct validates the product against the catalog and enforces the
// temperature-safety precondition of refrigerated containers.
func (c *Container) setProduct(prod product.Product, temperature float64) error {
	if err := prod.Validate(); err != nil {
		return err
	}

	if temperature < prod.RequiredTemperature() {
		return fmt.Errorf("%w: %s requires at least %.1f°C, got %.1f°C",
			ErrUnsafeTemperature, prod, prod.RequiredTemperature(), temperature)
	}

	c.prod = prod
	c.temperature = temperature
	return nil
}

// setCargoMass rehydrates the cargo during restoration. Unlike LoadCargo it
// does not fire hazard notifications: the mass was accepted when it was
// originally loaded.
func (c *Container) setCargoMass(cargoMass float64) error {
	if cargoMass < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cargoMass",
			fmt.Errorf("%g is negative", cargoMass),
		)
	}

	c.cargoMass = cargoMass
	return nil
}
