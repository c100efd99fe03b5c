package container_test

import (
	"testing"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/product"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures hazard notifications for assertions.
type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) NotifyHazard(message string) {
	n.messages = append(n.messages, message)
}

func newBasic(t *testing.T, registry *container.Registry) *container.Container {
	t.Helper()
	c, err := container.NewBasicContainer(registry, 259, 606, 2300, 25000)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestNewBasicContainer(t *testing.T) {
	registry := container.NewRegistry()

	t.Run("should create container with valid parameters", func(t *testing.T) {
		c, err := container.NewBasicContainer(registry, 259, 606, 2300, 25000)

		require.NoError(t, err)
		assert.Equal(t, container.Basic, c.Kind())
		assert.Equal(t, "B-1", c.Serial().String())
		assert.InDelta(t, 259.0, c.Height(), 0.0001)
		assert.InDelta(t, 606.0, c.Depth(), 0.0001)
		assert.InDelta(t, 2300.0, c.TareWeight(), 0.0001)
		assert.InDelta(t, 25000.0, c.MaxPayload(), 0.0001)
		assert.Zero(t, c.CargoMass())
		require.NoError(t, c.Validate())
	})

	t.Run("should return error for nil registry", func(t *testing.T) {
		c, err := container.NewBasicContainer(nil, 259, 606, 2300, 25000)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should return aggregated errors for invalid attributes", func(t *testing.T) {
		c, err := container.NewBasicContainer(registry, 0, -1, 0, -5)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "height")
		assert.Contains(t, err.Error(), "depth")
		assert.Contains(t, err.Error(), "tareWeight")
		assert.Contains(t, err.Error(), "maxPayload")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c container.Container

		require.ErrorIs(t, c.Validate(), container.ErrContainerIsNotConstructed)
	})
}

func TestSerialNumberAssignment(t *testing.T) {
	t.Run("sequences start at 1 and increase per prefix", func(t *testing.T) {
		registry := container.NewRegistry()

		first, err := container.NewLiquidContainer(registry, 259, 606, 2500, 20000, false, nil)
		require.NoError(t, err)
		second, err := container.NewLiquidContainer(registry, 259, 606, 2500, 20000, false, nil)
		require.NoError(t, err)
		gas, err := container.NewGasContainer(registry, 259, 606, 2800, 18000, 10, nil)
		require.NoError(t, err)

		assert.Equal(t, "L-1", first.Serial().String())
		assert.Equal(t, "L-2", second.Serial().String())
		assert.Equal(t, "G-1", gas.Serial().String())
	})

	t.Run("serials are unique within a prefix", func(t *testing.T) {
		registry := container.NewRegistry()
		seen := make(map[string]bool)

		for i := 0; i < 20; i++ {
			c := newBasic(t, registry)
			serial := c.Serial().String()
			assert.False(t, seen[serial], "serial %s minted twice", serial)
			seen[serial] = true
		}
	})
}

func TestContainer_LoadCargo(t *testing.T) {
	t.Run("replaces the cargo mass instead of adding", func(t *testing.T) {
		registry := container.NewRegistry()
		c := newBasic(t, registry)

		require.NoError(t, c.LoadCargo(10000))
		require.NoError(t, c.LoadCargo(4000))

		assert.InDelta(t, 4000.0, c.CargoMass(), 0.0001)
	})

	t.Run("rejects negative mass", func(t *testing.T) {
		registry := container.NewRegistry()
		c := newBasic(t, registry)

		err := c.LoadCargo(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, c.CargoMass())
	})

	t.Run("accepts a load exactly at the limit", func(t *testing.T) {
		registry := container.NewRegistry()
		c := newBasic(t, registry)

		require.NoError(t, c.LoadCargo(25000))
		assert.InDelta(t, 25000.0, c.CargoMass(), 0.0001)
	})

	t.Run("rejects a load above the limit and keeps state", func(t *testing.T) {
		registry := container.NewRegistry()
		c := newBasic(t, registry)
		require.NoError(t, c.LoadCargo(1000))

		err := c.LoadCargo(25001)

		require.ErrorIs(t, err, container.ErrOverfill)
		assert.InDelta(t, 1000.0, c.CargoMass(), 0.0001)
	})
}

func TestLiquidContainer_EffectiveMaxLoad(t *testing.T) {
	const maxPayload = 20000.0

	testCases := []struct {
		name      string
		dangerous bool
		limit     float64
	}{
		{"dangerous cargo is capped at 50%", true, 0.5 * maxPayload},
		{"safe cargo is capped at 90%", false, 0.9 * maxPayload},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			registry := container.NewRegistry()
			c, err := container.NewLiquidContainer(registry, 259, 606, 2500, maxPayload, tc.dangerous, nil)
			require.NoError(t, err)

			assert.InDelta(t, tc.limit, c.EffectiveMaxLoad(), 0.0001)

			require.NoError(t, c.LoadCargo(tc.limit))
			assert.InDelta(t, tc.limit, c.CargoMass(), 0.0001)

			err = c.LoadCargo(tc.limit + 1)
			require.ErrorIs(t, err, container.ErrOverfill)
			assert.InDelta(t, tc.limit, c.CargoMass(), 0.0001)
		})
	}
}

func TestHazardNotification(t *testing.T) {
	t.Run("liquid overload notifies exactly once before failing", func(t *testing.T) {
		registry := container.NewRegistry()
		notifier := &recordingNotifier{}
		c, err := container.NewLiquidContainer(registry, 259, 606, 2500, 20000, true, notifier)
		require.NoError(t, err)

		err = c.LoadCargo(15000)

		require.ErrorIs(t, err, container.ErrOverfill)
		require.Len(t, notifier.messages, 1)
		assert.Contains(t, notifier.messages[0], "Liquid")
		assert.Contains(t, notifier.messages[0], c.Serial().String())
		assert.Contains(t, notifier.messages[0], "15000")
		assert.Contains(t, notifier.messages[0], "10000")
		assert.Contains(t, notifier.messages[0], "dangerous=true")
	})

	t.Run("gas overload notifies with the flat payload limit", func(t *testing.T) {
		registry := container.NewRegistry()
		notifier := &recordingNotifier{}
		c, err := container.NewGasContainer(registry, 259, 606, 2800, 18000, 12.5, notifier)
		require.NoError(t, err)

		err = c.LoadCargo(18001)

		require.ErrorIs(t, err, container.ErrOverfill)
		require.Len(t, notifier.messages, 1)
		assert.Contains(t, notifier.messages[0], "Gas")
	})

	t.Run("successful load does not notify", func(t *testing.T) {
		registry := container.NewRegistry()
		notifier := &recordingNotifier{}
		c, err := container.NewGasContainer(registry, 259, 606, 2800, 18000, 12.5, notifier)
		require.NoError(t, err)

		require.NoError(t, c.LoadCargo(18000))
		assert.Empty(t, notifier.messages)
	})

	t.Run("missing notifier does not block the overload error", func(t *testing.T) {
		registry := container.NewRegistry()
		c, err := container.NewLiquidContainer(registry, 259, 606, 2500, 20000, false, nil)
		require.NoError(t, err)

		require.ErrorIs(t, c.LoadCargo(19000), container.ErrOverfill)
	})
}

func TestContainer_EmptyCargo(t *testing.T) {
	t.Run("gas container retains 5% residue", func(t *testing.T) {
		registry := container.NewRegistry()
		c, err := container.NewGasContainer(registry, 259, 606, 2800, 18000, 10, nil)
		require.NoError(t, err)
		require.NoError(t, c.LoadCargo(10000))

		c.EmptyCargo()

		assert.InDelta(t, 500.0, c.CargoMass(), 0.0001)
	})

	t.Run("emptying gas twice compounds the residue", func(t *testing.T) {
		registry := container.NewRegistry()
		c, err := container.NewGasContainer(registry, 259, 606, 2800, 18000, 10, nil)
		require.NoError(t, err)
		require.NoError(t, c.LoadCargo(10000))

		c.EmptyCargo()
		c.EmptyCargo()

		assert.InDelta(t, 25.0, c.CargoMass(), 0.0001)
	})

	t.Run("non-gas containers empty to zero idempotently", func(t *testing.T) {
		registry := container.NewRegistry()
		c := newBasic(t, registry)
		require.NoError(t, c.LoadCargo(12000))

		c.EmptyCargo()
		assert.Zero(t, c.CargoMass())

		c.EmptyCargo()
		assert.Zero(t, c.CargoMass())
	})
}

func TestNewRefrigeratedContainer(t *testing.T) {
	t.Run("should create container at a safe temperature", func(t *testing.T) {
		registry := container.NewRegistry()

		c, err := container.NewRefrigeratedContainer(registry, 259, 606, 3000, 22000, product.Bananas, 14)

		require.NoError(t, err)
		assert.Equal(t, container.Refrigerated, c.Kind())
		assert.Equal(t, "C-1", c.Serial().String())
		assert.Equal(t, product.Bananas, c.Product())
		assert.InDelta(t, 14.0, c.Temperature(), 0.0001)
	})

	t.Run("should reject an unsafe temperature", func(t *testing.T) {
		registry := container.NewRegistry()

		c, err := container.NewRefrigeratedContainer(registry, 259, 606, 3000, 22000, product.Bananas, 10)

		require.ErrorIs(t, err, container.ErrUnsafeTemperature)
		assert.Nil(t, c)
	})

	t.Run("should accept the exact required temperature", func(t *testing.T) {
		registry := container.NewRegistry()

		c, err := container.NewRefrigeratedContainer(registry, 259, 606, 3000, 22000, product.Fish, 2)

		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("should reject an unknown product", func(t *testing.T) {
		registry := container.NewRegistry()

		c, err := container.NewRefrigeratedContainer(registry, 259, 606, 3000, 22000, product.Unknown, 20)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, c)
	})

	t.Run("loads up to the full maximum payload", func(t *testing.T) {
		registry := container.NewRegistry()
		c, err := container.NewRefrigeratedContainer(registry, 259, 606, 3000, 22000, product.Meat, -15)
		require.NoError(t, err)

		require.NoError(t, c.LoadCargo(22000))
		require.ErrorIs(t, c.LoadCargo(22001), container.ErrOverfill)
	})
}

func TestRestoreContainer(t *testing.T) {
	t.Run("should restore a loaded gas container", func(t *testing.T) {
		serial, err := kernel.NewSerialNumber(kernel.PrefixGas, 9)
		require.NoError(t, err)

		c, err := container.RestoreContainer(
			serial, container.Gas,
			259, 606, 2800, 18000, 4200,
			false, 12.5, product.Unknown, 0, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, "G-9", c.Serial().String())
		assert.InDelta(t, 4200.0, c.CargoMass(), 0.0001)
		assert.InDelta(t, 12.5, c.Pressure(), 0.0001)
	})

	t.Run("should reject serial prefix that does not match the kind", func(t *testing.T) {
		serial, err := kernel.NewSerialNumber(kernel.PrefixGas, 9)
		require.NoError(t, err)

		_, err = container.RestoreContainer(
			serial, container.Liquid,
			259, 606, 2500, 20000, 0,
			false, 0, product.Unknown, 0, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unsafe restored temperature", func(t *testing.T) {
		serial, err := kernel.NewSerialNumber(kernel.PrefixRefrigerated, 1)
		require.NoError(t, err)

		_, err = container.RestoreContainer(
			serial, container.Refrigerated,
			259, 606, 3000, 22000, 0,
			false, 0, product.IceCream, -25, nil,
		)

		require.ErrorIs(t, err, container.ErrUnsafeTemperature)
	})
}

func TestContainer_String(t *testing.T) {
	registry := container.NewRegistry()

	t.Run("includes serial, kind, and weights", func(t *testing.T) {
		c := newBasic(t, registry)
		require.NoError(t, c.LoadCargo(500))

		summary := c.String()

		assert.Contains(t, summary, c.Serial().String())
		assert.Contains(t, summary, "Basic")
		assert.Contains(t, summary, "2300.0 kg")
		assert.Contains(t, summary, "500.0 kg")
	})

	t.Run("includes the variant detail", func(t *testing.T) {
		liquid, err := container.NewLiquidContainer(registry, 259, 606, 2500, 20000, true, nil)
		require.NoError(t, err)
		gas, err := container.NewGasContainer(registry, 259, 606, 2800, 18000, 12.5, nil)
		require.NoError(t, err)
		fridge, err := container.NewRefrigeratedContainer(registry, 259, 606, 3000, 22000, product.Cheese, 8)
		require.NoError(t, err)

		assert.Contains(t, liquid.String(), "dangerous=true")
		assert.Contains(t, gas.String(), "12.5 bar")
		assert.Contains(t, fridge.String(), "Cheese")
	})
}

func TestContainer_TotalWeight(t *testing.T) {
	registry := container.NewRegistry()
	c := newBasic(t, registry)
	require.NoError(t, c.LoadCargo(7700))

	assert.InDelta(t, 10000.0, c.TotalWeight(), 0.0001)
}
