package commands_test

import (
	"context"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ship"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ContainerRepository() ports.ContainerRepository {
	args := m.Called()
	return args.Get(0).(ports.ContainerRepository)
}

func (m *MockUoW) ShipRepository() ports.ShipRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newTestShip(t *testing.T, maxContainerCount int, maxWeightTons float64) *ship.ContainerShip {
	t.Helper()
	s, err := ship.NewContainerShip(kernel.NewUUID(), "MV Meridian", 22.5, maxContainerCount, maxWeightTons)
	require.NoError(t, err)
	return s
}

func TestLoadContainersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	targetShip := newTestShip(t, 4, 30)
	first := newTestBasicContainer(t, 28000)
	second := newTestGasContainer(t, 24000)
	cmd, err := commands.NewLoadContainersCommand(
		targetShip.ID(),
		[]kernel.SerialNumber{first.Serial(), second.Serial()},
	)
	require.NoError(t, err)

	containerRepo := new(MockContainerRepository)
	shipRepo := new(MockShipRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipRepository").Return(shipRepo).Once(),
		shipRepo.On("Get", mock.Anything, targetShip.ID()).Return(targetShip, nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("Get", mock.Anything, first.Serial()).Return(first, nil).Once(),
		containerRepo.On("Get", mock.Anything, second.Serial()).Return(second, nil).Once(),
		shipRepo.On("Update", mock.Anything, targetShip).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoadContainersCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, targetShip.ContainerCount())
	containerRepo.AssertExpectations(t)
	shipRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestLoadContainersCommandHandler_Handle_CapacityExceeded(t *testing.T) {
	ctx := t.Context()
	targetShip := newTestShip(t, 1, 30)
	first := newTestBasicContainer(t, 28000)
	second := newTestGasContainer(t, 24000)
	cmd, err := commands.NewLoadContainersCommand(
		targetShip.ID(),
		[]kernel.SerialNumber{first.Serial(), second.Serial()},
	)
	require.NoError(t, err)

	containerRepo := new(MockContainerRepository)
	shipRepo := new(MockShipRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipRepository").Return(shipRepo).Once(),
		shipRepo.On("Get", mock.Anything, targetShip.ID()).Return(targetShip, nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("Get", mock.Anything, first.Serial()).Return(first, nil).Once(),
		containerRepo.On("Get", mock.Anything, second.Serial()).Return(second, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoadContainersCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, ship.ErrCapacityExceeded)
	assert.Equal(t, 0, targetShip.ContainerCount())
	containerRepo.AssertExpectations(t)
	shipRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestLoadContainersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.LoadContainersCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewLoadContainersCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
