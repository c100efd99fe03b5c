package commands_test

import (
	"errors"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/container"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBasicContainer(t *testing.T, maxPayload float64) *container.Container {
	t.Helper()
	c, err := container.NewBasicContainer(container.NewRegistry(), 259, 606, 2200, maxPayload)
	require.NoError(t, err)
	return c
}

func newTestGasContainer(t *testing.T, maxPayload float64) *container.Container {
	t.Helper()
	c, err := container.NewGasContainer(container.NewRegistry(), 259, 606, 3100, maxPayload, 16.5, nil)
	require.NoError(t, err)
	return c
}

func TestLoadCargoCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	entity := newTestBasicContainer(t, 28000)
	cmd, _ := commands.NewLoadCargoCommand(entity.Serial(), 12000)

	repo := new(MockContainerRepository)
	uow := new(MockContainerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, entity.Serial()).Return(entity, nil).Once(),
		repo.On("Update", mock.Anything, entity).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockContainerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoadCargoCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.InDelta(t, 12000.0, entity.CargoMass(), 0.0001)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestLoadCargoCommandHandler_Handle_Overfill(t *testing.T) {
	ctx := t.Context()
	entity := newTestBasicContainer(t, 10000)
	cmd, _ := commands.NewLoadCargoCommand(entity.Serial(), 10001)

	repo := new(MockContainerRepository)
	uow := new(MockContainerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, entity.Serial()).Return(entity, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockContainerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoadCargoCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrOverfill)
	assert.InDelta(t, 0.0, entity.CargoMass(), 0.0001)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestLoadCargoCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	entity := newTestBasicContainer(t, 10000)
	cmd, _ := commands.NewLoadCargoCommand(entity.Serial(), 500)

	repo := new(MockContainerRepository)
	uow := new(MockContainerUoW)
	notFound := errs.NewObjectNotFoundError("serialNumber", entity.Serial())
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, entity.Serial()).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockContainerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoadCargoCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestLoadCargoCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.LoadCargoCommand{} // not constructed properly
	factory := new(MockContainerUoWFactory)
	h := commands.NewLoadCargoCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestLoadCargoCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	entity := newTestBasicContainer(t, 28000)
	cmd, _ := commands.NewLoadCargoCommand(entity.Serial(), 12000)

	repo := new(MockContainerRepository)
	uow := new(MockContainerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, entity.Serial()).Return(entity, nil).Once(),
		repo.On("Update", mock.Anything, entity).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockContainerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoadCargoCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
