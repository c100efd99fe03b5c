package shiprepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/containerrepo"
	"freight/internal/adapters/out/postgres/shiprepo"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ship"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// ShipRepositoryIntegrationTestSuite provides integration tests for
// ShipRepository using PostgreSQL containers to verify persistence of the
// ship aggregate and its stow.
type ShipRepositoryIntegrationTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	shipRepo      *shiprepo.GormShipRepository
	containerRepo *containerrepo.GormContainerRepository
	registry      *container.Registry
	tracker       *MockAggregateTracker
}

func (suite *ShipRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = pgContainer

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shiprepo.ShipDTO{},
		&containerrepo.ContainerDTO{},
	))
}

func (suite *ShipRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE containers, ships").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.shipRepo = shiprepo.NewGormShipRepository(suite.db, suite.tracker, nil)
	suite.containerRepo = containerrepo.NewGormContainerRepository(suite.db, suite.tracker, nil)
	suite.registry = container.NewRegistry()
}

func (suite *ShipRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipRepositoryIntegrationTestSuite) newShip(name string) *ship.ContainerShip {
	s, err := ship.NewContainerShip(kernel.NewUUID(), name, 22.5, 4, 30)
	suite.Require().NoError(err)
	return s
}

func (suite *ShipRepositoryIntegrationTestSuite) newBasic() *container.Container {
	c, err := container.NewBasicContainer(suite.registry, 259, 606, 2200, 28000)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.containerRepo.Add(context.Background(), c))
	return c
}

func (suite *ShipRepositoryIntegrationTestSuite) TestAdd_ValidShip_Success() {
	ctx := context.Background()

	s := suite.newShip("MV Meridian")
	suite.Require().NoError(suite.shipRepo.Add(ctx, s))

	var count int64
	suite.Require().NoError(suite.db.Model(&shiprepo.ShipDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *ShipRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.shipRepo.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipRepositoryIntegrationTestSuite) TestUpdate_PersistsStow() {
	ctx := context.Background()

	s := suite.newShip("MV Meridian")
	suite.Require().NoError(suite.shipRepo.Add(ctx, s))

	first := suite.newBasic()
	second := suite.newBasic()
	suite.Require().NoError(s.LoadContainers([]*container.Container{first, second}))
	suite.Require().NoError(suite.shipRepo.Update(ctx, s))

	restored, err := suite.shipRepo.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(2, restored.ContainerCount())
	suite.Equal("B-1", restored.Containers()[0].Serial().String())
	suite.Equal("B-2", restored.Containers()[1].Serial().String())
}

func (suite *ShipRepositoryIntegrationTestSuite) TestUpdate_ReleasesRemovedContainers() {
	ctx := context.Background()

	s := suite.newShip("MV Meridian")
	suite.Require().NoError(suite.shipRepo.Add(ctx, s))

	first := suite.newBasic()
	second := suite.newBasic()
	suite.Require().NoError(s.LoadContainers([]*container.Container{first, second}))
	suite.Require().NoError(suite.shipRepo.Update(ctx, s))

	suite.Require().NoError(s.RemoveContainer(first.Serial()))
	suite.Require().NoError(suite.shipRepo.Update(ctx, s))

	unassigned, err := suite.containerRepo.GetAllUnassigned(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(unassigned, 1)
	suite.True(first.Serial().IsEqual(unassigned[0].Serial()))

	restored, err := suite.shipRepo.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(1, restored.ContainerCount())
}

func (suite *ShipRepositoryIntegrationTestSuite) TestUpdate_PersistsCargoOfStowedContainers() {
	ctx := context.Background()

	s := suite.newShip("MV Meridian")
	suite.Require().NoError(suite.shipRepo.Add(ctx, s))

	cargo := suite.newBasic()
	suite.Require().NoError(cargo.LoadCargo(9000))
	suite.Require().NoError(s.LoadContainer(cargo))
	suite.Require().NoError(suite.shipRepo.Update(ctx, s))

	restored, err := suite.shipRepo.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.InDelta(9000.0, restored.Containers()[0].CargoMass(), 0.0001)
}

func (suite *ShipRepositoryIntegrationTestSuite) TestGetAll_OrderedByName() {
	ctx := context.Background()

	charlie := suite.newShip("Charlie")
	alice := suite.newShip("Alice")
	bravo := suite.newShip("Bravo")
	for _, s := range []*ship.ContainerShip{charlie, alice, bravo} {
		suite.Require().NoError(suite.shipRepo.Add(ctx, s))
	}

	ships, err := suite.shipRepo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(ships, 3)
	suite.Equal("Alice", ships[0].Name())
	suite.Equal("Bravo", ships[1].Name())
	suite.Equal("Charlie", ships[2].Name())
}

func TestShipRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipRepositoryIntegrationTestSuite))
}
