package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/containerrepo"
	"freight/internal/adapters/out/postgres/shiprepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ship"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllShipsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllShipsQueryHandler
	registry  *container.Registry
}

func (suite *GetAllShipsQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shiprepo.ShipDTO{},
		&containerrepo.ContainerDTO{},
	))

	suite.handler = queries.NewGetAllShipsQueryHandler(db)
}

func (suite *GetAllShipsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAllShipsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE containers, ships").Error)
	suite.registry = container.NewRegistry()
}

func (suite *GetAllShipsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllShipsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllShipsQueryHandlerTestSuite) TestHandle_ReturnsShipsWithManifestsOrderedByName() {
	noTracking := &noopTracker{}
	shipRepo := shiprepo.NewGormShipRepository(suite.db, noTracking, nil)
	containerRepo := containerrepo.NewGormContainerRepository(suite.db, noTracking, nil)

	bravo, err := ship.NewContainerShip(kernel.NewUUID(), "Bravo", 18, 4, 30)
	suite.Require().NoError(err)
	alice, err := ship.NewContainerShip(kernel.NewUUID(), "Alice", 22.5, 2, 20)
	suite.Require().NoError(err)

	cargo, err := container.NewBasicContainer(suite.registry, 259, 606, 2200, 28000)
	suite.Require().NoError(err)
	suite.Require().NoError(cargo.LoadCargo(5000))
	suite.Require().NoError(containerRepo.Add(context.Background(), cargo))

	suite.Require().NoError(shipRepo.Add(context.Background(), bravo))
	suite.Require().NoError(shipRepo.Add(context.Background(), alice))

	suite.Require().NoError(alice.LoadContainer(cargo))
	suite.Require().NoError(shipRepo.Update(context.Background(), alice))

	query := queries.NewGetAllShipsQuery()
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Alice", result[0].Name)
	suite.Equal(alice.ID(), result[0].ID)
	suite.Equal(2, result[0].MaxContainerCount)
	suite.Require().Len(result[0].Containers, 1)
	suite.Equal("B-1", result[0].Containers[0].Serial)
	suite.Equal("Basic", result[0].Containers[0].Kind)
	suite.InDelta(7200.0, result[0].Containers[0].TotalWeightKg, 0.0001)

	suite.Equal("Bravo", result[1].Name)
	suite.Empty(result[1].Containers)
}

func (suite *GetAllShipsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllShipsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllShipsQuery constructor")
}

func TestGetAllShipsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllShipsQueryHandlerTestSuite))
}

// noopTracker implements the repositories' aggregate tracking for test
// purposes. Query tests do not need aggregate tracking.
type noopTracker struct{}

func (t *noopTracker) TrackAggregate(_ string, _ any) {}
