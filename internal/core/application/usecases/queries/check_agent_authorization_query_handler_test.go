package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CheckAgentAuthorizationQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.CheckAgentAuthorizationQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *CheckAgentAuthorizationQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
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
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewCheckAgentAuthorizationQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *CheckAgentAuthorizationQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CheckAgentAuthorizationQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *CheckAgentAuthorizationQueryHandlerTestSuite) TestHandle_AssignedAgent_IsAuthorized() {
	agentID := mustAgentID(&suite.Suite, "agent-1")
	orderID := storeOrder(&suite.Suite, suite.orderRepo, order.Preparing, agentID)

	query, err := queries.NewCheckAgentAuthorizationQuery(orderID, agentID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.OrderFound)
	suite.True(result.Authorized)
}

func (suite *CheckAgentAuthorizationQueryHandlerTestSuite) TestHandle_OtherAgent_IsNotAuthorized() {
	agentID := mustAgentID(&suite.Suite, "agent-1")
	otherID := mustAgentID(&suite.Suite, "agent-2")
	orderID := storeOrder(&suite.Suite, suite.orderRepo, order.Preparing, agentID)

	query, err := queries.NewCheckAgentAuthorizationQuery(orderID, otherID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.OrderFound)
	suite.False(result.Authorized)
}

func (suite *CheckAgentAuthorizationQueryHandlerTestSuite) TestHandle_UnassignedOrder_IsNotAuthorized() {
	agentID := mustAgentID(&suite.Suite, "agent-1")

	orderID := kernel.NewUUID()
	o, err := order.NewOrder(orderID, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))

	query, err := queries.NewCheckAgentAuthorizationQuery(orderID, agentID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.OrderFound)
	suite.False(result.Authorized)
}

func (suite *CheckAgentAuthorizationQueryHandlerTestSuite) TestHandle_MissingOrder_ReportsNotFound() {
	agentID := mustAgentID(&suite.Suite, "agent-1")

	query, err := queries.NewCheckAgentAuthorizationQuery(kernel.NewUUID(), agentID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.False(result.OrderFound)
	suite.False(result.Authorized)
}

func (suite *CheckAgentAuthorizationQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.CheckAgentAuthorizationQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewCheckAgentAuthorizationQuery constructor")
}

func TestCheckAgentAuthorizationQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CheckAgentAuthorizationQueryHandlerTestSuite))
}
