package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/domain/repository"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/repository/postgres"
	"github.com/road-monitoring-service/internal/repository/postgres/testhelpers"
)

// UserRepositorySuite tests the user repository with a real database
type UserRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.UserRepository
	ctx    context.Context
}

func (s *UserRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	db := postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	s.Require().NoError(db.Migrate(context.Background()))

	s.repo = postgres.NewUserRepository(db)
}

func (s *UserRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *UserRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.testDB.Truncate(s.T(), "users")
}

func (s *UserRepositorySuite) TestCreateAndGetByEmail() {
	created, err := s.repo.Create(s.ctx, &domain.User{
		Email:    "user@example.com",
		Password: "$2a$10$hash",
	})
	s.Require().NoError(err)

	found, err := s.repo.GetByEmail(s.ctx, "user@example.com")
	s.NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal("$2a$10$hash", found.Password)
}

func (s *UserRepositorySuite) TestDuplicateEmailConflicts() {
	_, err := s.repo.Create(s.ctx, &domain.User{Email: "dup@example.com", Password: "x"})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, &domain.User{Email: "dup@example.com", Password: "y"})
	s.Equal(errors.ErrEmailTaken, err)
}

func (s *UserRepositorySuite) TestGetByEmailNotFound() {
	_, err := s.repo.GetByEmail(s.ctx, "ghost@example.com")
	s.Equal(errors.ErrUserNotFound, err)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}
