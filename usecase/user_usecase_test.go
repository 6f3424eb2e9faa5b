package usecase_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/usecase"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

const testSecretKey = "unit-test-secret"

func TestLogin_Success(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	userRepo := new(MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "creator@example.com").Return(model.User{
		ID:       "user-1",
		Email:    "creator@example.com",
		Password: string(hashed),
	}, nil)

	u := usecase.NewUserUsecase(userRepo, testSecretKey)

	res, err := u.Login(context.Background(), &model.ReqLogin{Email: "Creator@Example.com", Password: "correct horse"})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "user-1", res.User.ID)

	var claims model.UserClaims
	token, err := jwt.ParseWithClaims(res.Token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecretKey), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "user-1", claims.Issuer)
	assert.Equal(t, "creator@example.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)

	userRepo := new(MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "creator@example.com").Return(model.User{
		ID:       "user-1",
		Password: string(hashed),
	}, nil)

	u := usecase.NewUserUsecase(userRepo, testSecretKey)

	_, err := u.Login(context.Background(), &model.ReqLogin{Email: "creator@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(model.User{}, sql.ErrNoRows)

	u := usecase.NewUserUsecase(userRepo, testSecretKey)

	_, err := u.Login(context.Background(), &model.ReqLogin{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	userRepo := new(MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(model.User{}, sql.ErrNoRows)
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		if u.ID == "" || u.Email != "new@example.com" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("longenough")) == nil
	})).Return(nil)

	u := usecase.NewUserUsecase(userRepo, testSecretKey)

	res, err := u.Register(context.Background(), &model.ReqRegister{
		Email:    "New@Example.com",
		Password: "longenough",
		Name:     "New Creator",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	userRepo.AssertExpectations(t)
}

func TestRegister_ShortPassword(t *testing.T) {
	userRepo := new(MockUserRepo)
	u := usecase.NewUserUsecase(userRepo, testSecretKey)

	_, err := u.Register(context.Background(), &model.ReqRegister{Email: "a@b.com", Password: "short"})

	assert.ErrorIs(t, err, usecase.ErrWeakPassword)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "taken@example.com").Return(model.User{ID: "existing"}, nil)

	u := usecase.NewUserUsecase(userRepo, testSecretKey)

	_, err := u.Register(context.Background(), &model.ReqRegister{Email: "taken@example.com", Password: "longenough"})

	assert.ErrorIs(t, err, usecase.ErrEmailTaken)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}
