package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/domain/repository"
	"github.com/jekoram/reelshorter/infrastructure/logger"
	"github.com/jekoram/reelshorter/infrastructure/utils"
)

const bcryptCost = 12

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type IUserUsecase interface {
	Login(ctx context.Context, req *model.ReqLogin) (*AuthResult, error)
	Register(ctx context.Context, req *model.ReqRegister) (*AuthResult, error)
}

type userUsecase struct {
	userRepo  repository.IUser
	secretKey string
}

func NewUserUsecase(userRepo repository.IUser, secretKey string) IUserUsecase {
	return &userUsecase{userRepo: userRepo, secretKey: secretKey}
}

func (u *userUsecase) Login(ctx context.Context, req *model.ReqLogin) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		logger.GetLogger().WithField("error", err).Error("Error while fetching user by email")
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.issueToken(&user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: &user}, nil
}

func (u *userUsecase) Register(ctx context.Context, req *model.ReqRegister) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if len(req.Password) < 8 {
		return nil, ErrWeakPassword
	}

	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		logger.GetLogger().WithField("error", err).Error("Error while checking existing email")
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(req.Name),
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.issueToken(&user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: &user}, nil
}

// issueToken signs a 24h JWT with the user id in the iss claim, which is
// where the auth middleware reads it back from.
func (u *userUsecase) issueToken(user *model.User) (string, error) {
	return utils.GenerateToken(map[string]interface{}{
		"iss":   user.ID,
		"email": user.Email,
		"exp":   utils.GetCurrentTime().Add(24 * time.Hour).Unix(),
	}, u.secretKey)
}
