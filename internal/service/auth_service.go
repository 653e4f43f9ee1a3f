package service

import (
	"context"
	"strings"
	"time"

	"smartnotes-be/internal/dto"
	"smartnotes-be/internal/entity"
	"smartnotes-be/internal/pkg/serverutils"
	"smartnotes-be/internal/repository/specification"
	"smartnotes-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmailRegistered is surfaced separately so the web controller can send
// the user to the login page instead of re-rendering the register form.
var ErrEmailRegistered = serverutils.ValidationError("Email already registered. Please login.")

// invalidCredentials is deliberately identical for unknown email and wrong
// password, so login failures can't be used to enumerate accounts.
func invalidCredentials() error {
	return serverutils.UnauthenticatedError("Invalid email or password.")
}

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, error)
	Authenticate(ctx context.Context, req *dto.LoginRequest) (*entity.User, error)
	IssueToken(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IAuthService {
	return &authService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

// NormalizeEmail applies the canonical form used both at registration and
// at login: trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, error) {
	email := NormalizeEmail(req.Email)

	if email == "" || req.Password == "" {
		return nil, serverutils.ValidationError("Email and password are required.")
	}
	if req.Password != req.ConfirmPassword {
		return nil, serverutils.ValidationError("Passwords do not match.")
	}
	if len(req.Password) < 6 {
		return nil, serverutils.ValidationError("Password must be at least 6 characters.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Registration event is auxiliary (welcome mail); never fail the request.
	if s.publisherService != nil {
		s.publisherService.PublishUserRegistered(ctx, user.Email)
	}

	return user, nil
}

func (s *authService) Authenticate(ctx context.Context, req *dto.LoginRequest) (*entity.User, error) {
	email := NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, serverutils.ValidationError("Email and password are required.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, invalidCredentials()
	}
	if user == nil {
		return nil, invalidCredentials()
	}

	// A malformed stored hash also lands here: verification failure, not a 500.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, invalidCredentials()
	}

	return user, nil
}

func (s *authService) IssueToken(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.Authenticate(ctx, req)
	if err != nil {
		return nil, err
	}

	accessTokenExpiry := time.Hour * 24

	claims := jwt.MapClaims{
		"user_id": user.Id,
		"exp":     time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(serverutils.JwtSecret()))
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{AccessToken: signedToken}, nil
}
