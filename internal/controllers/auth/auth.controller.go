package authController

import (
	"context"
	"net/mail"
	"pawsitter/internal/apperrors"
	"pawsitter/internal/logger"
	"pawsitter/internal/models"
	"pawsitter/internal/repositories"
	"pawsitter/internal/services"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MinPasswordLength = 6

// invalidCredentials is returned for both unknown email and wrong password so
// a caller cannot tell which one was true.
const invalidCredentials = "Invalid credentials"

type AuthController struct {
	userRepo           repositories.UserRepository
	tokenService       *services.TokenService
	transactionService *services.TransactionService
	log                logger.Logger
}

type RegisterRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Name     string          `json:"name"`
	Role     models.UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  models.UserPublicView `json:"user"`
	Token string                `json:"token"`
}

type AuthControllerInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
) AuthControllerInterface {
	return &AuthController{
		userRepo:           repos.User,
		tokenService:       services.Token,
		transactionService: services.Transaction,
		log:                logger.New("authController"),
	}
}

func (c *AuthController) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	log := c.log.Function("Register")

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, apperrors.Validation("Invalid email address")
	}
	if len(req.Password) < MinPasswordLength {
		return nil, apperrors.Validation("Password must be at least 6 characters")
	}
	if req.Name == "" {
		return nil, apperrors.Validation("Name is required")
	}

	role := req.Role
	if role == "" {
		role = models.RoleOwner
	}
	if !models.ValidUserRole(role) {
		return nil, apperrors.Validation("Invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
	}

	// The uniqueness check and the insert share one transaction; the unique
	// index on email is the backstop for a concurrent registration.
	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		exists, err := c.userRepo.EmailExists(ctx, tx, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.Conflict("Email already registered")
		}

		return c.userRepo.Create(ctx, tx, user)
	})
	if err != nil {
		return nil, err
	}

	token, err := c.tokenService.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	log.Info("user registered", "userID", user.ID, "role", user.Role)
	return &AuthResponse{User: user.ToPublicView(), Token: token}, nil
}

func (c *AuthController) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	log := c.log.Function("Login")

	user, err := c.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Unauthorized(invalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized(invalidCredentials)
	}

	token, err := c.tokenService.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	log.Info("user logged in", "userID", user.ID)
	return &AuthResponse{User: user.ToPublicView(), Token: token}, nil
}
