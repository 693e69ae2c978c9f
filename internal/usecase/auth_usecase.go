package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"dental-clinic-portal/internal/converter"
	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/domain/entity"
	"dental-clinic-portal/internal/domain/repository"
	"dental-clinic-portal/internal/service"
	"dental-clinic-portal/pkg/token"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, username, tokenID string) error
	GetCurrentUser(ctx context.Context, username string) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id uint) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uint, req *dto.RegisterRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uint) error
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	tokenService *token.Service
	tokenStore   repository.TokenStore
	audit        service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	tokenService *token.Service,
	tokenStore repository.TokenStore,
	audit service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		tokenService: tokenService,
		tokenStore:   tokenStore,
		audit:        audit,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := u.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		u.log.Warnf("Failed to look up username: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username:       req.Username,
		HashedPassword: string(hashedPassword),
		Role:           entity.UserRole(req.Role),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// The lookup above races with concurrent registrations; the unique
		// index is the authority.
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameTaken
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, &user.ID, entity.AuditActionUserRegister, "user", strconv.FormatUint(uint64(user.ID), 10), map[string]interface{}{
		"username": user.Username,
		"role":     string(user.Role),
	})

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// bcrypt's own comparison; never raw string equality against the hash.
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, tokenID, err := u.tokenService.Issue(user.Username, string(user.Role), u.tokenService.Expiry())
	if err != nil {
		u.log.Warnf("Failed to issue token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Save(ctx, user.Username, tokenID, u.tokenService.Expiry()); err != nil {
		u.log.Warnf("Failed to store token: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, &user.ID, entity.AuditActionUserLogin, "user", strconv.FormatUint(uint64(user.ID), 10), nil)

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(u.tokenService.Expiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, username, tokenID string) error {
	if err := u.tokenStore.Delete(ctx, username, tokenID); err != nil {
		u.log.Warnf("Failed to revoke token: %+v", err)
		return err
	}

	user, err := u.userRepo.FindByUsername(ctx, username)
	if err == nil && user != nil {
		u.audit.Record(ctx, &user.ID, entity.AuditActionUserLogout, "user", strconv.FormatUint(uint64(user.ID), 10), nil)
	}

	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) GetUser(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// UpdateUser replaces username, password and role wholesale; the password is
// rehashed on every update.
func (u *authUsecase) UpdateUser(ctx context.Context, id uint, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user.Username = req.Username
	user.HashedPassword = string(hashedPassword)
	user.Role = entity.UserRole(req.Role)

	if err := u.userRepo.Update(ctx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameTaken
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) DeleteUser(ctx context.Context, id uint) error {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
