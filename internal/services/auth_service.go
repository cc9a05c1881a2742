package services

import (
	"errors"

	"watchparty_backend/internal/auth"
	"watchparty_backend/internal/email"
	"watchparty_backend/internal/logger"
	"watchparty_backend/internal/models"
	"watchparty_backend/internal/repositories"
	"watchparty_backend/internal/services/dto"
	"watchparty_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	memberRepo repositories.MemberRepository
	emailProv  email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	memberRepo repositories.MemberRepository,
	emailProv email.Provider,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		memberRepo: memberRepo,
		emailProv:  emailProv,
	}
}

// Register creates the account and its member profile in one transaction and
// returns a signed access token. The welcome email is best-effort.
func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	member := &models.Member{
		Bio:            req.Bio,
		Location:       req.Location,
		ProfilePic:     req.ProfilePic,
		TimeZoneOffset: req.TimeZoneOffset,
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.userRepo.Create(tx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "auth", "An account with this email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	member.UserID = user.ID
	if err := s.memberRepo.Create(tx, member); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	go func() {
		subject, body := email.WelcomeBody(user.FirstName)
		if err := s.emailProv.Send(user.Email, subject, body); err != nil {
			logger.Error("welcome email failed", "email", user.Email, "error", err.Error())
		}
	}()

	member.User = user
	return s.buildAuthResponse(user, member)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	member := user.Member
	if member == nil {
		// Accounts always carry a profile; a missing one is corrupt state.
		return nil, apperrors.InternalError(errors.New("account has no member profile"))
	}
	member.User = user

	return s.buildAuthResponse(user, member)
}

func (s *authService) buildAuthResponse(user *models.User, member *models.Member) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, member.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		Member:      buildMemberResponse(member),
	}, nil
}
