package authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/pg"
	"github.com/GlebRadaev/globalfund/pkg/auth"
	"github.com/GlebRadaev/globalfund/pkg/random"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

var (
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("not authorized as an admin")
)

const (
	resetSubject = "Password Reset OTP for Global Fund Raising"
	resetBody    = "<p>Your OTP for password reset is: <b>%s</b>. This OTP is valid for %d minutes.</p>"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	SetOTP(ctx context.Context, id, otp string, expiresAt time.Time) error
	ResetPassword(ctx context.Context, id, passwordHash string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error)
	SetAdmin(ctx context.Context, email string, isAdmin bool) (bool, error)
}

type Mailer interface {
	SendMail(ctx context.Context, to, subject, htmlBody string) error
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// UserUpdate carries the fields an admin may change; nil means "keep".
type UserUpdate struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
	IsAdmin  *bool
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	mailer      Mailer
	tokenTTL    time.Duration
	otpTTL      time.Duration

	now     func() time.Time
	makeOTP func() (string, error)
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, mailer Mailer, tokenTTL, otpTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		mailer:      mailer,
		tokenTTL:    tokenTTL,
		otpTTL:      otpTTL,
		now:         time.Now,
		makeOTP:     random.OTP,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := s.hashService.HashPassword(in.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Phone:        strings.TrimSpace(in.Phone),
		IsAdmin:      false,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("user_id", newUser.ID))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("user_id", user.ID))
	return user, nil
}

// AdminLogin authenticates and then insists on the admin flag.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		zap.L().Info("admin login refused", zap.String("user_id", user.ID))
		return nil, ErrForbidden
	}
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateJWT(user.ID, user.IsAdmin, s.now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) findByID(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrUserNotFound
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) LoadPrincipal(ctx context.Context, userID string) (*auth.Principal, error) {
	user, err := s.findByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("%w: %w", auth.ErrUnknownPrincipal, err)
	}
	if err != nil {
		return nil, err
	}
	return &auth.Principal{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.findByID(ctx, userID)
}

// RequestPasswordReset mails a one-time code when the email is known. An
// unknown email is not an error, so callers can't tell which emails have accounts.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return err
	}
	if user == nil {
		zap.L().Info("password reset requested for unknown email", zap.String("email", email))
		return nil
	}

	otp, err := s.makeOTP()
	if err != nil {
		zap.L().Error("can't generate otp", zap.Error(err))
		return err
	}
	if err := s.userRepo.SetOTP(ctx, user.ID, otp, s.now().Add(s.otpTTL)); err != nil {
		return err
	}

	body := fmt.Sprintf(resetBody, otp, int(s.otpTTL.Minutes()))
	if err := s.mailer.SendMail(ctx, user.Email, resetSubject, body); err != nil {
		zap.L().Error("can't send otp", zap.String("user_id", user.ID), zap.Error(err))
		return fmt.Errorf("send otp: %w", err)
	}

	zap.L().Info("password reset otp sent", zap.String("user_id", user.ID))
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return err
	}
	if user == nil || user.OTP == "" || user.OTP != strings.ToUpper(strings.TrimSpace(otp)) ||
		user.OTPExpiresAt == nil || user.OTPExpiresAt.Before(s.now()) {
		return ErrInvalidOTP
	}

	hashedPassword, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return err
	}
	if err := s.userRepo.ResetPassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	zap.L().Info("password reset", zap.String("user_id", user.ID))
	return nil
}

func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.findByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hashService.ComparePassword(user.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}

	hashedPassword, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	zap.L().Info("password changed", zap.String("user_id", user.ID))
	return nil
}

func (s *Service) UpdateUser(ctx context.Context, principal *auth.Principal, id string, upd UserUpdate) (*domain.User, error) {
	if principal == nil || !principal.IsAdmin {
		return nil, ErrForbidden
	}

	user, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil && strings.TrimSpace(*upd.Name) != "" {
		user.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Phone != nil && strings.TrimSpace(*upd.Phone) != "" {
		user.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.Email != nil && normalizeEmail(*upd.Email) != "" && normalizeEmail(*upd.Email) != user.Email {
		email := normalizeEmail(*upd.Email)
		other, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			zap.L().Error("can't find user", zap.Error(err))
			return nil, err
		}
		if other != nil {
			return nil, ErrDuplicateEmail
		}
		user.Email = email
	}
	if upd.Password != nil && *upd.Password != "" {
		hashedPassword, err := s.hashService.HashPassword(*upd.Password)
		if err != nil {
			zap.L().Error("can't hash password", zap.Error(err))
			return nil, err
		}
		user.PasswordHash = hashedPassword
	}
	if upd.IsAdmin != nil {
		user.IsAdmin = *upd.IsAdmin
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	zap.L().Info("user updated by admin",
		zap.String("user_id", updated.ID),
		zap.String("admin_id", principal.UserID),
		zap.Bool("is_admin", updated.IsAdmin),
	)
	return updated, nil
}

// SetAdmin flips the admin flag by email. Used by the operator CLI, which is
// the only way to create the first admin.
func (s *Service) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	found, err := s.userRepo.SetAdmin(ctx, normalizeEmail(email), isAdmin)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	zap.L().Info("admin flag changed", zap.String("email", email), zap.Bool("is_admin", isAdmin))
	return nil
}

func (s *Service) ClearExpiredOTPs(ctx context.Context) (int64, error) {
	return s.userRepo.ClearExpiredOTPs(ctx, s.now())
}
