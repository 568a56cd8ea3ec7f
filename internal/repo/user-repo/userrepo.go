package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `id, name, email, password_hash, COALESCE(phone, ''), is_admin, COALESCE(otp, ''), otp_expires_at, created_at, updated_at`

const (
	findByEmailQuery = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	findByIDQuery    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	createQuery      = `
		INSERT INTO users (id, name, email, password_hash, phone, is_admin)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING created_at, updated_at
	`
	updateQuery = `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, phone = NULLIF($5, ''), is_admin = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	setOTPQuery        = `UPDATE users SET otp = $2, otp_expires_at = $3, updated_at = NOW() WHERE id = $1`
	resetPasswordQuery = `
		UPDATE users
		SET password_hash = $2, otp = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE id = $1
	`
	updatePasswordQuery   = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	clearExpiredOTPsQuery = `
		UPDATE users
		SET otp = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE otp_expires_at IS NOT NULL AND otp_expires_at < $1
	`
	setAdminQuery = `UPDATE users SET is_admin = $2, updated_at = NOW() WHERE email = $1`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Phone,
		&user.IsAdmin, &user.OTP, &user.OTPExpiresAt, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.findOne(ctx, findByEmailQuery, email)
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return repo.findOne(ctx, findByIDQuery, id)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := repo.db.QueryRow(ctx, createQuery,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Phone, user.IsAdmin,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Update writes the mutable profile fields. It returns nil when the user is gone.
func (repo *Repository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := repo.db.QueryRow(ctx, updateQuery,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Phone, user.IsAdmin,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) SetOTP(ctx context.Context, id, otp string, expiresAt time.Time) error {
	if _, err := repo.db.Exec(ctx, setOTPQuery, id, otp, expiresAt); err != nil {
		zap.L().Error("can't store otp", zap.Error(err))
		return err
	}
	return nil
}

// ResetPassword stores the new hash and consumes the one-time code.
func (repo *Repository) ResetPassword(ctx context.Context, id, passwordHash string) error {
	if _, err := repo.db.Exec(ctx, resetPasswordQuery, id, passwordHash); err != nil {
		zap.L().Error("can't reset password", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if _, err := repo.db.Exec(ctx, updatePasswordQuery, id, passwordHash); err != nil {
		zap.L().Error("can't update password", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error) {
	tag, err := repo.db.Exec(ctx, clearExpiredOTPsQuery, now)
	if err != nil {
		zap.L().Error("can't clear expired otps", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// SetAdmin reports false when no user has the given email.
func (repo *Repository) SetAdmin(ctx context.Context, email string, isAdmin bool) (bool, error) {
	tag, err := repo.db.Exec(ctx, setAdminQuery, email, isAdmin)
	if err != nil {
		zap.L().Error("can't change admin flag", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
