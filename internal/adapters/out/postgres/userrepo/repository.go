package userrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormUserRepository implements ports.UserRepository with GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository binds the repository to db.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts a new account. A taken username yields ObjectAlreadyExistsError.
func (r *GormUserRepository) Add(ctx context.Context, p principal.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsError("username", p.Username())
		}
		return err
	}
	return nil
}

// Update rewrites role and disabled only. Missing rows yield ObjectNotFoundError.
func (r *GormUserRepository) Update(ctx context.Context, p principal.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("role", "disabled").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", p.ID().String())
	}
	return nil
}

// Get loads an account by id.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (principal.Principal, error) {
	if err := id.Validate(); err != nil {
		return principal.Principal{}, err
	}
	return r.first(ctx, "user", id.String(), "id = ?", id.Bytes())
}

// GetByUsername loads an account by exact username.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (principal.Principal, error) {
	return r.first(ctx, "username", username, "username = ?", username)
}

// first loads the single row matching cond and maps a miss onto
// ObjectNotFoundError(param, key).
func (r *GormUserRepository) first(
	ctx context.Context,
	param string,
	key string,
	cond string,
	arg any,
) (principal.Principal, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return principal.Principal{}, errs.NewObjectNotFoundError(param, key)
		}
		return principal.Principal{}, err
	}
	return toDomain(dto)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
