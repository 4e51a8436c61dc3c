package pgrepo

import (
	"context"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/repository/repoargs"
	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, updated_at, phone, full_name, password, referral_code`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO profiles (phone, full_name, password, referral_code)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		args.Phone, args.FullName, args.Password, args.ReferralCode,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user with phone `%s`", args.Phone)
	}
	return user, nil
}

func (u *UserRepository) FindUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM profiles WHERE phone = $1`, phone)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by phone `%s`", phone)
	}
	return user, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM profiles WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

func (u *UserRepository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM profiles WHERE referral_code = $1`, code)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by referral code `%s`", code)
	}
	return user, nil
}

func (u *UserRepository) UpdateProfile(
	ctx context.Context,
	id int64,
	args repoargs.UpdateProfile,
) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		UPDATE profiles SET full_name = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, args.FullName,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "updating profile of user %d", id)
	}
	return user, nil
}

// LockByID берет блокировку строки профиля до конца транзакции. Используется для сериализации
// операций, зависящих от производного баланса пользователя.
func (u *UserRepository) LockByID(ctx context.Context, id int64) error {
	var lockedID int64
	if err := u.db.QueryRow(ctx, `SELECT id FROM profiles WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID); err != nil {
		return convertErr(err, "locking profile %d", id)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Phone,
		&user.FullName,
		&user.Password,
		&user.ReferralCode,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
