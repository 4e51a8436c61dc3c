package pgrepo

import (
	"context"

	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/pkg/uow"
)

type ReferralRepository struct {
	db uow.DBTX
}

func NewReferralRepository(db uow.DBTX) *ReferralRepository {
	return &ReferralRepository{db: db}
}

func (r *ReferralRepository) Create(ctx context.Context, referrerID, referredID int64) (*domain.Referral, error) {
	referral := domain.Referral{ReferrerID: referrerID, ReferredID: referredID}
	err := r.db.QueryRow(ctx, `
		INSERT INTO referrals (referrer_id, referred_id)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		referrerID, referredID,
	).Scan(&referral.ID, &referral.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating referral %d -> %d", referrerID, referredID)
	}
	return &referral, nil
}

func (r *ReferralRepository) CountByReferrer(ctx context.Context, referrerID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM referrals WHERE referrer_id = $1`, referrerID).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting referrals of user %d", referrerID)
	}
	return count, nil
}
