package awards

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	models "github.com/glkeru/hamawards/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation  = "23505"
	serialConstraint = "user_awards_serial_key"
)

// Названия уже полученных уровней награды
func (p *PostgresDB) ListClaimedTierNames(ctx context.Context, userID string, awardID uuid.UUID) ([]string, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("level").
		From("user_awards").
		Where(sq.Eq{"user_id": userID, "award_id": awardID}).
		OrderBy("issued_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL("ListClaimedTierNames", sql, args, err)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		p.logSQL("ListClaimedTierNames", sql, args, err)
		return nil, err
	}
	defer rows.Close()

	levels := []string{}
	for rows.Next() {
		var level string
		if err := rows.Scan(&level); err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, rows.Err()
}

// Выдача уровня. Повтор (user, award, level) - ErrAlreadyClaimed, повтор номера - ErrSerialTaken
func (p *PostgresDB) InsertClaim(ctx context.Context, claim models.Claim) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	sql, args, err := sq.Insert("user_awards").
		Columns("id", "user_id", "award_id", "level", "score_snapshot", "serial_number", "issued_at").
		Values(claim.ID, claim.UserID, claim.AwardID, claim.Level, claim.ScoreSnapshot, claim.SerialNumber, claim.IssuedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL("InsertClaim", sql, args, err)
		return err
	}

	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		if conflict := claimConflict(err, claim); conflict != nil {
			return conflict
		}
		p.logSQL("InsertClaim", sql, args, err)
		return err
	}
	return nil
}

// нарушение уникальности: номер или уровень. nil - другая ошибка
func claimConflict(err error, claim models.Claim) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	if pgErr.ConstraintName == serialConstraint {
		return fmt.Errorf("%s: %w", claim.SerialNumber, models.ErrSerialTaken)
	}
	return fmt.Errorf("%s: %w", claim.Level, models.ErrAlreadyClaimed)
}

// Все выданные пользователю уровни, новые первыми
func (p *PostgresDB) ListUserClaims(ctx context.Context, userID string) ([]models.Claim, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("id", "user_id", "award_id", "level", "score_snapshot", "serial_number", "issued_at").
		From("user_awards").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("issued_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL("ListUserClaims", sql, args, err)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		p.logSQL("ListUserClaims", sql, args, err)
		return nil, err
	}
	defer rows.Close()

	claims := []models.Claim{}
	for rows.Next() {
		var c models.Claim
		var id, awardID pgtype.UUID
		err = rows.Scan(&id, &c.UserID, &awardID, &c.Level, &c.ScoreSnapshot, &c.SerialNumber, &c.IssuedAt)
		if err != nil {
			return nil, err
		}
		c.ID, _ = uuid.FromBytes(id.Bytes[:])
		c.AwardID, _ = uuid.FromBytes(awardID.Bytes[:])
		claims = append(claims, c)
	}
	return claims, rows.Err()
}
