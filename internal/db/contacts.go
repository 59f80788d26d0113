package awards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	models "github.com/glkeru/hamawards/internal/models"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
)

// строк в одном INSERT
const insertChunk = 500

var contactColumns = []string{"id", "user_id", "callsign", "band", "mode", "qso_date", "dxcc", "country", "adif_raw"}

// Все связи пользователя
func (p *PostgresDB) ListContacts(ctx context.Context, userID string) ([]models.Contact, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select(contactColumns...).
		From("qsos").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL("ListContacts", sql, args, err)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		p.logSQL("ListContacts", sql, args, err)
		return nil, err
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// Связь пользователя. Чужая связь не отличается от несуществующей
func (p *PostgresDB) GetContact(ctx context.Context, userID string, contactID int64) (models.Contact, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return models.Contact{}, err
	}
	defer conn.Release()

	sql, args, err := sq.Select(contactColumns...).
		From("qsos").
		Where(sq.Eq{"id": contactID, "user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL("GetContact", sql, args, err)
		return models.Contact{}, err
	}

	c, err := scanContact(conn.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Contact{}, fmt.Errorf("contact %d: %w", contactID, models.ErrNotFound)
		}
		return models.Contact{}, err
	}
	return c, nil
}

// Загрузка связей. Повторы по (user, call, band, mode, date) пропускаются
func (p *PostgresDB) InsertContacts(ctx context.Context, userID string, contacts []models.Contact) (imported int, err error) {
	if len(contacts) == 0 {
		return 0, nil
	}
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	for start := 0; start < len(contacts); start += insertChunk {
		end := min(start+insertChunk, len(contacts))

		query := sq.Insert("qsos").
			Columns("user_id", "callsign", "band", "mode", "qso_date", "dxcc", "country", "adif_raw").
			Suffix("ON CONFLICT (user_id, callsign, band, mode, qso_date) DO NOTHING").
			PlaceholderFormat(sq.Dollar)
		for _, c := range contacts[start:end] {
			raw, err := json.Marshal(c.Raw)
			if err != nil {
				return 0, fmt.Errorf("marshal adif: %w", err)
			}
			query = query.Values(userID, c.Callsign, c.Band, c.Mode, c.QSODate, c.DXCC, c.Country, string(raw))
		}

		sql, args, err := query.ToSql()
		if err != nil {
			p.logSQL("InsertContacts", sql, nil, err)
			return 0, err
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			p.logSQL("InsertContacts", sql, nil, err)
			return 0, err
		}
		imported += int(tag.RowsAffected())
	}

	err = tx.Commit(ctx)
	if err != nil {
		return 0, err
	}
	return imported, nil
}

func scanContact(row pgx.Row) (models.Contact, error) {
	var c models.Contact
	var dxcc, country pgtype.Text
	var raw []byte
	err := row.Scan(&c.ID, &c.UserID, &c.Callsign, &c.Band, &c.Mode, &c.QSODate, &dxcc, &country, &raw)
	if err != nil {
		return models.Contact{}, err
	}
	c.DXCC = dxcc.String
	c.Country = country.String
	c.Raw = map[string]string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c.Raw); err != nil {
			return models.Contact{}, fmt.Errorf("contact %d adif: %w", c.ID, err)
		}
	}
	return c, nil
}
