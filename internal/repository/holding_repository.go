package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/encryption"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
// Memos are encrypted on insert and decrypted on read with the configured cipher.
type HoldingRepository struct {
	db     *sql.DB
	tx     *sql.Tx
	cipher *encryption.MemoCipher
}

// NewHoldingRepository creates a new HoldingRepository. A nil cipher stores memos as plain text.
func NewHoldingRepository(db *sql.DB, cipher *encryption.MemoCipher) *HoldingRepository {
	return &HoldingRepository{db: db, cipher: cipher}
}

// WithTx returns a new HoldingRepository scoped to the provided transaction.
func (r *HoldingRepository) WithTx(tx *sql.Tx) *HoldingRepository {
	return &HoldingRepository{
		db:     r.db,
		tx:     tx,
		cipher: r.cipher,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *HoldingRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const holdingColumns = `id, month, category, label, balance, memo, created_at`

// InsertHolding stores a new balance record. ID and CreatedAt must already be set.
func (r *HoldingRepository) InsertHolding(ctx context.Context, h *model.HoldingRecord) error {
	memo, err := r.cipher.Encrypt(h.Memo)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO holding (id, month, category, label, balance, memo, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `

	_, err = r.getQuerier().ExecContext(ctx, query,
		h.ID,
		h.Month.String(),
		h.Category,
		h.Label,
		int64(h.Balance),
		memo,
		h.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}

	return nil
}

// GetHolding retrieves a single holding record by its ID.
// Returns ErrHoldingNotFound if no record with the given ID exists.
func (r *HoldingRepository) GetHolding(ctx context.Context, id string) (model.HoldingRecord, error) {
	query := `SELECT ` + holdingColumns + ` FROM holding WHERE id = ?`

	h, err := r.scanHolding(r.getQuerier().QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.HoldingRecord{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.HoldingRecord{}, fmt.Errorf("failed to query holding: %w", err)
	}

	return h, nil
}

// GetLatestHoldings returns the current snapshot: for every (category, label)
// the record of the greatest month, the last inserted one when a month was
// recorded twice. Accounts are returned in the order they were first recorded.
func (r *HoldingRepository) GetLatestHoldings(ctx context.Context) ([]model.HoldingRecord, error) {
	query := `
        SELECT ` + holdingColumns + `
        FROM (
            SELECT h.*,
                ROW_NUMBER() OVER (PARTITION BY category, label ORDER BY month DESC, seq DESC) AS rn,
                MIN(seq) OVER (PARTITION BY category, label) AS first_seq
            FROM holding h
        )
        WHERE rn = 1
        ORDER BY first_seq
    `

	return r.queryHoldings(ctx, query)
}

// GetHistory returns every record matching filter, ordered by month and then insertion.
// Returns an empty slice if nothing matches.
func (r *HoldingRepository) GetHistory(ctx context.Context, filter model.HistoryFilter) ([]model.HoldingRecord, error) {
	query := `SELECT ` + holdingColumns + ` FROM holding WHERE 1=1`
	var args []any

	if !filter.From.IsZero() {
		query += " AND month >= ?"
		args = append(args, filter.From.String())
	}

	if !filter.To.IsZero() {
		query += " AND month <= ?"
		args = append(args, filter.To.String())
	}

	if len(filter.Categories) > 0 {
		placeholders := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			placeholders[i] = "?"
			args = append(args, c)
		}
		//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
		query += " AND category IN (" + strings.Join(placeholders, ",") + ")"
	}

	query += " ORDER BY month, seq"

	return r.queryHoldings(ctx, query, args...)
}

// GetLatestMonth returns the greatest recorded month, or the zero value when
// the table is empty.
func (r *HoldingRepository) GetLatestMonth(ctx context.Context) (model.YearMonth, error) {
	var month sql.NullString
	if err := r.getQuerier().QueryRowContext(ctx, `SELECT MAX(month) FROM holding`).Scan(&month); err != nil {
		return model.YearMonth{}, fmt.Errorf("failed to query latest month: %w", err)
	}
	if !month.Valid {
		return model.YearMonth{}, nil
	}

	ym, err := model.ParseYearMonth(month.String)
	if err != nil {
		return model.YearMonth{}, fmt.Errorf("failed to parse latest month: %w", err)
	}
	return ym, nil
}

// DeleteHolding removes a holding record by its ID.
// Returns ErrHoldingNotFound if no record with the given ID exists.
func (r *HoldingRepository) DeleteHolding(ctx context.Context, id string) error {
	query := `DELETE FROM holding WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}

func (r *HoldingRepository) queryHoldings(ctx context.Context, query string, args ...any) ([]model.HoldingRecord, error) {
	rows, err := r.getQuerier().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.HoldingRecord{}

	for rows.Next() {
		h, err := r.scanHolding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}
		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

func (r *HoldingRepository) scanHolding(row scanner) (model.HoldingRecord, error) {
	var h model.HoldingRecord
	var month, memo, createdAt string
	var balance int64

	if err := row.Scan(&h.ID, &month, &h.Category, &h.Label, &balance, &memo, &createdAt); err != nil {
		return model.HoldingRecord{}, err
	}

	ym, err := model.ParseYearMonth(month)
	if err != nil {
		return model.HoldingRecord{}, err
	}
	h.Month = ym
	h.Balance = model.Money(balance)

	if h.Memo, err = r.cipher.Decrypt(memo); err != nil {
		return model.HoldingRecord{}, fmt.Errorf("holding %s: %w", h.ID, err)
	}

	if h.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return model.HoldingRecord{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return h, nil
}
