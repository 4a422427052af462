package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	booking "github.com/AnujYadav540/SkillSwap/internal/pkg/booking/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/booking/persistence/repository/port"
)

type PgBookingRepository struct {
	pool *pgxpool.Pool
}

func NewPgBookingRepository(pool *pgxpool.Pool) *PgBookingRepository {
	return &PgBookingRepository{pool: pool}
}

var _ repository.BookingRepository = (*PgBookingRepository)(nil)

func (r *PgBookingRepository) Insert(ctx context.Context, b booking.Booking) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgBookingRepository: nil pool")
	}
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO bookings (sender_id, receiver_id, skill, session_date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, b.SenderID, b.ReceiverID, b.Skill, b.SessionDate, b.Notes).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, repository.ErrUnknownReceiver{}
		}
		return 0, err
	}
	return id, nil
}

func (r *PgBookingRepository) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgBookingRepository: nil pool")
	}
	var b booking.Booking
	err := r.pool.QueryRow(ctx, `
		SELECT id, sender_id, receiver_id, skill, session_date, notes, status, created_at, updated_at
		FROM bookings WHERE id = $1
	`, id).Scan(&b.ID, &b.SenderID, &b.ReceiverID, &b.Skill, &b.SessionDate, &b.Notes,
		&b.Status, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound{}
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateState is the compare-and-swap that makes concurrent transitions on
// the same booking linearizable: only one caller can move the row off the
// expected status.
func (r *PgBookingRepository) UpdateState(ctx context.Context, id int64, expected, next booking.Status) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgBookingRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE bookings SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
	`, id, expected, next)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (r *PgBookingRepository) ListForUser(ctx context.Context, userID int64) ([]booking.View, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgBookingRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, b.sender_id, b.receiver_id, b.skill, b.session_date, b.notes,
		       b.status, b.created_at, b.updated_at,
		       sender.username, receiver.username
		FROM bookings b
		JOIN users sender ON b.sender_id = sender.id
		JOIN users receiver ON b.receiver_id = receiver.id
		WHERE b.sender_id = $1 OR b.receiver_id = $1
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []booking.View
	for rows.Next() {
		var v booking.View
		if err := rows.Scan(&v.ID, &v.SenderID, &v.ReceiverID, &v.Skill, &v.SessionDate, &v.Notes,
			&v.Status, &v.CreatedAt, &v.UpdatedAt, &v.SenderUsername, &v.ReceiverUsername); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}
