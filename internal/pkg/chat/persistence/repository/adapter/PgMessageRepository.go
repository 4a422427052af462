package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/AnujYadav540/SkillSwap/internal/pkg/chat/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/chat/persistence/repository/port"
)

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

var _ repository.MessageRepository = (*PgMessageRepository)(nil)

func (r *PgMessageRepository) Insert(ctx context.Context, m chat.Message) (int64, time.Time, error) {
	if r == nil || r.pool == nil {
		return 0, time.Time{}, errors.New("PgMessageRepository: nil pool")
	}
	var (
		id int64
		ts time.Time
	)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (sender_id, receiver_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, timestamp
	`, m.SenderID, m.ReceiverID, m.Content).Scan(&id, &ts)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, time.Time{}, repository.ErrUnknownReceiver{}
		}
		return 0, time.Time{}, err
	}
	return id, ts, nil
}

func (r *PgMessageRepository) ListBetween(ctx context.Context, userA, userB int64) ([]chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.sender_id, m.receiver_id, m.message, m.timestamp,
		       sender.username, receiver.username
		FROM messages m
		JOIN users sender ON m.sender_id = sender.id
		JOIN users receiver ON m.receiver_id = receiver.id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.timestamp ASC, m.id ASC
	`, userA, userB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.Timestamp,
			&m.SenderUsername, &m.ReceiverUsername); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
