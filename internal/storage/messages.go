package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
)

func scanMessage(row pgx.Row) (Message, error) {
	var m Message
	u := &m.User
	err := row.Scan(&m.ID, &m.ChatID, &m.Text, &m.CreatedAt, &u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.CreatedAt)
	return m, err
}

// CreateMessage creates new message in database and returns it with its author
func (s *Store) CreateMessage(ctx context.Context, chat, user int64, text string) (Message, error) {
	s.logger.Debugf("Creating message from user (id: %d) in chat (id: %d)", user, chat)

	sql := `with inserted as (
				insert into messages (chat_id, user_id, text, created_at)
				values ($1, $2, $3, $4)
				returning id, chat_id, user_id, text, created_at
			)
			select inserted.id, inserted.chat_id, inserted.text, inserted.created_at, ` + userColumns + `
			  from inserted
			  join users on users.id = inserted.user_id`

	m, err := scanMessage(s.db.QueryRow(ctx, sql, chat, user, text, time.Now().UTC()))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			switch pgErr.ConstraintName {
			case "messages_chat_id_fkey":
				return Message{}, notFound(EntityChat, chat)
			case "messages_user_id_fkey":
				return Message{}, notFound(EntityUser, user)
			}
		}
		return Message{}, err
	}

	return m, nil
}

// ChatMessages returns list of all chat messages sorted by message creation time
// (from earliest to latest)
func (s *Store) ChatMessages(ctx context.Context, chat int64) ([]Message, error) {
	s.logger.Debugf("Retrieving messages for chat (id: %d)", chat)

	if err := s.chatExists(ctx, chat); err != nil {
		return nil, err
	}

	sql := `select messages.id,
				   messages.chat_id,
				   messages.text,
				   messages.created_at, ` + userColumns + `
			  from messages
			  join users on users.id = messages.user_id
			 where messages.chat_id = $1
			 order by messages.created_at, messages.id`

	rows, err := s.db.Query(ctx, sql, chat)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.logger.Debugf("Retrieved %d messages", len(messages))

	return messages, nil
}
