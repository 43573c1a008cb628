package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const chatColumns = "chats.id, chats.name, chats.created_at, " + userColumns

func scanChat(row pgx.Row) (Chat, error) {
	var c Chat
	o := &c.Owner
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &o.ID, &o.Username, &o.Email, &o.HashedPassword, &o.CreatedAt)
	return c, err
}

func collectChats(rows pgx.Rows) ([]Chat, error) {
	defer rows.Close()

	chats := []Chat{}
	for rows.Next() {
		c, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		chats = append(chats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return chats, nil
}

// chatExists returns *NotFoundError when there is no chat with provided id
func (s *Store) chatExists(ctx context.Context, id int64) error {
	var i int8
	err := s.db.QueryRow(ctx, "select 1 from chats where id = $1", id).Scan(&i)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound(EntityChat, id)
		}
		return err
	}

	return nil
}

// CreateChat performs transaction to create chat
// (1. check members exist; 2. insert chat record; 3. bulk insert on "chat_users" table).
// Owner always becomes a member. Unknown user id is reported as *NotFoundError
func (s *Store) CreateChat(ctx context.Context, name string, owner int64, users []int64) (Chat, error) {
	s.logger.Debugf("Creating chat (%s) owned by user (id: %d) with users (%v)", name, owner, users)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return Chat{}, err
	}
	// error handling can be omitted for rollback according docs
	defer tx.Rollback(context.Background())

	c := Chat{Name: name}
	c.Owner, err = scanUser(tx.QueryRow(ctx, "select "+userColumns+" from users where id = $1", owner))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Chat{}, notFound(EntityUser, owner)
		}
		return Chat{}, err
	}

	if len(users) > 0 {
		var existing pgtype.Int8Array
		err = tx.QueryRow(ctx, "select array_agg(id) from users where id = any($1)", users).Scan(&existing)
		if err != nil {
			return Chat{}, err
		}

		var found []int64
		if existing.Status == pgtype.Present {
			if err := existing.AssignTo(&found); err != nil {
				return Chat{}, err
			}
		}
		if missing, ok := firstMissing(users, found); ok {
			return Chat{}, notFound(EntityUser, missing)
		}
	}

	sql := "insert into chats (name, owner_id, created_at) values ($1, $2, $3) returning id, created_at"
	err = tx.QueryRow(ctx, sql, name, owner, time.Now().UTC()).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return Chat{}, err
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"chat_users"}, []string{"chat_id", "user_id"},
		pgx.CopyFromRows(memberRows(c.ID, owner, users)))
	if err != nil {
		return Chat{}, fmt.Errorf("copying chat members: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Chat{}, err
	}

	s.logger.Debugf("Created chat (%s) with id %d", name, c.ID)

	return c, nil
}

func firstMissing(want, found []int64) (int64, bool) {
	set := make(map[int64]struct{}, len(found))
	for _, id := range found {
		set[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := set[id]; !ok {
			return id, true
		}
	}
	return 0, false
}

// Chats returns all chats ordered by name
func (s *Store) Chats(ctx context.Context) ([]Chat, error) {
	sql := `select ` + chatColumns + `
			  from chats
			  join users on users.id = chats.owner_id
			 order by chats.name, chats.id`

	rows, err := s.db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}

	return collectChats(rows)
}

// ChatByID returns chat with its owner or *NotFoundError
func (s *Store) ChatByID(ctx context.Context, id int64) (Chat, error) {
	sql := `select ` + chatColumns + `
			  from chats
			  join users on users.id = chats.owner_id
			 where chats.id = $1`

	c, err := scanChat(s.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Chat{}, notFound(EntityChat, id)
		}
		return Chat{}, err
	}

	return c, nil
}

// RenameChat sets new chat name and returns updated chat
func (s *Store) RenameChat(ctx context.Context, id int64, name string) (Chat, error) {
	s.logger.Debugf("Renaming chat (id: %d) to (%s)", id, name)

	tag, err := s.db.Exec(ctx, "update chats set name = $2 where id = $1", id, name)
	if err != nil {
		return Chat{}, err
	}

	if tag.RowsAffected() == 0 {
		return Chat{}, notFound(EntityChat, id)
	}

	return s.ChatByID(ctx, id)
}

// DeleteChat removes chat together with its messages and memberships
func (s *Store) DeleteChat(ctx context.Context, id int64) error {
	s.logger.Debugf("Deleting chat (id: %d)", id)

	tag, err := s.db.Exec(ctx, "delete from chats where id = $1", id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return notFound(EntityChat, id)
	}

	return nil
}

// ChatStats returns number of messages and members of the chat
func (s *Store) ChatStats(ctx context.Context, id int64) (ChatStats, error) {
	sql := `select (select count(*) from messages where chat_id = chats.id),
				   (select count(*) from chat_users where chat_id = chats.id)
			  from chats
			 where chats.id = $1`

	var messages, users int64
	err := s.db.QueryRow(ctx, sql, id).Scan(&messages, &users)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ChatStats{}, notFound(EntityChat, id)
		}
		return ChatStats{}, err
	}

	return ChatStats{MessageCount: int(messages), UserCount: int(users)}, nil
}

// ChatUsers returns members of the chat ordered by user id
func (s *Store) ChatUsers(ctx context.Context, chat int64) ([]User, error) {
	if err := s.chatExists(ctx, chat); err != nil {
		return nil, err
	}

	sql := `select ` + userColumns + `
			  from users
			  join chat_users on chat_users.user_id = users.id
			 where chat_users.chat_id = $1
			 order by users.id`

	rows, err := s.db.Query(ctx, sql, chat)
	if err != nil {
		return nil, err
	}

	return collectUsers(rows)
}
