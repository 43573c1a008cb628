package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
)

const userColumns = "users.id, users.username, users.email, users.hashed_password, users.created_at"

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.CreatedAt)
	return u, err
}

func collectUsers(rows pgx.Rows) ([]User, error) {
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// CreateUser creates user and returns it.
// Taken username or email is reported as *DuplicateError
func (s *Store) CreateUser(ctx context.Context, username, email, hashedPassword string) (User, error) {
	s.logger.Debugf("Creating user (%s)", username)

	sql := `insert into users (username, email, hashed_password, created_at)
			values ($1, $2, $3, $4)
			returning ` + userColumns
	u, err := scanUser(s.db.QueryRow(ctx, sql, username, email, hashedPassword, time.Now().UTC()))
	if err != nil {
		return User{}, uniqueUserViolation(err, username, email)
	}

	s.logger.Debugf("Created user (%s) with id %d", username, u.ID)

	return u, nil
}

// Users returns all users ordered by id
func (s *Store) Users(ctx context.Context) ([]User, error) {
	rows, err := s.db.Query(ctx, "select "+userColumns+" from users order by id")
	if err != nil {
		return nil, err
	}

	return collectUsers(rows)
}

// UserByID returns user with provided id or *NotFoundError
func (s *Store) UserByID(ctx context.Context, id int64) (User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, "select "+userColumns+" from users where id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, notFound(EntityUser, id)
		}
		return User{}, err
	}

	return u, nil
}

// UserByUsername returns user with provided username, the boolean reports whether user exists
func (s *Store) UserByUsername(ctx context.Context, username string) (User, bool, error) {
	u, err := scanUser(s.db.QueryRow(ctx, "select "+userColumns+" from users where username = $1", username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, false, nil
		}
		return User{}, false, err
	}

	return u, true, nil
}

// UpdateUser sets username and email of the user, nil values leave the column untouched
func (s *Store) UpdateUser(ctx context.Context, id int64, username, email *string) (User, error) {
	s.logger.Debugf("Updating user (id: %d)", id)

	sql := `update users
			   set username = coalesce($2, username),
				   email = coalesce($3, email)
			 where id = $1
			returning ` + userColumns
	u, err := scanUser(s.db.QueryRow(ctx, sql, id, username, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, notFound(EntityUser, id)
		}
		var un, em string
		if username != nil {
			un = *username
		}
		if email != nil {
			em = *email
		}
		return User{}, uniqueUserViolation(err, un, em)
	}

	return u, nil
}

// ChatsByUserID returns all chats the user is member of, ordered by chat name
func (s *Store) ChatsByUserID(ctx context.Context, user int64) ([]Chat, error) {
	s.logger.Debugf("Retrieving chats for user (id: %d)", user)

	// check if user exists
	var i int8
	err := s.db.QueryRow(ctx, "select 1 from users where id = $1", user).Scan(&i)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(EntityUser, user)
		}
		return nil, err
	}

	sql := `select ` + chatColumns + `
			  from chats
			  join users on users.id = chats.owner_id
			  join chat_users on chat_users.chat_id = chats.id
			 where chat_users.user_id = $1
			 order by chats.name, chats.id`

	rows, err := s.db.Query(ctx, sql, user)
	if err != nil {
		return nil, err
	}

	chats, err := collectChats(rows)
	if err != nil {
		return nil, err
	}

	s.logger.Debugf("Retrieved %d chats", len(chats))

	return chats, nil
}
