package storage

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
)

const (
	EntityUser    = "User"
	EntityChat    = "Chat"
	EntityMessage = "Message"
)

// NotFoundError is returned when the requested entity does not exist
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s does not exist", e.Entity, e.ID)
}

func notFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: strconv.FormatInt(id, 10)}
}

// DuplicateError is returned when a unique field of the entity is already taken
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

// uniqueUserViolation translates violations of users unique constraints into DuplicateError
func uniqueUserViolation(err error, username, email string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case "users_username_key":
		return &DuplicateError{Entity: EntityUser, Field: "username", Value: username}
	case "users_email_key":
		return &DuplicateError{Entity: EntityUser, Field: "email", Value: email}
	default:
		return err
	}
}
