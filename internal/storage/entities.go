package storage

import "time"

type User struct {
	ID             int64
	Username       string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}

type Chat struct {
	ID        int64
	Name      string
	Owner     User
	CreatedAt time.Time
}

type Message struct {
	ID        int64
	ChatID    int64
	User      User
	Text      string
	CreatedAt time.Time
}

// ChatStats holds the counters reported in the chat meta block
type ChatStats struct {
	MessageCount int
	UserCount    int
}
