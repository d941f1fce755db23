package users

import "time"

type User struct {
	ID           string
	Username     string
	Salt         []byte
	PasswordHash []byte
	CreatedAt    time.Time
}
