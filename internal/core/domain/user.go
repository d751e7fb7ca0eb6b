package domain

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           uint64
	Username     string
	PasswordHash string
	Email        string
	Role         Role
	CreatedAt    time.Time
}
