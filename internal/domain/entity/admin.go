package entity

import "time"

// RoleAdmin único rol emitido hoy; se conserva como string para tokens futuros.
const RoleAdmin = "admin"

// Admin credencial del back-office. Username es único.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
