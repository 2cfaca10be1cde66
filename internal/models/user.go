// Package models содержит доменные сущности media-сервиса.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — учётная запись пользователя (PostgreSQL).
//
// Важно:
//   - PasswordHash хранит bcrypt-хэш и никогда не отдаётся наружу;
//   - RefreshToken — единственный «живой» refresh-токен пользователя.
//     Пустая строка означает отсутствие активной сессии (logout).
//     Перезапись значения инвалидирует предыдущий токен — списка отзыва нет.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	FullName     string
	AvatarURL    string
	CoverURL     string
	PasswordHash string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
