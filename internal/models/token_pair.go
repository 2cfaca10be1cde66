package models

import "time"

// TokenPair — пара токенов, выдаваемая при входе и при каждой ротации.
//
// Описание:
//   - AccessToken — короткоживущий JWT для доступа к API; на сервере не хранится;
//   - RefreshToken — долгоживущий JWT для выпуска новой пары; на сервере
//     хранится текущее значение целиком (один слот на пользователя);
//   - AccessExpiresAt — момент истечения access-токена (UTC).
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}
