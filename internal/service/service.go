// service содержит бизнес-логику media-сервиса:
// регистрацию/аутентификацию пользователей, выпуск/ротацию токенов,
// управление видео, комментариями, твитами и плейлистами,
// а также работу с хранилищами через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданные хранилища потокобезопасны.
//   - Единственный источник истины о сессии пользователя — слот refresh-токена
//     в строке пользователя (PostgreSQL). Никаких промежуточных кэшей сессий.
//   - Ошибки возвращаются и далее маппятся транспортом на HTTP-статусы
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"media-service/internal/cache"
	"media-service/internal/config"
	"media-service/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен (access/refresh) некорректен по формату/подписи
	// либо его владелец не найден. Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenStale — refresh-токен валиден по подписи, но не совпадает
	// со значением в слоте пользователя (уже ротирован или сброшен logout-ом).
	// Транспорт: HTTP 401.
	ErrTokenStale = errors.New("token is stale")

	// ErrNoToken — токен не передан. Транспорт: HTTP 401.
	ErrNoToken = errors.New("no token provided")

	// ErrUserExists — username или email уже заняты другим пользователем.
	// Транспорт: HTTP 409.
	ErrUserExists = errors.New("username or email already taken")

	// ErrInvalidEmail — e-mail имеет некорректный формат.
	// Транспорт: HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidUsername — username пуст или содержит недопустимые символы.
	// Транспорт: HTTP 400.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrWeakPassword — пароль не удовлетворяет политикам сложности.
	// Транспорт: HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой. Транспорт: HTTP 400.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrInvalidArgument — некорректные параметры запроса (пустой заголовок
	// твита, недопустимый content-type загрузки и т.п.). Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound — запрошенная сущность не найдена либо не принадлежит
	// вызывающему. Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrUploadNotFound — подтверждаемый файл отсутствует в объектном хранилище.
	// Транспорт: HTTP 404.
	ErrUploadNotFound = errors.New("upload not found")
)

// Service описывает бизнес-логику media-сервиса.
type Service struct {
	users   storage.UserStorage
	content storage.ContentStorage
	media   storage.MediaStorage
	cfg     config.AuthConfig
	views   cache.ViewCache // может быть nil, если кэш не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(users storage.UserStorage, content storage.ContentStorage, media storage.MediaStorage, cfg config.AuthConfig) *Service {
	return &Service{
		users:   users,
		content: content,
		media:   media,
		cfg:     cfg,
	}
}

// SetViewCache устанавливает кэш счётчиков просмотров (опционально).
func (s *Service) SetViewCache(c cache.ViewCache) {
	s.views = c
}
