package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"media-service/internal/config"
	"media-service/internal/models"
	"media-service/internal/storage"
	"media-service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testCfg() config.AuthConfig {
	return config.AuthConfig{
		AccessSecret:    "unit-access-secret",
		RefreshSecret:   "unit-refresh-secret",
		AccessTokenTTL:  30 * time.Second,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "media-service",
		Audience:        []string{"media-web"},
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockUserStorage, *mocks.MockContentStorage, *mocks.MockMediaStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStorage(ctrl)
	content := mocks.NewMockContentStorage(ctrl)
	media := mocks.NewMockMediaStorage(ctrl)
	svc := New(users, content, media, testCfg())
	return svc, users, content, media, ctrl
}

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw)
	require.NoError(t, err)
	return h
}

func testUser(pwHash string) *models.User {
	now := time.Now().UTC()
	return &models.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		FullName:     "Alice",
		PasswordHash: pwHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRegisterUser_OK(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	users.EXPECT().UserByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").
		Return(nil, storage.ErrNotFound)
	users.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)

	// Токены при регистрации не выпускаются — UpdateRefreshToken не ожидается.
	user, err := svc.RegisterUser(ctx, "Alice", "Alice@Example.com", "Alice", "Abcdef1!")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "alice@example.com", user.Email)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "Abcdef1!", user.PasswordHash)
}

func TestRegisterUser_Taken(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	// Найден существующий пользователь.
	users.EXPECT().UserByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").
		Return(testUser("hash"), nil)

	_, err := svc.RegisterUser(ctx, "alice", "alice@example.com", "", "Abcdef1!")
	require.ErrorIs(t, err, ErrUserExists)

	// Гонка: проверка прошла, но вставка упёрлась в уникальный индекс.
	users.EXPECT().UserByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").
		Return(nil, storage.ErrNotFound)
	users.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, err = svc.RegisterUser(ctx, "alice", "alice@example.com", "", "Abcdef1!")
	require.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterUser_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"short_username", "ab", "a@b.com", "Abcdef1!", ErrInvalidUsername},
		{"bad_username_chars", "ali ce", "a@b.com", "Abcdef1!", ErrInvalidUsername},
		{"bad_email", "alice", "not-an-email", "Abcdef1!", ErrInvalidEmail},
		{"empty_password", "alice", "a@b.com", "", ErrEmptyPassword},
		{"short_password", "alice", "a@b.com", "Ab1!", ErrWeakPassword},
		{"no_upper", "alice", "a@b.com", "abcdef1!", ErrWeakPassword},
		{"no_special", "alice", "a@b.com", "Abcdefg1", ErrWeakPassword},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterUser(ctx, tc.username, tc.email, "", tc.password)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoginUser_OK_IssuesPairAndStoresRefresh(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	pw := "Abcdef1!"
	user := testUser(mustHashPW(t, pw))

	var storedRefresh string
	users.EXPECT().UserByUsernameOrEmail(gomock.Any(), "alice", "alice").Return(user, nil)
	users.EXPECT().UpdateRefreshToken(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, token string) error {
			storedRefresh = token
			return nil
		})

	pair, got, err := svc.LoginUser(ctx, "Alice", pw)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	// В слот записан ровно тот refresh, что вернулся клиенту.
	require.Equal(t, pair.RefreshToken, storedRefresh)
	require.WithinDuration(t, time.Now().UTC().Add(svc.cfg.AccessTokenTTL), pair.AccessExpiresAt, 5*time.Second)

	// Access-токен из пары проходит верификацию и возвращает владельца.
	uid, username, email, err := svc.parseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, uid)
	require.Equal(t, user.Username, username)
	require.Equal(t, user.Email, email)
}

func TestLoginUser_WrongPassword_SlotUntouched(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := testUser(mustHashPW(t, "Abcdef1!"))

	// UpdateRefreshToken не ожидается: неудачный вход не трогает слот.
	users.EXPECT().UserByUsernameOrEmail(gomock.Any(), "alice", "alice").Return(user, nil)

	_, _, err := svc.LoginUser(ctx, "alice", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_NotFound(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	users.EXPECT().UserByUsernameOrEmail(gomock.Any(), "ghost", "ghost").
		Return(nil, storage.ErrNotFound)

	_, _, err := svc.LoginUser(context.Background(), "ghost", "Abcdef1!")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_StorageError_Propagates(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	boom := errors.New("db down")
	users.EXPECT().UserByUsernameOrEmail(gomock.Any(), "alice", "alice").Return(nil, boom)

	_, _, err := svc.LoginUser(context.Background(), "alice", "Abcdef1!")
	require.ErrorIs(t, err, boom)
}

func TestRefreshTokens_EmptyToken(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, err := svc.RefreshTokens(context.Background(), "")
	require.ErrorIs(t, err, ErrNoToken)
}

func TestRefreshTokens_Garbage(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, err := svc.RefreshTokens(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokens_AccessTokenRejected(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	// Access-токен подписан другим секретом — кодек refresh его не принимает.
	access, err := svc.generateAccessToken(ctx, uid, "alice", "alice@example.com", time.Now().UTC())
	require.NoError(t, err)

	_, _, err = svc.RefreshTokens(ctx, access)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	refresh, err := svc.generateRefreshToken(ctx, uuid.New(), time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, refresh)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokens_OK_RotatesSlot(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := testUser("hash")

	oldRefresh, err := svc.generateRefreshToken(ctx, user.ID, time.Now().UTC())
	require.NoError(t, err)
	user.RefreshToken = oldRefresh

	var storedRefresh string
	users.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	users.EXPECT().UpdateRefreshToken(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, token string) error {
			storedRefresh = token
			return nil
		})

	pair, uid, err := svc.RefreshTokens(ctx, oldRefresh)
	require.NoError(t, err)
	require.Equal(t, user.ID, uid)
	// Ротация обязана выдать новый refresh и записать его в слот.
	require.NotEqual(t, oldRefresh, pair.RefreshToken)
	require.Equal(t, pair.RefreshToken, storedRefresh)
}

func TestRefreshTokens_DoubleRotation(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := testUser("hash")

	r0, err := svc.generateRefreshToken(ctx, user.ID, time.Now().UTC())
	require.NoError(t, err)
	user.RefreshToken = r0

	// Слот эмулирует реальное хранилище: перезапись видна следующим вызовам.
	users.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil).Times(3)
	users.EXPECT().UpdateRefreshToken(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, token string) error {
			user.RefreshToken = token
			return nil
		}).Times(2)

	pair1, _, err := svc.RefreshTokens(ctx, r0)
	require.NoError(t, err)
	r1 := pair1.RefreshToken

	// Повторная ротация старым r0 отклоняется: слот уже содержит r1.
	_, _, err = svc.RefreshTokens(ctx, r0)
	require.ErrorIs(t, err, ErrTokenStale)

	// Актуальный r1 продолжает работать.
	pair2, _, err := svc.RefreshTokens(ctx, r1)
	require.NoError(t, err)
	require.NotEqual(t, r1, pair2.RefreshToken)
}

func TestRefreshTokens_UserGone(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	refresh, err := svc.generateRefreshToken(ctx, uid, time.Now().UTC())
	require.NoError(t, err)

	users.EXPECT().UserByID(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

	_, _, err = svc.RefreshTokens(ctx, refresh)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokens_Expired(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	// Токен, выпущенный в прошлом за пределами TTL и leeway.
	past := time.Now().UTC().Add(-svc.cfg.RefreshTokenTTL - time.Minute)
	refresh, err := svc.generateRefreshToken(ctx, uuid.New(), past)
	require.NoError(t, err)

	_, _, err = svc.RefreshTokens(ctx, refresh)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestRefreshTokens_StoreFailure_NoPair(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := testUser("hash")

	refresh, err := svc.generateRefreshToken(ctx, user.ID, time.Now().UTC())
	require.NoError(t, err)
	user.RefreshToken = refresh

	boom := errors.New("db down")
	users.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	users.EXPECT().UpdateRefreshToken(gomock.Any(), user.ID, gomock.Any()).Return(boom)

	pair, _, err := svc.RefreshTokens(ctx, refresh)
	require.ErrorIs(t, err, boom)
	require.Nil(t, pair)
}

func TestLogout_ClearsSlot_ThenRotateFails(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := testUser("hash")

	refresh, err := svc.generateRefreshToken(ctx, user.ID, time.Now().UTC())
	require.NoError(t, err)
	user.RefreshToken = refresh

	users.EXPECT().UpdateRefreshToken(gomock.Any(), user.ID, "").
		DoAndReturn(func(_ context.Context, _ uuid.UUID, token string) error {
			user.RefreshToken = token
			return nil
		})

	require.NoError(t, svc.Logout(ctx, user.ID))

	// Ранее выданный refresh больше не совпадает с пустым слотом.
	users.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	_, _, err = svc.RefreshTokens(ctx, refresh)
	require.ErrorIs(t, err, ErrTokenStale)
}

func TestLogout_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	users.EXPECT().UpdateRefreshToken(gomock.Any(), uid, "").Return(storage.ErrNotFound)

	err := svc.Logout(context.Background(), uid)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_OK(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := testUser("hash")

	access, err := svc.generateAccessToken(ctx, user.ID, user.Username, user.Email, time.Now().UTC())
	require.NoError(t, err)

	users.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)

	got, err := svc.Authenticate(ctx, access)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
}

func TestAuthenticate_Failures(t *testing.T) {
	t.Parallel()

	svc, users, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	// Пустой токен.
	_, err := svc.Authenticate(ctx, "")
	require.ErrorIs(t, err, ErrNoToken)

	// Мусор.
	_, err = svc.Authenticate(ctx, "garbage")
	require.ErrorIs(t, err, ErrInvalidToken)

	// Просроченный access.
	past := time.Now().UTC().Add(-svc.cfg.AccessTokenTTL - time.Minute)
	expired, err := svc.generateAccessToken(ctx, uuid.New(), "alice", "a@b.com", past)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, expired)
	require.ErrorIs(t, err, ErrTokenExpired)

	// Владелец удалён.
	uid := uuid.New()
	access, err := svc.generateAccessToken(ctx, uid, "alice", "a@b.com", time.Now().UTC())
	require.NoError(t, err)
	users.EXPECT().UserByID(gomock.Any(), uid).Return(nil, storage.ErrNotFound)
	_, err = svc.Authenticate(ctx, access)
	require.ErrorIs(t, err, ErrInvalidToken)
}
