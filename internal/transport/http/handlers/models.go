package handlers

import (
	"time"

	"media-service/internal/models"
	"media-service/internal/storage"
)

// Ответные модели HTTP-слоя. Доменные структуры наружу не отдаются:
// у пользователя скрываются PasswordHash и слот refresh-токена.

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CoverURL  string    `json:"cover_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func userFromModel(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		CoverURL:  u.CoverURL,
		CreatedAt: u.CreatedAt,
	}
}

type tokensResponse struct {
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
}

func tokensFromPair(p *models.TokenPair) tokensResponse {
	return tokensResponse{
		AccessToken:     p.AccessToken,
		RefreshToken:    p.RefreshToken,
		AccessExpiresAt: p.AccessExpiresAt,
	}
}

type loginResponse struct {
	User   userResponse   `json:"user"`
	Tokens tokensResponse `json:"tokens"`
}

type uploadResponse struct {
	UploadURL      string            `json:"upload_url"`
	Key            string            `json:"key"`
	ExpiresSeconds int64             `json:"expires_seconds"`
	RequiredHeader map[string]string `json:"required_header,omitempty"`
}

func uploadFromInfo(info *storage.UploadInfo) uploadResponse {
	return uploadResponse{
		UploadURL:      info.UploadURL,
		Key:            info.Key,
		ExpiresSeconds: int64(info.Expires.Seconds()),
		RequiredHeader: info.RequiredHeader,
	}
}

type videoResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	VideoKey     string    `json:"video_key"`
	ThumbnailKey string    `json:"thumbnail_key"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
}

func videoFromModel(v *models.Video) videoResponse {
	return videoResponse{
		ID:           v.ID,
		OwnerID:      v.OwnerID.String(),
		VideoKey:     v.VideoKey,
		ThumbnailKey: v.ThumbnailKey,
		Title:        v.Title,
		Description:  v.Description,
		Duration:     v.Duration,
		Views:        v.Views,
		IsPublished:  v.IsPublished,
		CreatedAt:    v.CreatedAt,
	}
}

type videoPageResponse struct {
	Items         []videoResponse `json:"items"`
	NextPageToken string          `json:"next_page_token,omitempty"`
}

func videoPageFromModel(p *models.VideoPage) videoPageResponse {
	out := videoPageResponse{
		Items:         make([]videoResponse, 0, len(p.Items)),
		NextPageToken: p.NextPageToken,
	}
	for i := range p.Items {
		out.Items = append(out.Items, videoFromModel(&p.Items[i]))
	}
	return out
}

type commentResponse struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	OwnerID   string    `json:"owner_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func commentFromModel(c *models.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		VideoID:   c.VideoID,
		OwnerID:   c.OwnerID.String(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

type commentPageResponse struct {
	Items         []commentResponse `json:"items"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

func commentPageFromModel(p *models.CommentPage) commentPageResponse {
	out := commentPageResponse{
		Items:         make([]commentResponse, 0, len(p.Items)),
		NextPageToken: p.NextPageToken,
	}
	for i := range p.Items {
		out.Items = append(out.Items, commentFromModel(&p.Items[i]))
	}
	return out
}

type tweetResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func tweetFromModel(t *models.Tweet) tweetResponse {
	return tweetResponse{
		ID:        t.ID,
		OwnerID:   t.OwnerID.String(),
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}

type playlistResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	VideoIDs    []string  `json:"video_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

func playlistFromModel(p *models.Playlist) playlistResponse {
	ids := p.VideoIDs
	if ids == nil {
		ids = []string{}
	}
	return playlistResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID.String(),
		Name:        p.Name,
		Description: p.Description,
		VideoIDs:    ids,
		CreatedAt:   p.CreatedAt,
	}
}
