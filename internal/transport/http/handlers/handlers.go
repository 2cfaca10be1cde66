package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"media-service/internal/config"
	"media-service/internal/models"
	"media-service/internal/service"
)

// Handlers агрегирует зависимости HTTP-обработчиков.
type Handlers struct {
	svc     *service.Service
	auth    config.AuthConfig
	cookies config.CookieConfig
}

func New(svc *service.Service, auth config.AuthConfig, cookies config.CookieConfig) *Handlers {
	return &Handlers{
		svc:     svc,
		auth:    auth,
		cookies: cookies,
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// listParams извлекает параметры постраничной выдачи из query.
func listParams(r *http.Request) models.ListParams {
	var p models.ListParams

	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 32); err == nil {
			p.PageSize = int32(n)
		}
	}
	p.PageToken = r.URL.Query().Get("page_token")

	return p
}
