package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-json-localization/internal/logger"
	"github.com/MKhiriev/go-json-localization/internal/utils"
	"github.com/MKhiriev/go-json-localization/models"
)

// debugLocalization dumps every message of the request culture as a flat
// JSON object. Responses carry an ETag so unchanged catalogs answer 304.
func (h *Handler) debugLocalization(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	culture := h.requestCulture(r)

	body, err := utils.MarshalJSON(h.services.LocalizationService.All(culture))
	if err != nil {
		log.Err(err).Str("func", "*Handler.debugLocalization").Msg("error encoding messages")
		http.Error(w, "error encoding messages", http.StatusInternalServerError)
		return
	}

	etag := utils.ETag(body)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(body)
}

// getMessage renders one message. Query parameters other than the culture
// selector become template data.
func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key := chi.URLParam(r, "key")
	culture := h.requestCulture(r)

	value, err := h.services.LocalizationService.Localize(culture, key, templateData(r.URL.Query()))
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.getMessage").Str("key", key).Msg("error localizing message")
		http.Error(w, http.StatusText(status), status)
		return
	}

	if _, err := utils.WriteJSON(w, models.Message{Key: key, Culture: culture, Value: value}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getMessage").Msg("error writing response")
	}
}

func (h *Handler) requestCulture(r *http.Request) string {
	if culture, ok := utils.GetCultureFromContext(r.Context()); ok {
		return culture
	}
	return h.services.LocalizationService.DefaultCulture()
}

func templateData(query url.Values) map[string]any {
	data := make(map[string]any, len(query))
	for name, values := range query {
		if name == cultureQueryParam || len(values) == 0 {
			continue
		}
		data[name] = values[0]
	}
	return data
}
