package http

import (
	"net/http"

	"github.com/MKhiriev/go-json-localization/internal/logger"
	"github.com/MKhiriev/go-json-localization/internal/utils"
)

const (
	cultureQueryParam     = "culture"
	acceptLanguageHeader  = "Accept-Language"
	contentLanguageHeader = "Content-Language"
)

// withCulture negotiates the request culture from the culture query
// parameter or, when absent, the Accept-Language header. Unsupported or
// missing values resolve to the default culture.
func (h *Handler) withCulture(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested := r.URL.Query().Get(cultureQueryParam)
		if requested == "" {
			requested = r.Header.Get(acceptLanguageHeader)
		}

		culture := h.services.LocalizationService.Match(requested)
		logger.FromRequest(r).Debug().
			Str("requested", requested).
			Str("culture", culture).
			Msg("request culture negotiated")

		w.Header().Set(contentLanguageHeader, culture)
		w.Header().Add("Vary", acceptLanguageHeader)
		next.ServeHTTP(w, r.WithContext(utils.WithCulture(r.Context(), culture)))
	})
}
