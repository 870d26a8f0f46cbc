package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-json-localization/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrMessageNotFound: http.StatusNotFound,
	service.ErrRenderMessage:   http.StatusInternalServerError,
	service.ErrInvalidCulture:  http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
