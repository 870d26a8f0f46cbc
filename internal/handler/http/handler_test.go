package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-json-localization/internal/logger"
	"github.com/MKhiriev/go-json-localization/internal/mock"
	"github.com/MKhiriev/go-json-localization/internal/service"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testMocks struct {
	localization *mock.MockLocalizationService
	appInfo      *mock.MockAppInfoService
}

// newMockedHandler builds a Handler whose services are gomock mocks.
func newMockedHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testMocks{
		localization: mock.NewMockLocalizationService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		LocalizationService: m.localization,
		AppInfoService:      m.appInfo,
	}, logger.Nop())
	return h, m
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, m := newMockedHandler(t)
	m.localization.EXPECT().Match(gomock.Any()).Return("en-US").AnyTimes()
	m.localization.EXPECT().All("en-US").Return(map[string]string{}).AnyTimes()
	m.localization.EXPECT().Localize("en-US", "greeting.hello", gomock.Any()).Return("Hello", nil).AnyTimes()
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test-version").AnyTimes()

	router := h.Init()

	for _, path := range []string{"/debug-localization", "/api/messages/greeting.hello", "/api/version/"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	for _, path := range []string{"/api/version/", "/debug-localization", "/api/messages/greeting.hello"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_RecoversFromPanics(t *testing.T) {
	h, m := newMockedHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(any) string {
		panic("boom")
	})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() { router.ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
