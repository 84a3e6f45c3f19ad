package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"railbook/internal/booking/domain"
	"railbook/internal/booking/handler/mocks"
	"railbook/internal/platform/middleware"
	dErrors "railbook/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/booking-mocks.go -package=mocks Service

type HandlerSuite struct {
	suite.Suite
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	New(mockService, logger, nil).Register(r)
	return r, mockService
}

// do sends a request carrying an established session cookie.
func do(router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "sess-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (s *HandlerSuite) TestSetOriginSuccess() {
	router, mockService := newTestRouter(s.T())

	origin := domain.MustLocation("Amsterdam Centraal")
	draft, err := domain.Draft{}.WithOrigin(origin)
	require.NoError(s.T(), err)
	mockService.EXPECT().SetOrigin(gomock.Any(), "sess-1", origin).Return(draft, nil)

	w := do(router, http.MethodPost, "/origin", `"Amsterdam Centraal"`)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "Amsterdam Centraal", resp["origin"])
	assert.Nil(s.T(), resp["destination"])
	assert.Nil(s.T(), resp["payment_info"])
}

func (s *HandlerSuite) TestSetOriginRejectsUnknownStation() {
	router, _ := newTestRouter(s.T())

	w := do(router, http.MethodPost, "/origin", `"Atlantis Centraal"`)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "validation", resp["error"])
	assert.Contains(s.T(), resp["message"], "origin")
	assert.NotContains(s.T(), resp["message"], "Atlantis")
}

func (s *HandlerSuite) TestOrderingErrorMapsToConflict() {
	router, mockService := newTestRouter(s.T())

	mockService.EXPECT().SetClass(gomock.Any(), "sess-1", domain.ClassFirst).
		Return(domain.Draft{}, dErrors.New(dErrors.CodeOrdering, "set trip before class"))

	w := do(router, http.MethodPost, "/class", `"first"`)

	assert.Equal(s.T(), http.StatusConflict, w.Code)
	var resp map[string]string
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "ordering", resp["error"])
	assert.Contains(s.T(), resp["message"], "trip")
}

func (s *HandlerSuite) TestSessionCookieIssuedWhenAbsent() {
	router, mockService := newTestRouter(s.T())

	mockService.EXPECT().SetOrigin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Draft{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/origin", strings.NewReader(`"Paris Nord"`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == middleware.SessionCookie && cookie.Value != "" {
			found = true
		}
	}
	assert.True(s.T(), found, "expected a session cookie to be issued")
}

func (s *HandlerSuite) TestListTrips() {
	router, mockService := newTestRouter(s.T())

	trips := domain.ListTrips(
		domain.MustLocation("Amsterdam Centraal"),
		domain.MustLocation("Paris Nord"),
		domain.NewDeparture(domain.MustFutureTimestamp(timeIn30Minutes())),
		timeNow(),
	)
	mockService.EXPECT().ListTrips(gomock.Any(), "sess-1").Return(trips, nil)

	w := do(router, http.MethodGet, "/trips", "")

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var resp []map[string]any
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(s.T(), resp, len(trips))
	assert.Equal(s.T(), trips[0].ID.String(), resp[0]["id"])
}

func (s *HandlerSuite) TestBookTripRedactsPayment() {
	router, mockService := newTestRouter(s.T())

	finalized := fullDraft(s.T())
	mockService.EXPECT().Finalize(gomock.Any(), "sess-1", domain.NewPaymentInfo("tok_super_secret")).
		Return(finalized, nil)

	w := do(router, http.MethodPost, "/book_trip", `"tok_super_secret"`)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(s.T(), body, "tok_super_secret")
	assert.Contains(s.T(), body, domain.Redacted)
}

func (s *HandlerSuite) TestBookingErrorMapsToBadGateway() {
	router, mockService := newTestRouter(s.T())

	mockService.EXPECT().Finalize(gomock.Any(), "sess-1", gomock.Any()).
		Return(domain.Draft{}, dErrors.New(dErrors.CodeBooking, "booking confirmation failed, retry finalize"))

	w := do(router, http.MethodPost, "/book_trip", `"tok_1"`)

	assert.Equal(s.T(), http.StatusBadGateway, w.Code)
	var resp map[string]string
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "booking", resp["error"])
}

func (s *HandlerSuite) TestRejectsNonJSONBody() {
	router, _ := newTestRouter(s.T())

	req := httptest.NewRequest(http.MethodPost, "/origin", strings.NewReader("origin=Amsterdam"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "sess-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusUnsupportedMediaType, w.Code)
}
