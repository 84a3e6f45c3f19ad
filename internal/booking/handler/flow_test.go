package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"railbook/internal/booking"
	"railbook/internal/booking/confirm"
	"railbook/internal/booking/domain"
)

func timeNow() time.Time {
	return time.Now()
}

func timeIn30Minutes() time.Time {
	return time.Now().Add(30 * time.Minute)
}

func fullDraft(t *testing.T) domain.Draft {
	t.Helper()
	draft, err := domain.Draft{}.WithOrigin(domain.MustLocation("Amsterdam Centraal"))
	require.NoError(t, err)
	draft, err = draft.WithDestination(domain.MustLocation("Paris Nord"))
	require.NoError(t, err)
	draft, err = draft.WithTime(domain.NewDeparture(domain.MustFutureTimestamp(timeIn30Minutes())))
	require.NoError(t, err)
	draft, err = draft.WithTrip(domain.NewTripID())
	require.NoError(t, err)
	draft, err = draft.WithClass(domain.ClassFirst)
	require.NoError(t, err)
	draft, err = draft.WithName(domain.MustName("j"))
	require.NoError(t, err)
	draft, err = draft.WithEmail(domain.MustEmail("j@example.com"))
	require.NoError(t, err)
	draft, err = draft.WithPhoneNumber(domain.MustPhoneNumber("123-456"))
	require.NoError(t, err)
	draft, err = draft.WithPaymentInfo(domain.NewPaymentInfo("tok_1"))
	require.NoError(t, err)
	return draft
}

// FlowSuite drives the real service and in-memory store through the mounted
// router, the way a browser would: one cookie jar, one field per request.
type FlowSuite struct {
	suite.Suite

	server *httptest.Server
	client *http.Client
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowSuite))
}

func (s *FlowSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := booking.NewService(booking.NewInMemoryStore(), confirm.NewLogPublisher(logger), logger, nil)

	r := chi.NewRouter()
	New(service, logger, nil).Register(r)
	s.server = httptest.NewServer(r)

	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	s.client = &http.Client{Jar: jar}
}

func (s *FlowSuite) TearDownTest() {
	s.server.Close()
}

func (s *FlowSuite) post(path, body string) (*http.Response, []byte) {
	resp, err := s.client.Post(s.server.URL+path, "application/json", strings.NewReader(body))
	s.Require().NoError(err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, payload
}

func (s *FlowSuite) get(path string) (*http.Response, []byte) {
	resp, err := s.client.Get(s.server.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, payload
}

func (s *FlowSuite) TestHappyPathBooksATrip() {
	resp, body := s.post("/origin", `"Amsterdam Centraal"`)
	s.Equal(http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.post("/destination", `"Paris Nord"`)
	s.Equal(http.StatusOK, resp.StatusCode, string(body))

	departure := time.Now().Add(45 * time.Minute).UTC().Format(time.RFC3339)
	resp, body = s.post("/departure", fmt.Sprintf("%q", departure))
	s.Equal(http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.get("/trips")
	s.Equal(http.StatusOK, resp.StatusCode, string(body))
	var trips []struct {
		ID          string `json:"id"`
		Origin      string `json:"origin"`
		Destination string `json:"destination"`
	}
	s.Require().NoError(json.Unmarshal(body, &trips))
	s.Require().Len(trips, 10)
	s.Equal("Amsterdam Centraal", trips[0].Origin)
	s.Equal("Paris Nord", trips[0].Destination)

	resp, body = s.post("/trip", fmt.Sprintf("%q", trips[2].ID))
	s.Equal(http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.post("/class", `"second"`)
	s.Equal(http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.post("/name", `"q"`)
	s.Equal(http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.post("/email", `"q@example.com"`)
	s.Equal(http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.post("/phone_number", `"555-010"`)
	s.Equal(http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.post("/book_trip", `"tok_flow_secret"`)
	s.Equal(http.StatusOK, resp.StatusCode, string(body))

	var final map[string]any
	s.Require().NoError(json.Unmarshal(body, &final))
	s.Equal(trips[2].ID, final["trip"])
	s.Equal(domain.Redacted, final["payment_info"])
	s.NotContains(string(body), "tok_flow_secret")
}

func (s *FlowSuite) TestOutOfOrderFieldIsRejectedWithoutMutation() {
	resp, body := s.post("/origin", `"Berlin Hbf"`)
	s.Equal(http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.post("/class", `"first"`)
	s.Equal(http.StatusConflict, resp.StatusCode, string(body))
	var rejection map[string]string
	s.Require().NoError(json.Unmarshal(body, &rejection))
	s.Equal("ordering", rejection["error"])

	resp, body = s.get("/draft")
	s.Equal(http.StatusOK, resp.StatusCode, string(body))
	var draft map[string]any
	s.Require().NoError(json.Unmarshal(body, &draft))
	s.Equal("Berlin Hbf", draft["origin"])
	s.Nil(draft["class"])
}

func (s *FlowSuite) TestTripsRequireRouteAndTime() {
	resp, body := s.post("/origin", `"London Waterloo"`)
	s.Equal(http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.get("/trips")
	s.Equal(http.StatusConflict, resp.StatusCode, string(body))
	var rejection map[string]string
	s.Require().NoError(json.Unmarshal(body, &rejection))
	s.Contains(rejection["message"], "destination")
}

func (s *FlowSuite) TestSessionsAreIsolated() {
	resp, body := s.post("/origin", `"Amsterdam Centraal"`)
	s.Equal(http.StatusOK, resp.StatusCode, string(body))

	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	other := &http.Client{Jar: jar}
	otherResp, err := other.Get(s.server.URL + "/draft")
	s.Require().NoError(err)
	defer otherResp.Body.Close()
	payload, err := io.ReadAll(otherResp.Body)
	s.Require().NoError(err)

	s.Equal(http.StatusOK, otherResp.StatusCode)
	var draft map[string]any
	s.Require().NoError(json.Unmarshal(payload, &draft))
	s.Nil(draft["origin"])
}
