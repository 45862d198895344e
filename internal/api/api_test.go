package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seances/internal/auth"
	"seances/internal/config"
	tokenauth "seances/pkg/auth"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Location = time.UTC
	return cfg
}

func newTestServer(cfg config.Config) http.Handler {
	return NewServer(cfg, zerolog.New(io.Discard)).Routes()
}

func do(t *testing.T, h http.Handler, method, target string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestServer(testConfig()), http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProgramme(t *testing.T) {
	h := newTestServer(testConfig())

	cases := []struct {
		name      string
		body      interface{}
		status    int
		programme string
		layout    string
	}{
		{
			name: "pattern led",
			body: map[string]interface{}{"showtimes": []map[string]string{
				{"start": "2024-01-03T14:00:00"},
				{"start": "2024-01-04T14:00:00"},
			}},
			status:    http.StatusOK,
			programme: "Mer, Jeu 14h",
			layout:    "pattern-led",
		},
		{
			name: "time led",
			body: map[string]interface{}{"showtimes": []map[string]string{
				{"start": "2024-01-03 21:00"}, {"start": "2024-01-04 21:00"}, {"start": "2024-01-05 21:00"},
				{"start": "2024-01-06 21:00"}, {"start": "2024-01-07 21:00"}, {"start": "2024-01-08 21:00"},
				{"start": "2024-01-09 21:00"}, {"start": "2024-01-06 10:15"},
			}},
			status:    http.StatusOK,
			programme: "10h15 (Sam), 21h",
			layout:    "time-led",
		},
		{
			name: "starts on tuesday",
			body: map[string]interface{}{"showtimes": []map[string]string{
				{"start": "2024-01-02T14:00:00"},
				{"start": "2024-01-03T14:00:00"},
			}},
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "empty list",
			body:   map[string]interface{}{"showtimes": []map[string]string{}},
			status: http.StatusBadRequest,
		},
		{
			name:   "bad timestamp",
			body:   map[string]interface{}{"showtimes": []map[string]string{{"start": "demain"}}},
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid body",
			body:   "{",
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/programme", tc.body, nil)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			if tc.status != http.StatusOK {
				var body map[string]string
				decode(t, rec, &body)
				assert.NotEmpty(t, body["error"])
				return
			}
			var resp programmeResponse
			decode(t, rec, &resp)
			assert.Equal(t, tc.programme, resp.Programme)
			assert.Equal(t, tc.layout, resp.Layout)
		})
	}
}

func TestProgrammeTooManyShowtimes(t *testing.T) {
	cfg := testConfig()
	cfg.MaxShowtimes = 1
	body := map[string]interface{}{"showtimes": []map[string]string{
		{"start": "2024-01-03T14:00:00"},
		{"start": "2024-01-04T14:00:00"},
	}}
	rec := do(t, newTestServer(cfg), http.MethodPost, "/programme", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "too many showtimes")
}

const cinemaBody = `{
  "id": "C0159",
  "name": "UGC Ciné Cité Les Halles",
  "address": "7 place de la Rotonde",
  "zipcode": "75001",
  "city": "Paris",
  "member_cards": [{"code": 106002, "label": "UGC Illimité"}],
  "showtimes": [
    {"start": "2024-01-03T11:00:00", "movie": {"id": 1, "title": "Dune", "runtime": 9900, "language": "Anglais", "screen_format": "IMAX"}},
    {"start": "2024-01-03T14:00:00", "movie": {"id": 1, "title": "Dune", "runtime": 9900, "language": "Anglais", "screen_format": "IMAX"}},
    {"start": "2024-01-04T14:00:00", "movie": {"id": 1, "title": "Dune", "runtime": 9900, "language": "Français"}},
    {"start": "2024-01-03T20:00:00", "end": "2024-01-03T22:05:00", "movie": {"id": 2, "title": "Amélie", "language": "Français"}},
    {"start": "2024-01-09T20:00:00", "movie": {"id": 2, "title": "Amélie", "language": "Français"}},
    {"start": "2024-01-10T20:00:00", "movie": {"id": 2, "title": "Amélie", "language": "Français"}}
  ]
}`

func TestCinemaProgramme(t *testing.T) {
	rec := do(t, newTestServer(testConfig()), http.MethodPost, "/cinemas/programme", cinemaBody, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Cinema struct {
			ID string `json:"id"`
		} `json:"cinema"`
		Programmes []movieProgramme `json:"programmes"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "C0159", resp.Cinema.ID)
	require.Len(t, resp.Programmes, 2)

	// Amélie plays from a Wednesday to the next one: more than a week.
	assert.Equal(t, "Amélie", resp.Programmes[0].Title)
	assert.Empty(t, resp.Programmes[0].Programme)
	assert.NotEmpty(t, resp.Programmes[0].Error)

	assert.Equal(t, "Dune", resp.Programmes[1].Title)
	assert.Equal(t, "2h45", resp.Programmes[1].Duration)
	assert.Equal(t, "Mer 11h; Mer, Jeu 14h", resp.Programmes[1].Programme)
	assert.Empty(t, resp.Programmes[1].Error)
}

func TestShowings(t *testing.T) {
	h := newTestServer(testConfig())

	t.Run("eligible showings of the day", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/cinemas/showings?day=2024-01-03&earliest=12:00&latest=22:00", cinemaBody, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp showingsResponse
		decode(t, rec, &resp)
		assert.False(t, resp.Skipped)
		require.Len(t, resp.Days, 1)
		day := resp.Days[0]
		assert.Equal(t, "2024-01-03", day.Day)
		assert.Equal(t, "Mercredi 3 Janvier", day.Label)

		// Amélie ends at 22:05, after the latest bound.
		require.Len(t, day.Films, 1)
		film := day.Films[0]
		assert.Equal(t, "Dune", film.Title)
		assert.Equal(t, "VOST IMAX", film.Version)
		require.Len(t, film.Showings, 1)
		assert.Equal(t, "03/01/2024 14:00", film.Showings[0].StartTime)
		assert.Equal(t, "03/01/2024 14:15", film.Showings[0].EndTime)
		assert.Contains(t, film.Showings[0].Link, "dates=20240103T140000/20240103T141500")
		assert.Contains(t, film.Showings[0].Link, "location=7%20place%20de%20la%20Rotonde")
	})

	t.Run("card not accepted", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/cinemas/showings?day=2024-01-03&card=42", cinemaBody, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp showingsResponse
		decode(t, rec, &resp)
		assert.True(t, resp.Skipped)
		assert.Empty(t, resp.Days)
	})

	t.Run("card accepted", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/cinemas/showings?day=03/01/2024&card=106002", cinemaBody, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp showingsResponse
		decode(t, rec, &resp)
		assert.False(t, resp.Skipped)
		require.Len(t, resp.Days, 1)
		assert.Len(t, resp.Days[0].Films, 2)
	})

	t.Run("bad parameters", func(t *testing.T) {
		for _, q := range []string{"day=hier", "day=+x", "earliest=9h", "day=2024-01-03&card=abc"} {
			rec := do(t, h, http.MethodPost, "/cinemas/showings?"+q, cinemaBody, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		}
	})
}

func TestAuthRequired(t *testing.T) {
	hash, err := tokenauth.HashToken("s3cret")
	require.NoError(t, err)

	cfg := testConfig()
	cfg.AuthRequired = true
	cfg.AppSecret = "app-secret"
	cfg.APITokenHash = hash
	h := newTestServer(cfg)

	body := map[string]interface{}{"showtimes": []map[string]string{{"start": "2024-01-03T14:00:00"}}}

	rec := do(t, h, http.MethodPost, "/programme", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/programme", body, map[string]string{tokenauth.TokenHeader: "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/programme", body, map[string]string{tokenauth.TokenHeader: "s3cret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/auth/token", map[string]string{"client": "grille"}, map[string]string{tokenauth.TokenHeader: "s3cret"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var tok map[string]string
	decode(t, rec, &tok)
	require.NotEmpty(t, tok["access_token"])

	claims, err := auth.NewService(cfg.AppSecret, cfg.TokenTTL).ParseToken(tok["access_token"])
	require.NoError(t, err)
	assert.Equal(t, "grille", claims.Client)

	rec = do(t, h, http.MethodPost, "/programme", body, map[string]string{"Authorization": "Bearer " + tok["access_token"]})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mer 14h")
}

func TestIssueTokenNeedsStaticToken(t *testing.T) {
	hash, err := tokenauth.HashToken("s3cret")
	require.NoError(t, err)
	cfg := testConfig()
	cfg.AppSecret = "app-secret"
	cfg.APITokenHash = hash
	h := newTestServer(cfg)

	rec := do(t, h, http.MethodPost, "/auth/token", map[string]string{"client": "grille"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/auth/token", map[string]string{"client": ""}, map[string]string{tokenauth.TokenHeader: "s3cret"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCinemaProgrammeWindowAndVersions(t *testing.T) {
	h := newTestServer(testConfig())

	var resp struct {
		Programmes []movieProgramme `json:"programmes"`
	}

	// Without Amélie's showing of the 10th, her week fits.
	rec := do(t, h, http.MethodPost, "/cinemas/programme?to=2024-01-09", cinemaBody, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &resp)
	require.Len(t, resp.Programmes, 2)
	assert.Equal(t, "Mar, Mer 20h", resp.Programmes[0].Programme)
	assert.Empty(t, resp.Programmes[0].Error)
	assert.Equal(t, []dayHours{
		{Hours: "20h", Days: []string{"2024-01-03", "2024-01-09"}},
	}, resp.Programmes[0].Days)

	rec = do(t, h, http.MethodPost, "/cinemas/programme?from=2024-01-04&versions=true", cinemaBody, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp.Programmes = nil
	decode(t, rec, &resp)
	require.Len(t, resp.Programmes, 2)
	// Amélie now starts on a Tuesday, the last day of the week.
	assert.Equal(t, "Amélie", resp.Programmes[0].Title)
	assert.Empty(t, resp.Programmes[0].Programme)
	assert.NotEmpty(t, resp.Programmes[0].Error)
	assert.Equal(t, "Dune", resp.Programmes[1].Title)
	assert.Equal(t, "VF", resp.Programmes[1].Version)
	assert.Equal(t, "Jeu 14h", resp.Programmes[1].Programme)

	rec = do(t, h, http.MethodPost, "/cinemas/programme?from=2024-01-09&to=2024-01-03", cinemaBody, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShowingsFilmDetails(t *testing.T) {
	body := `{"id": "C0013", "name": "Le Champo", "showtimes": [
	  {"start": "2024-01-03T21:00:00+01:00", "end": "2024-01-03T23:05:00+01:00",
	   "movie": {"id": 3, "title": "Playtime", "genres": ["Comédie"], "countries": ["France", "Italie"], "language": "Français"}}
	]}`
	cfg := testConfig()
	cfg.Location = time.FixedZone("CET", 3600)
	rec := do(t, newTestServer(cfg), http.MethodPost, "/cinemas/showings?day=2024-01-03", body, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp showingsResponse
	decode(t, rec, &resp)
	require.Len(t, resp.Days, 1)
	require.Len(t, resp.Days[0].Films, 1)
	film := resp.Days[0].Films[0]
	assert.Equal(t, "Comédie", film.Genres)
	assert.Equal(t, []string{"français", "italien"}, film.Nationalities)
	require.Len(t, film.Showings, 1)
	assert.Equal(t, "21:00", film.Showings[0].StartHour)
	assert.Equal(t, "23:05", film.Showings[0].EndHour)
}

func TestShowingsUTCPayloadInLocalTime(t *testing.T) {
	body := `{"id": "C0013", "name": "Le Champo", "showtimes": [
	  {"start": "2024-01-03T22:30:00Z", "movie": {"id": 3, "title": "Playtime"}},
	  {"start": "2024-01-05T00:30:00+02:00", "movie": {"id": 3, "title": "Playtime"}}
	]}`
	cfg := testConfig()
	cfg.Location = time.FixedZone("CET", 3600)
	rec := do(t, newTestServer(cfg), http.MethodPost, "/cinemas/programme", body, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"programme":"Mer, Jeu 23h30"`)
}

func TestAuthRequiredWithoutCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.AuthRequired = true
	h := newTestServer(cfg)

	body := map[string]interface{}{"showtimes": []map[string]string{{"start": "2024-01-03T14:00:00"}}}
	for _, headers := range []map[string]string{nil, {tokenauth.TokenHeader: "anything"}, {"Authorization": "Bearer x"}} {
		rec := do(t, h, http.MethodPost, "/programme", body, headers)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}
