package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"seances/internal/showtimes"
	"seances/internal/weekly"
)

func (s *Server) handleIssueToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Client string `json:"client"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid body")
			return
		}
		token, err := s.auth.GenerateToken(req.Client)
		if err != nil {
			errorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
	}
}

type programmeResponse struct {
	Programme string `json:"programme"`
	Layout    string `json:"layout"`
}

func (s *Server) handleProgramme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Showtimes []showtimes.ScheduleInput `json:"showtimes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid body")
			return
		}
		if len(req.Showtimes) > s.cfg.MaxShowtimes {
			errorJSON(w, http.StatusBadRequest, fmt.Sprintf("too many showtimes (max %d)", s.cfg.MaxShowtimes))
			return
		}
		schedules, err := showtimes.Schedules(req.Showtimes, s.cfg.Location)
		if err != nil {
			errorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		layout, err := s.compactor.Group(schedules)
		if err != nil {
			s.log.Debug().Err(err).Int("showtimes", len(schedules)).Msg("programme rejected")
			errorJSON(w, statusFor(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, programmeResponse{
			Programme: layout.String(),
			Layout:    layoutName(layout.Mode),
		})
	}
}

func layoutName(m weekly.LayoutMode) string {
	if m == weekly.TimeLed {
		return "time-led"
	}
	return "pattern-led"
}

type movieProgramme struct {
	MovieID   int        `json:"movie_id"`
	Title     string     `json:"title"`
	Version   string     `json:"version,omitempty"`
	Duration  string     `json:"duration"`
	Programme string     `json:"programme"`
	Days      []dayHours `json:"days"`
	Error     string     `json:"error,omitempty"`
}

// dayHours lists the days sharing exactly the same hours.
type dayHours struct {
	Hours string   `json:"hours"`
	Days  []string `json:"days"`
}

func toDayHours(groups []showtimes.DayGroup) []dayHours {
	out := make([]dayHours, 0, len(groups))
	for _, g := range groups {
		days := make([]string, 0, len(g.Days))
		for _, d := range g.Days {
			days = append(days, d.Format("2006-01-02"))
		}
		out = append(out, dayHours{Hours: g.Hours, Days: days})
	}
	return out
}

type cinemaProgrammeResponse struct {
	Cinema     *showtimes.Cinema `json:"cinema"`
	Programmes []movieProgramme  `json:"programmes"`
}

func (s *Server) decodeCinema(w http.ResponseWriter, r *http.Request) (*showtimes.Cinema, bool) {
	var in showtimes.CinemaInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid body")
		return nil, false
	}
	if len(in.Showtimes) > s.cfg.MaxShowtimes {
		errorJSON(w, http.StatusBadRequest, fmt.Sprintf("too many showtimes (max %d)", s.cfg.MaxShowtimes))
		return nil, false
	}
	cinema, err := in.Cinema(s.cfg.Location)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return cinema, true
}

// handleCinemaProgramme compacts the week of each movie of a cinema.
// Query: from/to=YYYY-MM-DD keep a date window, versions=true compacts
// each language and screen format apart.
func (s *Server) handleCinemaProgramme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, to, err := showtimes.ParseWindow(q.Get("from"), q.Get("to"), s.cfg.Location)
		if err != nil {
			errorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		cinema, ok := s.decodeCinema(w, r)
		if !ok {
			return
		}
		cinema.Filter(from, to)

		var programs []showtimes.MovieProgram
		if parseBoolParam(q.Get("versions")) {
			programs = cinema.ProgramPerVersion(s.compactor)
		} else {
			programs = cinema.ProgramPerMovie(s.compactor)
		}
		out := make([]movieProgramme, 0, len(programs))
		for _, p := range programs {
			mp := movieProgramme{
				MovieID:   p.Movie.ID,
				Title:     p.Movie.Title,
				Version:   p.Version,
				Duration:  p.Movie.DurationShort(),
				Programme: p.Program,
				Days:      toDayHours(p.Days),
			}
			if p.Err != nil {
				s.log.Warn().Err(p.Err).Str("cinema", cinema.ID).Int("movie", p.Movie.ID).Msg("programme not compacted")
				mp.Error = p.Err.Error()
			}
			out = append(out, mp)
		}
		writeJSON(w, http.StatusOK, cinemaProgrammeResponse{Cinema: cinema, Programmes: out})
	}
}

type showingsResponse struct {
	Cinema  *showtimes.Cinema       `json:"cinema"`
	Skipped bool                    `json:"skipped,omitempty"`
	Days    []showtimes.DayShowings `json:"days"`
}

// handleShowings lists the eligible showings of a cinema per day.
// Query: day=YYYY-MM-DD or +N (default today), week=true for 7 days,
// earliest/latest=HH:MM, card=<member card code>.
func (s *Server) handleShowings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		days, err := showtimes.ResolveDays(q.Get("day"), parseBoolParam(q.Get("week")), time.Now().In(s.cfg.Location))
		if err != nil {
			errorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		eligibility, err := showtimes.NewEligibility(q.Get("earliest"), q.Get("latest"))
		if err != nil {
			errorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		cinema, ok := s.decodeCinema(w, r)
		if !ok {
			return
		}
		if raw := strings.TrimSpace(q.Get("card")); raw != "" {
			code, err := strconv.Atoi(raw)
			if err != nil {
				errorJSON(w, http.StatusBadRequest, "invalid card")
				return
			}
			if !cinema.AcceptsCard(code) {
				s.log.Debug().Str("cinema", cinema.ID).Int("card", code).Msg("cinema skipped, card not accepted")
				writeJSON(w, http.StatusOK, showingsResponse{Cinema: cinema, Skipped: true, Days: []showtimes.DayShowings{}})
				return
			}
		}
		writeJSON(w, http.StatusOK, showingsResponse{Cinema: cinema, Days: showtimes.CollectShowings(cinema, days, eligibility)})
	}
}

func parseBoolParam(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
