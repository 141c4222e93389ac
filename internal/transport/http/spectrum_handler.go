package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"FiveLine/internal/calculator"
	"FiveLine/internal/collector"
	"FiveLine/internal/model"
)

type spectrumQuery struct {
	Symbol string `validate:"required,max=16,printascii,excludesall=/?#"`
	Years  int    `validate:"min=0,max=30"`
	Window int    `validate:"omitempty,min=1,max=5000"`
}

type zoneResponse struct {
	Zone      model.Zone `json:"zone"`
	Label     string     `json:"label"`
	Advice    string     `json:"advice"`
	Date      string     `json:"date"`
	Deviation float64    `json:"deviation"`
}

type spectrumResponse struct {
	Symbol      string                    `json:"symbol"`
	Source      string                    `json:"source"`
	Window      int                       `json:"window"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Zone        *zoneResponse             `json:"zone,omitempty"`
	Record      *model.PresentationRecord `json:"record"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) getSpectrum(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	q, err := parseSpectrumQuery(r)
	if err == nil {
		err = s.validate.Struct(q)
	}
	if err != nil {
		s.metrics.observe("invalid", time.Since(started).Seconds(), 0)
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	out, err := s.svc.Compute(r.Context(), collector.Request{
		Symbol: q.Symbol,
		Years:  q.Years,
		Window: q.Window,
	}, model.TriggerHTTP)
	if err != nil {
		status := statusFor(err)
		s.metrics.observe(strconv.Itoa(status), time.Since(started).Seconds(), 0)
		log.Printf("[ERROR] spectrum %s: %v", q.Symbol, err)
		s.fail(w, r, status, err)
		return
	}

	res := out.Result
	resp := spectrumResponse{
		Symbol:      res.Series.Symbol,
		Source:      res.Series.Source,
		Window:      res.Spectrum.Window,
		GeneratedAt: res.Series.FetchedAt.UTC(),
		Record:      res.Spectrum.Record,
	}
	if sig := out.Signal; sig != nil {
		resp.Zone = &zoneResponse{
			Zone:      sig.Zone,
			Label:     sig.Tier.Label,
			Advice:    sig.Tier.Advice,
			Date:      sig.Date.Format("2006-01-02"),
			Deviation: sig.Deviation,
		}
	}
	s.metrics.observe("ok", time.Since(started).Seconds(), res.Spectrum.Record.Len())
	render.JSON(w, r, resp)
}

func parseSpectrumQuery(r *http.Request) (spectrumQuery, error) {
	q := spectrumQuery{Symbol: strings.TrimSpace(chi.URLParam(r, "symbol"))}
	var err error
	if v := r.URL.Query().Get("years"); v != "" {
		if q.Years, err = strconv.Atoi(v); err != nil {
			return q, errors.New("years must be an integer")
		}
	}
	if v := r.URL.Query().Get("window"); v != "" {
		if q.Window, err = strconv.Atoi(v); err != nil {
			return q, errors.New("window must be an integer")
		}
	}
	return q, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, calculator.ErrInvalidWindow):
		return http.StatusBadRequest
	case errors.Is(err, collector.ErrNoData):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{
		Error:     err.Error(),
		RequestID: middleware.GetReqID(r.Context()),
	})
}
