package handlers

import (
	"context"
	"drone-route-service/internal/api/dto"
	"drone-route-service/internal/domain"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

// Defaults fill request fields the client leaves out. A zero InitialPayload
// means each tour carries its own total demand; a value sent by the client is
// always used as is.
type Defaults struct {
	InitialPayload    int
	FlightVelocityKmh float64
	LookupMode        domain.LookupMode
	Workers           int
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeBody decodes exactly one JSON object and rejects unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// writeServiceError maps service errors onto HTTP statuses. Input problems are
// echoed back; anything else is logged and hidden.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidConfig),
		errors.Is(err, domain.ErrUnknownLocation),
		errors.Is(err, domain.ErrOutOfTable):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInfeasible):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, http.StatusServiceUnavailable, "request canceled")
	default:
		log.Printf("%s failed: %v", op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func toTraceResponse(tr *domain.EnergyTrace) dto.TraceResponse {
	res := dto.TraceResponse{
		Tour:            append([]string(nil), tr.Tour...),
		InitialPayload:  tr.InitialPayload,
		Payload:         tr.Payload,
		Legs:            make([]dto.LegResponse, 0, len(tr.Legs)),
		TotalDistanceKm: tr.TotalDistanceKm,
		TotalChargeAh:   tr.TotalChargeAh,
		TotalEnergyWh:   tr.TotalEnergyWh,
		TableMisses:     tr.Misses(),
	}
	for _, l := range tr.Legs {
		res.Legs = append(res.Legs, dto.LegResponse{
			From:         l.From,
			To:           l.To,
			PayloadUnits: l.PayloadUnits,
			PayloadKg:    l.PayloadKg,
			DistanceKm:   l.DistanceKm,
			FlightHours:  l.FlightHours,
			CurrentA:     l.CurrentA,
			ChargeAh:     l.ChargeAh,
			TableMiss:    l.TableMiss,
		})
	}
	return res
}

// lookupMode resolves a request override against the default.
func (d Defaults) lookupMode(raw string) (domain.LookupMode, error) {
	if raw == "" {
		return d.LookupMode, nil
	}
	return domain.ParseLookupMode(raw)
}
