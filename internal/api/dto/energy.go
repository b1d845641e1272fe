package dto

// EnergyRequest carries either a single tour or a list of subroutes.
type EnergyRequest struct {
	Tour              []string   `json:"tour"`
	Subroutes         [][]string `json:"subroutes"`
	InitialPayload    *int       `json:"initial_payload"`
	FlightVelocityKmh *float64   `json:"flight_velocity_kmh"`
	LookupMode        string     `json:"lookup_mode"`
}

type EnergyResponse struct {
	TotalEnergyWh int             `json:"total_energy_wh"`
	Traces        []TraceResponse `json:"traces"`
}
