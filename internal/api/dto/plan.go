package dto

// Pointer fields distinguish "not sent" from an explicit zero.
type PlanRequest struct {
	InitialPayload         *int     `json:"initial_payload"`
	FlightVelocityKmh      *float64 `json:"flight_velocity_kmh"`
	LookupMode             string   `json:"lookup_mode"`
	Recharge               *bool    `json:"recharge"`
	MinStopsBeforeRecharge int      `json:"min_stops_before_recharge"`
	ForbiddenPredecessors  []string `json:"forbidden_predecessors"`
	IncludeReport          bool     `json:"include_report"`
}

type LegResponse struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	PayloadUnits int     `json:"payload_units"`
	PayloadKg    float64 `json:"payload_kg"`
	DistanceKm   float64 `json:"distance_km"`
	FlightHours  float64 `json:"flight_hours"`
	CurrentA     float64 `json:"current_a"`
	ChargeAh     float64 `json:"charge_ah"`
	TableMiss    bool    `json:"table_miss,omitempty"`
}

type TraceResponse struct {
	Tour            []string      `json:"tour"`
	InitialPayload  int           `json:"initial_payload"`
	Payload         []int         `json:"payload"`
	Legs            []LegResponse `json:"legs"`
	TotalDistanceKm float64       `json:"total_distance_km"`
	TotalChargeAh   float64       `json:"total_charge_ah"`
	TotalEnergyWh   int           `json:"total_energy_wh"`
	TableMisses     int           `json:"table_misses"`
}

type PlanResponse struct {
	PlanID           string          `json:"plan_id"`
	Depot            string          `json:"depot"`
	Tour             []string        `json:"tour"`
	HasRecharge      bool            `json:"has_recharge"`
	RechargeIndex    *int            `json:"recharge_index,omitempty"`
	TotalDistanceKm  float64         `json:"total_distance_km"`
	PhaseDistanceKm  [2]float64      `json:"phase_distance_km"`
	Energy           TraceResponse   `json:"energy"`
	SubTours         []TraceResponse `json:"sub_tours"`
	SubToursEnergyWh int             `json:"sub_tours_energy_wh"`
	Report           string          `json:"report,omitempty"`
}
