package dto

type LocationResponse struct {
	ID          string    `json:"id"`
	Coordinates []float64 `json:"coordinates"`
	Demand      int       `json:"demand"`
	IsDepot     bool      `json:"is_depot"`
}

type ListLocationsResponse struct {
	Depot       string             `json:"depot"`
	TotalDemand int                `json:"total_demand"`
	Locations   []LocationResponse `json:"locations"`
}
