package dto

type StatsResponse struct {
	Clients          int     `json:"clients"`
	Rooms            int     `json:"rooms"`
	AvailableRooms   int     `json:"available_rooms"`
	Reservations     int     `json:"reservations"`
	ConfirmedRevenue float64 `json:"confirmed_revenue"`
}
