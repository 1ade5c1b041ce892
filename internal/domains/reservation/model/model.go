package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	CachePrefix = "reservation:"

	FieldID              = "id"
	FieldClientID        = "client_id"
	FieldRoomID          = "room_id"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldPartySize       = "party_size"
	FieldTotalAmount     = "total_amount"
	FieldDiscountApplied = "discount_applied"
	FieldPointsEarned    = "points_earned"
	FieldReservedAt      = "reserved_at"
	FieldSpecialRequests = "special_requests"
	FieldStatus          = "status"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	// EventConfirmed is the type of the message published once a booking commits.
	EventConfirmed = "reservation.confirmed"
)

type Reservation struct {
	ID              string    `db:"id"`
	ClientID        string    `db:"client_id"`
	RoomID          string    `db:"room_id"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	PartySize       int       `db:"party_size"`
	TotalAmount     float64   `db:"total_amount"`
	DiscountApplied float64   `db:"discount_applied"`
	PointsEarned    int       `db:"points_earned"`
	ReservedAt      time.Time `db:"reserved_at"`
	SpecialRequests *string   `db:"special_requests"`
	Status          string    `db:"status"`
	ClientName      *string   `column:"name"   db:"client_name" table:"clients"`
	RoomNumber      *string   `column:"number" db:"room_number" table:"rooms"`
	RoomType        *string   `column:"type"   db:"room_type"   table:"rooms"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return "LEFT JOIN clients ON clients.id = reservations.client_id LEFT JOIN rooms ON rooms.id = reservations.room_id"
}
