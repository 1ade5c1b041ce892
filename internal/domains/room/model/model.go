package model

import (
	"hotel/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	// CachePrefix groups every cached room read so writes anywhere can drop them at once.
	CachePrefix = "room:"

	FieldID             = "id"
	FieldNumber         = "number"
	FieldType           = "type"
	FieldCapacity       = "capacity"
	FieldView           = "view"
	FieldFloor          = "floor"
	FieldRate           = "rate"
	FieldDescription    = "description"
	FieldPointsPerNight = "points_per_night"
	FieldAvailable      = "available"
	FieldAmenities      = "amenities"
	FieldPhotos         = "photos"
)

type Room struct {
	ID             string         `db:"id"`
	Number         string         `db:"number"`
	Type           string         `db:"type"`
	Capacity       int            `db:"capacity"`
	View           string         `db:"view"`
	Floor          int            `db:"floor"`
	Rate           float64        `db:"rate"`
	Description    string         `db:"description"`
	PointsPerNight int            `db:"points_per_night"`
	Available      bool           `db:"available"`
	Amenities      pq.StringArray `db:"amenities"`
	Photos         pq.StringArray `db:"photos"`
	model.Metadata
}
