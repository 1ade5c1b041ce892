package model

import "hotel/shared/model"

const (
	TableName  = "clients"
	EntityName = "client"

	CachePrefix = "client:"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldName          = "name"
	FieldLoyaltyPoints = "loyalty_points"
)

type Client struct {
	ID            string  `db:"id"`
	UserID        *string `db:"user_id"`
	Name          string  `db:"name"`
	LoyaltyPoints int     `db:"loyalty_points"`
	model.Metadata
}
