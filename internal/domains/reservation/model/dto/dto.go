package dto

import (
	"net/http"
	"strings"
	"time"

	clientModel "hotel/internal/domains/client/model"
	"hotel/internal/domains/pricing"
	"hotel/internal/domains/reservation/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// amounts are stored as NUMERIC(12, 2)
	amountScale = 2

	QueryClientID = "client_id"
	QueryRoomID   = "room_id"
	QueryStatus   = "status"
)

var SortableFields = []string{
	model.FieldStartDate, model.FieldEndDate, model.FieldReservedAt, model.FieldTotalAmount, model.FieldStatus,
}

// ParseStay reads a YYYY-MM-DD date pair. Both dates are taken at midnight UTC so a stay
// is always a whole number of days long.
func ParseStay(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(constant.DateOnlyFormat, start)
	if err != nil {
		return time.Time{}, time.Time{}, err //nolint:wrapcheck
	}

	endDate, err := time.Parse(constant.DateOnlyFormat, end)
	if err != nil {
		return time.Time{}, time.Time{}, err //nolint:wrapcheck
	}

	return startDate, endDate, nil
}

type QuoteRequest struct {
	RoomID    string `json:"room_id"    validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

type QuoteResponse struct {
	RoomID        string  `json:"room_id"`
	Rate          float64 `json:"rate"`
	LoyaltyPoints int     `json:"loyalty_points"`
	pricing.Quote
}

type BookRequest struct {
	RoomID          string  `json:"room_id"          validate:"required,uuid"`
	StartDate       string  `json:"start_date"       validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date"         validate:"required,datetime=2006-01-02"`
	PartySize       int     `json:"party_size"       validate:"required,gt=0"`
	SpecialRequests *string `json:"special_requests" validate:"omitempty,max=1000"`
}

// ToModel builds a confirmed reservation priced by quote.
func (b *BookRequest) ToModel(clientID string, start, end time.Time, quote pricing.Quote, user string) model.Reservation {
	now := timezone.Now()

	return model.Reservation{
		ID:              uuid.NewString(),
		ClientID:        clientID,
		RoomID:          b.RoomID,
		StartDate:       start,
		EndDate:         end,
		PartySize:       b.PartySize,
		TotalAmount:     roundAmount(quote.Total),
		DiscountApplied: roundAmount(quote.DiscountAmount),
		PointsEarned:    quote.PointsEarned,
		ReservedAt:      now,
		SpecialRequests: b.SpecialRequests,
		Status:          model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func roundAmount(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(amountScale).InexactFloat64()
}

type CreateReservationRequest struct {
	ClientID        string  `json:"client_id"        validate:"required,uuid"`
	RoomID          string  `json:"room_id"          validate:"required,uuid"`
	StartDate       string  `json:"start_date"       validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date"         validate:"required,datetime=2006-01-02"`
	PartySize       int     `json:"party_size"       validate:"required,gt=0"`
	TotalAmount     float64 `json:"total_amount"     validate:"gte=0"`
	DiscountApplied float64 `json:"discount_applied" validate:"gte=0"`
	PointsEarned    int     `json:"points_earned"    validate:"gte=0"`
	SpecialRequests *string `json:"special_requests" validate:"omitempty,max=1000"`
	Status          string  `json:"status"           validate:"omitempty,oneof=pending confirmed cancelled"`
}

func (c *CreateReservationRequest) ToModel(user string) (model.Reservation, error) {
	start, end, err := ParseStay(c.StartDate, c.EndDate)
	if err != nil {
		return model.Reservation{}, err
	}

	status := model.StatusConfirmed
	if c.Status != constant.Empty {
		status = c.Status
	}

	now := timezone.Now()

	return model.Reservation{
		ID:              uuid.NewString(),
		ClientID:        c.ClientID,
		RoomID:          c.RoomID,
		StartDate:       start,
		EndDate:         end,
		PartySize:       c.PartySize,
		TotalAmount:     roundAmount(c.TotalAmount),
		DiscountApplied: roundAmount(c.DiscountApplied),
		PointsEarned:    c.PointsEarned,
		ReservedAt:      now,
		SpecialRequests: c.SpecialRequests,
		Status:          status,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateReservationRequest struct {
	StartDate       *string  `db:"start_date"       json:"start_date"       validate:"omitempty,datetime=2006-01-02"`
	EndDate         *string  `db:"end_date"         json:"end_date"         validate:"omitempty,datetime=2006-01-02"`
	PartySize       *int     `db:"party_size"       json:"party_size"       validate:"omitempty,gt=0"`
	TotalAmount     *float64 `db:"total_amount"     json:"total_amount"     validate:"omitempty,gte=0"`
	DiscountApplied *float64 `db:"discount_applied" json:"discount_applied" validate:"omitempty,gte=0"`
	PointsEarned    *int     `db:"points_earned"    json:"points_earned"    validate:"omitempty,gte=0"`
	SpecialRequests *string  `db:"special_requests" json:"special_requests" validate:"omitempty,max=1000"`
	Status          *string  `db:"status"           json:"status"           validate:"omitempty,oneof=pending confirmed cancelled"`
}

type ReservationResponse struct {
	ID              string  `json:"id"`
	ClientID        string  `json:"client_id"`
	ClientName      *string `json:"client_name,omitempty"`
	RoomID          string  `json:"room_id"`
	RoomNumber      *string `json:"room_number,omitempty"`
	RoomType        *string `json:"room_type,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Nights          int     `json:"nights"`
	PartySize       int     `json:"party_size"`
	TotalAmount     float64 `json:"total_amount"`
	DiscountApplied float64 `json:"discount_applied"`
	PointsEarned    int     `json:"points_earned"`
	ReservedAt      string  `json:"reserved_at"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	Status          string  `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.ClientID = model.ClientID
	r.ClientName = model.ClientName
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.Nights = pricing.Nights(model.StartDate, model.EndDate)
	r.PartySize = model.PartySize
	r.TotalAmount = model.TotalAmount
	r.DiscountApplied = model.DiscountApplied
	r.PointsEarned = model.PointsEarned
	r.ReservedAt = timezone.Format(model.ReservedAt, constant.DateFormat)
	r.SpecialRequests = model.SpecialRequests
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ConfirmedEvent is the message published for every committed booking.
type ConfirmedEvent struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	ClientID      string    `json:"client_id"`
	RoomID        string    `json:"room_id"`
	UserID        string    `json:"user_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TotalAmount   float64   `json:"total_amount"`
	PointsEarned  int       `json:"points_earned"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (e *ConfirmedEvent) FromModel(reservation model.Reservation, userID string) {
	e.Type = model.EventConfirmed
	e.ReservationID = reservation.ID
	e.ClientID = reservation.ClientID
	e.RoomID = reservation.RoomID
	e.UserID = userID
	e.StartDate = reservation.StartDate.Format(constant.DateOnlyFormat)
	e.EndDate = reservation.EndDate.Format(constant.DateOnlyFormat)
	e.TotalAmount = reservation.TotalAmount
	e.PointsEarned = reservation.PointsEarned
	e.OccurredAt = reservation.ReservedAt
}

type ReservationFilter struct {
	ClientID string `validate:"omitempty,uuid"`
	RoomID   string `validate:"omitempty,uuid"`
	Status   string `validate:"omitempty,oneof=pending confirmed cancelled"`
	Search   string `validate:"omitempty,max=100"`
}

func (f *ReservationFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.ClientID = strings.TrimSpace(query.Get(QueryClientID))
	f.RoomID = strings.TrimSpace(query.Get(QueryRoomID))
	f.Status = strings.TrimSpace(query.Get(QueryStatus))
	f.Search = strings.TrimSpace(query.Get(constant.RequestParamSearch))
}

func (f *ReservationFilter) ToFilterGroup() gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if f.ClientID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldClientID,
			Operator: gDto.FilterOperatorEq,
			Value:    f.ClientID,
			Table:    model.TableName,
		})
	}

	if f.RoomID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    f.RoomID,
			Table:    model.TableName,
		})
	}

	if f.Status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    f.Status,
			Table:    model.TableName,
		})
	}

	if f.Search != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  "search_client",
					Field:    clientModel.FieldName,
					Operator: gDto.FilterOperatorLike,
					Value:    f.Search,
					Table:    clientModel.TableName,
				},
				gDto.Filter{
					ArgName:  "search_room",
					Field:    roomModel.FieldNumber,
					Operator: gDto.FilterOperatorLike,
					Value:    f.Search,
					Table:    roomModel.TableName,
				},
			},
		})
	}

	return filterGroup
}
