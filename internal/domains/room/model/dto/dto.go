package dto

import (
	"mime/multipart"
	"net/http"
	"strings"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	QueryType      = "type"
	QueryView      = "view"
	QueryGuests    = "guests"
	QueryMinRate   = "min_rate"
	QueryMaxRate   = "max_rate"
	QueryAvailable = "available"
)

// SortableFields are the columns a catalog listing may be ordered by.
var SortableFields = []string{model.FieldNumber, model.FieldRate, model.FieldCapacity, model.FieldFloor}

type CreateRoomRequest struct {
	Number         string   `json:"number"           validate:"required,max=20"`
	Type           string   `json:"type"             validate:"required,max=50"`
	Capacity       int      `json:"capacity"         validate:"required,gt=0"`
	View           string   `json:"view"             validate:"omitempty,max=50"`
	Floor          int      `json:"floor"            validate:"gte=0"`
	Rate           float64  `json:"rate"             validate:"gte=0"`
	Description    string   `json:"description"      validate:"omitempty,max=2000"`
	PointsPerNight int      `json:"points_per_night" validate:"gte=0"`
	Available      *bool    `json:"available"`
	Amenities      []string `json:"amenities"        validate:"omitempty,dive,required,max=50"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	amenities := pq.StringArray{}
	if c.Amenities != nil {
		amenities = c.Amenities
	}

	return model.Room{
		ID:             uuid.NewString(),
		Number:         strings.TrimSpace(c.Number),
		Type:           c.Type,
		Capacity:       c.Capacity,
		View:           c.View,
		Floor:          c.Floor,
		Rate:           c.Rate,
		Description:    c.Description,
		PointsPerNight: c.PointsPerNight,
		Available:      available,
		Amenities:      amenities,
		Photos:         pq.StringArray{},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number         *string        `db:"number"           json:"number"           validate:"omitempty,min=1,max=20"`
	Type           *string        `db:"type"             json:"type"             validate:"omitempty,min=1,max=50"`
	Capacity       *int           `db:"capacity"         json:"capacity"         validate:"omitempty,gt=0"`
	View           *string        `db:"view"             json:"view"             validate:"omitempty,max=50"`
	Floor          *int           `db:"floor"            json:"floor"            validate:"omitempty,gte=0"`
	Rate           *float64       `db:"rate"             json:"rate"             validate:"omitempty,gte=0"`
	Description    *string        `db:"description"      json:"description"      validate:"omitempty,max=2000"`
	PointsPerNight *int           `db:"points_per_night" json:"points_per_night" validate:"omitempty,gte=0"`
	Available      *bool          `db:"available"        json:"available"`
	Amenities      pq.StringArray `db:"amenities"        json:"amenities"        validate:"omitempty,dive,required,max=50"`
}

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	PhotoFile multipart.File        `json:"-"`
}

type DeletePhotoRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type PhotoResponse struct {
	URL string `json:"url"`
}

type RoomResponse struct {
	ID             string   `json:"id"`
	Number         string   `json:"number"`
	Type           string   `json:"type"`
	Capacity       int      `json:"capacity"`
	View           string   `json:"view"`
	Floor          int      `json:"floor"`
	Rate           float64  `json:"rate"`
	Description    string   `json:"description"`
	PointsPerNight int      `json:"points_per_night"`
	Available      bool     `json:"available"`
	Amenities      []string `json:"amenities"`
	Photos         []string `json:"photos"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Capacity = model.Capacity
	r.View = model.View
	r.Floor = model.Floor
	r.Rate = model.Rate
	r.Description = model.Description
	r.PointsPerNight = model.PointsPerNight
	r.Available = model.Available
	r.Amenities = nonNil(model.Amenities)
	r.Photos = nonNil(model.Photos)
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// RoomFilter holds the catalog filters accepted on the listing endpoint.
type RoomFilter struct {
	Type      string   `validate:"omitempty,max=50"`
	View      string   `validate:"omitempty,max=50"`
	Guests    int      `validate:"gte=0"`
	MinRate   *float64 `validate:"omitempty,gte=0"`
	MaxRate   *float64 `validate:"omitempty,gte=0"`
	Available *bool
	Search    string `validate:"omitempty,max=100"`
}

func (f *RoomFilter) FromRequest(r *http.Request) (err error) {
	query := r.URL.Query()

	f.Type = strings.TrimSpace(query.Get(QueryType))
	f.View = strings.TrimSpace(query.Get(QueryView))
	f.Search = strings.TrimSpace(query.Get(constant.RequestParamSearch))
	f.Available = shared.ConvertStringToBool(query.Get(QueryAvailable))

	if guests := query.Get(QueryGuests); guests != constant.Empty {
		if f.Guests, err = shared.ConvertStringToInt(guests); err != nil {
			return err
		}
	}

	if f.MinRate, err = shared.ConvertStringToFloat(query.Get(QueryMinRate)); err != nil {
		return err
	}

	if f.MaxRate, err = shared.ConvertStringToFloat(query.Get(QueryMaxRate)); err != nil {
		return err
	}

	return nil
}

func (f *RoomFilter) ToFilterGroup() gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if f.Type != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    f.Type,
			Table:    model.TableName,
		})
	}

	if f.View != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldView,
			Operator: gDto.FilterOperatorEq,
			Value:    f.View,
			Table:    model.TableName,
		})
	}

	if f.Guests > 0 {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCapacity,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    f.Guests,
			Table:    model.TableName,
		})
	}

	if f.MinRate != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  QueryMinRate,
			Field:    model.FieldRate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    *f.MinRate,
			Table:    model.TableName,
		})
	}

	if f.MaxRate != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  QueryMaxRate,
			Field:    model.FieldRate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    *f.MaxRate,
			Table:    model.TableName,
		})
	}

	if f.Available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *f.Available,
			Table:    model.TableName,
		})
	}

	if f.Search != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  "search_number",
					Field:    model.FieldNumber,
					Operator: gDto.FilterOperatorLike,
					Value:    f.Search,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_type",
					Field:    model.FieldType,
					Operator: gDto.FilterOperatorLike,
					Value:    f.Search,
					Table:    model.TableName,
				},
			},
		})
	}

	return filterGroup
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
