package dto

import (
	"net/http"
	"strings"

	"hotel/internal/domains/client/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

var SortableFields = []string{model.FieldName, model.FieldLoyaltyPoints}

type CreateClientRequest struct {
	UserID        *string `json:"user_id"        validate:"omitempty,uuid"`
	Name          string  `json:"name"           validate:"required,max=100"`
	LoyaltyPoints int     `json:"loyalty_points" validate:"gte=0"`
}

func (c *CreateClientRequest) ToModel(user string) model.Client {
	return model.Client{
		ID:            uuid.NewString(),
		UserID:        c.UserID,
		Name:          strings.TrimSpace(c.Name),
		LoyaltyPoints: c.LoyaltyPoints,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateClientRequest struct {
	Name          *string `db:"name"           json:"name"           validate:"omitempty,min=1,max=100"`
	LoyaltyPoints *int    `db:"loyalty_points" json:"loyalty_points" validate:"omitempty,gte=0"`
}

type ClientResponse struct {
	ID            string  `json:"id"`
	UserID        *string `json:"user_id"`
	Name          string  `json:"name"`
	LoyaltyPoints int     `json:"loyalty_points"`
	gDto.Metadata
}

func (r *ClientResponse) FromModel(model model.Client) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Name = model.Name
	r.LoyaltyPoints = model.LoyaltyPoints
	r.Metadata.FromModel(model.Metadata)
}

type GetClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetClientsResponse) FromModels(models []model.Client, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Clients = make([]ClientResponse, len(models))
	for i, mod := range models {
		r.Clients[i].FromModel(mod)
	}
}

type ClientFilter struct {
	Search string `validate:"omitempty,max=100"`
}

func (f *ClientFilter) FromRequest(r *http.Request) {
	f.Search = strings.TrimSpace(r.URL.Query().Get(constant.RequestParamSearch))
}

func (f *ClientFilter) ToFilterGroup() gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if f.Search != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    f.Search,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
