package account

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/account/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Account
	otel    otel.Otel
}

func New(service service.Account, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/account", handler.GetAccount)
}

// GetAccount returns the loyalty profile and booking history of the signed in user.
// @Summary Get the current account
// @Description Profile, loyalty tier, reservation history and spend totals of the signed in user.
// @Tags Account
// @Produce json
// @Success 200 {object} response.Data[dto.AccountResponse] "Account details"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/account [get]
// @Security BearerAuth
func (handler *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccount")
	defer scope.End()

	account, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get account")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Account retrieved successfully for user " + user)

	response.WithJSON(w, http.StatusOK, account)
}
