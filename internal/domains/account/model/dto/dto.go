package dto

import (
	"time"

	clientDto "hotel/internal/domains/client/model/dto"
	"hotel/internal/domains/pricing"
	reservationModel "hotel/internal/domains/reservation/model"
	reservationDto "hotel/internal/domains/reservation/model/dto"

	"github.com/shopspring/decimal"
)

type AccountResponse struct {
	Email        string                               `json:"email"`
	Profile      clientDto.ClientResponse             `json:"profile"`
	Tier         pricing.Tier                         `json:"tier"`
	Reservations []reservationDto.ReservationResponse `json:"reservations"`
	Stats        Stats                                `json:"stats"`
}

type Stats struct {
	ReservationCount int     `json:"reservation_count"`
	UpcomingCount    int     `json:"upcoming_count"`
	TotalSpent       float64 `json:"total_spent"`
	TotalSavings     float64 `json:"total_savings"`
}

// FromReservations aggregates the history of one client. A stay is upcoming when it starts after now.
func (s *Stats) FromReservations(reservations []reservationModel.Reservation, now time.Time) {
	spent := decimal.Zero
	savings := decimal.Zero

	s.ReservationCount = len(reservations)
	s.UpcomingCount = 0

	for _, reservation := range reservations {
		if reservation.StartDate.After(now) {
			s.UpcomingCount++
		}

		spent = spent.Add(decimal.NewFromFloat(reservation.TotalAmount))
		savings = savings.Add(decimal.NewFromFloat(reservation.DiscountApplied))
	}

	s.TotalSpent = spent.InexactFloat64()
	s.TotalSavings = savings.InexactFloat64()
}

func (a *AccountResponse) FromModels(email string, profile clientDto.ClientResponse, reservations []reservationModel.Reservation, now time.Time) {
	a.Email = email
	a.Profile = profile
	a.Tier = pricing.TierFor(profile.LoyaltyPoints)

	a.Reservations = make([]reservationDto.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		a.Reservations[i].FromModel(reservation)
	}

	a.Stats.FromReservations(reservations, now)
}
