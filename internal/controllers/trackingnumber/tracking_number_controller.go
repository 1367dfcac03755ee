package trackingnumber

import (
	"context"
	"errors"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/porchman/notification-api/internal/services/trackingrepo"
	"github.com/rs/zerolog"
)

const (
	formTrackingNumber = "trackingnumber"
	formTrackID        = "trackId"
	queryNumber        = "number"
)

type Storage interface {
	RegisterDirect(ctx context.Context, number, trackID string) (trackingrepo.Record, error)
	QueryTracking(ctx context.Context, number string) (bool, error)
}

// TrackingNumberController registers and looks up tracking numbers on behalf of
// the delivery box client.
type TrackingNumberController struct {
	storage Storage
}

// NewTrackingNumberController creates a new TrackingNumberController.
func NewTrackingNumberController(storage Storage) *TrackingNumberController {
	return &TrackingNumberController{storage: storage}
}

// Register godoc
// @Summary      Register a tracking number
// @Description  Stores a tracking number and returns the hash it is stored under.
// @Tags         TrackingNumbers
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        trackingnumber  formData  string  true   "Tracking number"
// @Param        trackId         formData  string  false  "Client side tracking identifier"
// @Success      200  {object}  RegistrationResponse
// @Failure      400  "Missing tracking number"
// @Failure      500  "Internal server error"
// @Router       /trackingnumber/registration [post]
func (t *TrackingNumberController) Register(c *fiber.Ctx) error {
	number := c.FormValue(formTrackingNumber)
	if number == "" {
		return richerrors.Error{
			ExternalMsg: "trackingnumber is required",
			Code:        fiber.StatusBadRequest,
		}
	}
	trackID := c.FormValue(formTrackID)

	rec, err := t.storage.RegisterDirect(c.UserContext(), number, trackID)
	if err != nil {
		zerolog.Ctx(c.UserContext()).Error().Err(err).Str("trackId", trackID).Msg("failed to register tracking number")
		return richerrors.Error{
			ExternalMsg: "Failed to register tracking number",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	return c.JSON(RegistrationResponse{
		Result: true,
		Data:   RegistrationData{Hash: rec.PartitionKey},
	})
}

// Get godoc
// @Summary      Check a tracking number
// @Description  Reports whether exactly one registration holds the tracking number.
// @Tags         TrackingNumbers
// @Produce      json
// @Param        number  query  string  true  "Tracking number"
// @Success      200  {object}  QueryResponse
// @Failure      400  "Missing number"
// @Failure      500  "Internal server error"
// @Router       /trackingnumber/get [get]
func (t *TrackingNumberController) Get(c *fiber.Ctx) error {
	number := c.Query(queryNumber)
	if number == "" {
		return richerrors.Error{
			ExternalMsg: "number is required",
			Code:        fiber.StatusBadRequest,
		}
	}

	found, err := t.storage.QueryTracking(c.UserContext(), number)
	if err != nil {
		if errors.Is(err, trackingrepo.ErrAmbiguousNumber) {
			zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("tracking number registered more than once")
			return c.JSON(QueryResponse{Result: false})
		}
		zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("failed to query tracking number")
		return richerrors.Error{
			ExternalMsg: "Failed to query tracking number",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	return c.JSON(QueryResponse{Result: found})
}
