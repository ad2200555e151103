package controllers

import (
	"net/http"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/dtos"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/services"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

type HealthController struct {
	svc services.QuoteService
}

func NewHealthController(s services.QuoteService) *HealthController {
	return &HealthController{svc: s}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	// Probe the configured submission sinks
	if err := c.svc.Ping(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("quote-service unhealthy")
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Service unhealthy",
			nil,
			err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
