package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"darna-client-service/internal/contextkeys"
	"darna-client-service/internal/core/port"
	"darna-client-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type MarketHandlers struct {
	loadAdsFeedUC       usecases_port.LoadAdsFeedUseCase
	loadAdByIDUC        usecases_port.LoadAdByIDUseCase
	loadSellerProfileUC usecases_port.LoadSellerProfileUseCase
	startPurchaseUC     usecases_port.StartPurchaseUseCase
	loginUC             usecases_port.LoginUseCase
	logoutUC            usecases_port.LogoutUseCase
}

// NewMarketHandlers - конструктор для наших обработчиков.
func NewMarketHandlers(
	loadAdsFeedUC usecases_port.LoadAdsFeedUseCase,
	loadAdByIDUC usecases_port.LoadAdByIDUseCase,
	loadSellerProfileUC usecases_port.LoadSellerProfileUseCase,
	startPurchaseUC usecases_port.StartPurchaseUseCase,
	loginUC usecases_port.LoginUseCase,
	logoutUC usecases_port.LogoutUseCase,
) *MarketHandlers {
	return &MarketHandlers{
		loadAdsFeedUC:       loadAdsFeedUC,
		loadAdByIDUC:        loadAdByIDUC,
		loadSellerProfileUC: loadSellerProfileUC,
		startPurchaseUC:     startPurchaseUC,
		loginUC:             loginUC,
		logoutUC:            logoutUC,
	}
}

// HandleGetAds - обработчик для GET /api/v1/ads
func (h *MarketHandlers) HandleGetAds(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleGetAds"})

	ads, failure := h.loadAdsFeedUC.Execute(r.Context())
	if failure != nil {
		logger.Warn("Use case returned failure", port.Fields{"failure_kind": string(failure.Kind)})
		RespondWithFailure(w, failure)
		return
	}

	RespondWithJSON(w, http.StatusOK, toAdDTOs(ads))
}

// HandleGetAdByID - обработчик для GET /api/v1/ads/{id}
func (h *MarketHandlers) HandleGetAdByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleGetAdByID"})

	adID := chi.URLParam(r, "id")
	if adID == "" {
		WriteJSONError(w, http.StatusBadRequest, "Ad id is required")
		return
	}

	ad, failure := h.loadAdByIDUC.Execute(r.Context(), adID)
	if failure != nil {
		logger.Warn("Use case returned failure", port.Fields{"failure_kind": string(failure.Kind)})
		RespondWithFailure(w, failure)
		return
	}

	RespondWithJSON(w, http.StatusOK, toAdDTO(*ad))
}

// HandleGetSellerProfile - обработчик для GET /api/v1/sellers/{id}/profile
func (h *MarketHandlers) HandleGetSellerProfile(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleGetSellerProfile"})

	sellerID := chi.URLParam(r, "id")
	if sellerID == "" {
		WriteJSONError(w, http.StatusBadRequest, "Seller id is required")
		return
	}

	profile, failure := h.loadSellerProfileUC.Execute(r.Context(), sellerID)
	if failure != nil {
		logger.Warn("Use case returned failure", port.Fields{"failure_kind": string(failure.Kind)})
		RespondWithFailure(w, failure)
		return
	}

	RespondWithJSON(w, http.StatusOK, toSellerProfileDTO(profile))
}

// HandleStartPurchase - обработчик для POST /api/v1/purchases
func (h *MarketHandlers) HandleStartPurchase(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleStartPurchase"})

	var reqDTO PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		if err == io.EOF {
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if reqDTO.AdID == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'ad_id' is required")
		return
	}

	result, failure := h.startPurchaseUC.Execute(r.Context(), reqDTO.AdID)
	if failure != nil {
		logger.Warn("Use case returned failure", port.Fields{"failure_kind": string(failure.Kind)})
		RespondWithFailure(w, failure)
		return
	}

	RespondWithJSON(w, http.StatusOK, PurchaseResultDTO{
		Outcome: string(result.Outcome),
		Reason:  result.Reason,
	})
}

// HandleLogin - обработчик для POST /api/v1/session/login
func (h *MarketHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleLogin"})

	var reqDTO LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		if err == io.EOF {
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if reqDTO.Email == "" || reqDTO.Password == "" {
		WriteJSONError(w, http.StatusBadRequest, "Fields 'email' and 'password' are required")
		return
	}

	if failure := h.loginUC.Execute(r.Context(), reqDTO.Email, reqDTO.Password); failure != nil {
		logger.Warn("Login use case returned failure", port.Fields{"failure_kind": string(failure.Kind)})
		RespondWithFailure(w, failure)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleLogout - обработчик для POST /api/v1/session/logout
func (h *MarketHandlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.logoutUC.Execute(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
