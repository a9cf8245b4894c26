package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "clubpay/internal/adapter/http/dto/request"
	response "clubpay/internal/adapter/http/dto/response"
	"clubpay/internal/usecase"
	"clubpay/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid payment session payload", http.StatusBadRequest)

// PaymentSessionHandler handles HTTP requests for payment sessions.
type PaymentSessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewPaymentSessionHandler(uc usecase.ISessionUseCase) *PaymentSessionHandler {
	return &PaymentSessionHandler{usecase: uc}
}

// CreatePaymentSession resolves the club's processor, obtains a vendor token
// and returns the session the client will mount its payment surface with.
func (h *PaymentSessionHandler) CreatePaymentSession(c *gin.Context) {
	var payload request.PaymentSessionCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		log.Printf("[session][handler] create rejected club_id=%s err=%v", payload.ClubID, err)
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	log.Printf("[session][handler] create start club_id=%s sku=%s", payload.ClubID, payload.SKU)
	session, err := h.usecase.IssueSession(c.Request.Context(), usecase.IssueSessionInput{
		ClubID:          payload.ClubID,
		Amount:          payload.Amount,
		Currency:        payload.Currency,
		TransactionType: payload.TransactionType,
		SKU:             payload.SKU,
		CustomerCode:    payload.CustomerCode,
	})
	if err != nil {
		log.Printf("[session][handler] create failed club_id=%s err=%v", payload.ClubID, err)
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[session][handler] create success club_id=%s session_id=%s processor=%s", payload.ClubID, session.SessionID, session.Processor)

	c.JSON(http.StatusCreated, response.FromIssuedPaymentSession(session))
}

// GetPaymentSession returns the current state of a session, result included
// once one arrived. The vendor token is never repeated here.
func (h *PaymentSessionHandler) GetPaymentSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	session, err := h.usecase.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentSession(session))
}

// PostSessionEvent receives the raw browser-side event (tokenizer callback
// or relayed cross-window message) for a session. The body is kept raw so
// vendor payload shapes never constrain the route.
func (h *PaymentSessionHandler) PostSessionEvent(c *gin.Context) {
	sessionID := c.Param("session_id")
	origin := c.GetHeader("Origin")

	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 || !json.Valid(raw) {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	outcome, err := h.usecase.HandleSessionEvent(c.Request.Context(), sessionID, origin, json.RawMessage(raw))
	if err != nil {
		log.Printf("[session][handler] event failed session_id=%s err=%v", sessionID, err)
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SessionEventResponse{
		Accepted: outcome.Accepted,
		Status:   string(outcome.Status),
	})
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClubID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCurrency),
		errors.Is(err, usecase.ErrUnsupportedProcessor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOfferingNotFound):
		return pkg.NewDomainErrorSimple("OFFERING_NOT_FOUND", "Package offering not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferingInactive):
		return pkg.NewDomainErrorSimple("OFFERING_INACTIVE", "Package offering is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrClubConfigNotFound):
		return pkg.NewDomainErrorSimple("CLUB_CONFIG_NOT_FOUND", "No payment configuration for this club", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIncompleteCredentials):
		return pkg.NewDomainErrorSimple("CLUB_CONFIG_INCOMPLETE", "Payment configuration for this club is incomplete", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrSessionIssuance):
		return pkg.NewDomainErrorSimple("SESSION_ISSUANCE_FAILED", "Could not obtain a payment token from the processor", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Payment session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionExpired):
		return pkg.NewDomainErrorSimple("SESSION_EXPIRED", "Payment session expired", http.StatusGone)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
