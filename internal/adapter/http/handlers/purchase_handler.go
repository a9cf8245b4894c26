package handlers

import (
	"errors"
	"log"
	"net/http"

	request "clubpay/internal/adapter/http/dto/request"
	response "clubpay/internal/adapter/http/dto/response"
	"clubpay/internal/domain/entities"
	"clubpay/internal/usecase"
	"clubpay/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPurchasePayload = pkg.NewDomainErrorSimple("INVALID_PURCHASE_INPUT", "Invalid purchase payload", http.StatusBadRequest)

// PurchaseHandler handles HTTP requests for purchase finalization.
type PurchaseHandler struct {
	usecase usecase.IPurchaseUseCase
}

func NewPurchaseHandler(uc usecase.IPurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{usecase: uc}
}

// CreatePurchase finalizes a payment session: charges the card token for the
// embedded-tokenizer flow, or records the already-received overlay outcome.
// Replays of the same session return the prior outcome, never a second charge.
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var payload request.PurchaseCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPurchasePayload.HTTPStatus, errInvalidPurchasePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		log.Printf("[purchase][handler] create rejected session_id=%s err=%v", payload.SessionID, err)
		c.JSON(errInvalidPurchasePayload.HTTPStatus, errInvalidPurchasePayload.ToHTTPError())
		return
	}

	log.Printf("[purchase][handler] create start session_id=%s club_id=%s sku=%s", payload.SessionID, payload.ClubID, payload.Package.SKU)
	outcome, err := h.usecase.FinalizePurchase(c.Request.Context(), usecase.FinalizePurchaseInput{
		SessionID: payload.SessionID,
		ClubID:    payload.ClubID,
		MemberID:  payload.Member.MemberID,
		Guest:     payload.Member.Guest,
		SKU:       payload.Package.SKU,
		Contact: entities.ContactInfo{
			Name:  payload.Contact.Name,
			Email: payload.Contact.Email,
			Phone: payload.Contact.Phone,
		},
		Payment: usecase.PaymentPayload{
			Processor:        entities.Processor(payload.Payment.Processor),
			Token:            payload.Payment.Token,
			AlreadyProcessed: payload.Payment.AlreadyProcessed,
			TransactionID:    payload.Payment.TransactionID,
			ApprovalCode:     payload.Payment.ApprovalCode,
			CardBrand:        payload.Payment.CardBrand,
			CardMasked:       payload.Payment.CardMasked,
			Expiry:           payload.Payment.Expiry,
		},
	})
	if err != nil {
		log.Printf("[purchase][handler] create failed session_id=%s err=%v", payload.SessionID, err)
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[purchase][handler] create done session_id=%s status=%s duplicate=%t", payload.SessionID, outcome.Result.Status, outcome.Duplicate)

	resp := response.FromPurchaseOutcome(outcome)
	if resp.SessionID == "" {
		resp.SessionID = payload.SessionID
		resp.ClubID = payload.ClubID
	}
	c.JSON(http.StatusOK, resp)
}

// ListPurchasesByClub returns every purchase recorded for a club.
func (h *PurchaseHandler) ListPurchasesByClub(c *gin.Context) {
	clubID := c.Param("club_id")

	records, err := h.usecase.ListByClubID(c.Request.Context(), clubID)
	if err != nil {
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchaseRecords(records))
}

// GetPurchaseBySessionID returns the persisted purchase for a session.
func (h *PurchaseHandler) GetPurchaseBySessionID(c *gin.Context) {
	sessionID := c.Param("session_id")

	record, err := h.usecase.GetBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchaseRecord(record))
}

func mapPurchaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPurchaseRequest), errors.Is(err, usecase.ErrMissingCardToken):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProcessorMismatch):
		return pkg.NewDomainErrorSimple("PROCESSOR_MISMATCH", "Payment payload does not match the session's processor", http.StatusConflict)
	case errors.Is(err, usecase.ErrResultNotReceived):
		return pkg.NewDomainErrorSimple("RESULT_NOT_RECEIVED", "No payment result received for this session yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferingNotFound):
		return pkg.NewDomainErrorSimple("OFFERING_NOT_FOUND", "Package offering not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferingInactive):
		return pkg.NewDomainErrorSimple("OFFERING_INACTIVE", "Package offering is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrAmountMismatch):
		return pkg.NewDomainErrorSimple("AMOUNT_MISMATCH", "Charged amount does not match the catalog price for this offering", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Payment session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClubConfigNotFound):
		return pkg.NewDomainErrorSimple("CLUB_CONFIG_NOT_FOUND", "No payment configuration for this club", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPurchaseNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_NOT_FOUND", "Purchase not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
