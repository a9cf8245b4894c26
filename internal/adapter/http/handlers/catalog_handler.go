package handlers

import (
	"log"
	"net/http"

	response "clubpay/internal/adapter/http/dto/response"
	"clubpay/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the package offerings a club sells.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListOfferings returns the active offerings for a club, for the package
// selection step before a payment session is opened.
func (h *CatalogHandler) ListOfferings(c *gin.Context) {
	clubID := c.Param("club_id")

	offerings, err := h.usecase.ListOfferings(c.Request.Context(), clubID)
	if err != nil {
		log.Printf("[catalog][handler] list failed club_id=%s err=%v", clubID, err)
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPackageOfferings(offerings))
}
