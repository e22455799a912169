package handlers

import (
	"net/http"

	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for recording one ledger entry. Value must be a positive whole
// number; a fractional or non-numeric JSON value already fails binding.
type transactionRequest struct {
	Description string `json:"description" binding:"required"`
	Value       int64  `json:"value" binding:"required,gt=0"`
	Type        string `json:"type" binding:"required,oneof=in out"`
}

// @Summary      Record a transaction
// @Description  Value is a whole amount in minor units; type is "in" (credit) or "out" (debit).
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  transactionRequest  true  "Entry payload"
// @Success      201   {object}  map[string]int64
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /transactions [post]
// @Security     BearerAuth
func (h *Handler) createTransaction(c *gin.Context) {
	var input transactionRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	userID := c.GetInt(ctxUserID)
	id, err := h.services.Record(c.Request.Context(), userID, input.Description, input.Value, input.Type)
	if err != nil {
		if service.IsInvalidEntry(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if h.log != nil {
			h.log.Errorw("transaction_record_failed", "user_id", userID, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      List transactions with running balance
// @Tags         transactions
// @Produce      json
// @Success      200  {object}  service.Summary
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /transactions [get]
// @Security     BearerAuth
func (h *Handler) listTransactions(c *gin.Context) {
	userID := c.GetInt(ctxUserID)

	summary, err := h.services.Summarize(c.Request.Context(), userID)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("transaction_list_failed", "user_id", userID, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
