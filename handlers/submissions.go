package handlers

import (
	"net/http"

	"foodie-site-api/contract"
	"foodie-site-api/models"
	"foodie-site-api/schema"

	"github.com/gin-gonic/gin"
)

// ── Contact & reservation forms ─────────────────────────────────────────────

// SubmitContact stores a contact-form message
func (h *Handler) SubmitContact(c *gin.Context) {
	var req models.ContactMessageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.Submission("contact", "invalid")
		verr := schema.ToValidationError(&req, err)
		c.JSON(http.StatusBadRequest, contract.ValidationErrorResponse{Message: verr.Message, Errors: verr.Fields})
		return
	}

	if err := h.store.CreateContactMessage(c.Request.Context(), req); err != nil {
		h.metrics.Submission("contact", "failed")
		h.fail(c, err, "store contact message failed", contract.MessageResponse{Message: internalMessage})
		return
	}
	h.metrics.Submission("contact", "accepted")
	c.JSON(http.StatusOK, contract.SuccessResponse{Success: true})
}

// SubmitReservation appends a table reservation request
func (h *Handler) SubmitReservation(c *gin.Context) {
	var req models.ReservationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.Submission("reservation", "invalid")
		verr := schema.ToValidationError(&req, err)
		c.JSON(http.StatusBadRequest, contract.ValidationErrorResponse{Message: verr.Message, Errors: verr.Fields})
		return
	}

	if err := h.store.CreateReservation(c.Request.Context(), req); err != nil {
		h.metrics.Submission("reservation", "failed")
		h.fail(c, err, "store reservation failed", contract.MessageResponse{Message: "Failed to save reservation"})
		return
	}
	h.metrics.Submission("reservation", "accepted")
	c.JSON(http.StatusOK, contract.SuccessResponse{Success: true})
}

// ── Reviews ─────────────────────────────────────────────────────────────────

// ListReviews returns reviews in the order they were submitted
func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.store.ListReviews(c.Request.Context())
	if err != nil {
		h.fail(c, err, "list reviews failed", contract.ErrorResponse{Error: "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview stores a review; id and date are assigned server-side
func (h *Handler) CreateReview(c *gin.Context) {
	var req models.ReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.Submission("review", "invalid")
		verr := schema.ToValidationError(&req, err)
		c.JSON(http.StatusBadRequest, contract.ErrorResponse{Error: verr.Error(), Errors: verr.Fields})
		return
	}

	review, err := h.store.CreateReview(c.Request.Context(), req)
	if err != nil {
		h.metrics.Submission("review", "failed")
		h.fail(c, err, "store review failed", contract.ErrorResponse{Error: "Failed to save review"})
		return
	}
	h.metrics.Submission("review", "accepted")
	c.JSON(http.StatusOK, review)
}

// ReviewSummary returns the review count and average rating
func (h *Handler) ReviewSummary(c *gin.Context) {
	reviews, err := h.store.ListReviews(c.Request.Context())
	if err != nil {
		h.fail(c, err, "summarize reviews failed", contract.ErrorResponse{Error: "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, models.SummarizeReviews(reviews))
}
