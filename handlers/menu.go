package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"foodie-site-api/contract"
	"foodie-site-api/storage"

	"github.com/gin-gonic/gin"
)

// ListCategories returns every category in menu order
func (h *Handler) ListCategories(c *gin.Context) {
	cats, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		h.fail(c, err, "list categories failed", contract.MessageResponse{Message: internalMessage})
		return
	}
	c.JSON(http.StatusOK, cats)
}

// GetCategory looks a category up by its slug
func (h *Handler) GetCategory(c *gin.Context) {
	slug := pathParam(c, contract.API.Categories.Get, "slug")
	cat, err := h.store.GetCategoryBySlug(c.Request.Context(), slug)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, contract.MessageResponse{Message: "Category not found"})
		return
	}
	if err != nil {
		h.fail(c, err, "get category failed", contract.MessageResponse{Message: internalMessage})
		return
	}
	c.JSON(http.StatusOK, cat)
}

// ListMenuItems returns all items, or one category's items with ?categoryId=
func (h *Handler) ListMenuItems(c *gin.Context) {
	var categoryID *int64
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, contract.MessageResponse{Message: "categoryId must be an integer"})
			return
		}
		categoryID = &id
	}

	items, err := h.store.ListMenuItems(c.Request.Context(), categoryID)
	if err != nil {
		h.fail(c, err, "list menu items failed", contract.MessageResponse{Message: internalMessage})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListCategoryItems serves the nested /categories/:id/items resource
func (h *Handler) ListCategoryItems(c *gin.Context) {
	id, err := strconv.ParseInt(pathParam(c, contract.API.MenuItems.ByCategory, "id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, contract.MessageResponse{Message: "Category id must be an integer"})
		return
	}

	items, err := h.store.ListMenuItemsByCategory(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "list category items failed", contract.MessageResponse{Message: internalMessage})
		return
	}
	c.JSON(http.StatusOK, items)
}
