package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"laundry-finder-backend/internal/directory"
)

// ListShops handles the GET /api/shops request.
func (h *Handler) ListShops(c *gin.Context) {
	shops := h.dir.Shops()
	views := make([]shopView, 0, len(shops))
	for _, shop := range shops {
		views = append(views, newShopView(shop))
	}
	c.JSON(http.StatusOK, views)
}

// GetShop handles the GET /api/shops/{shop_id} request.
func (h *Handler) GetShop(c *gin.Context) {
	shop, ok := h.dir.Shop(c.Param("shop_id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": directory.ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, newShopDetailView(shop))
}

// GetSelection handles the GET /api/selection request.
func (h *Handler) GetSelection(c *gin.Context) {
	shop, ok := h.dir.Selected()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"selected": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": newShopDetailView(shop)})
}

type putSelectionRequest struct {
	ShopID string `json:"shopId" binding:"required"`
}

// PutSelection handles the PUT /api/selection request.
func (h *Handler) PutSelection(c *gin.Context) {
	var req putSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.dir.Select(req.ShopID); err != nil {
		abortWithError(c, err)
		return
	}

	h.GetSelection(c)
}

// DeleteSelection handles the DELETE /api/selection request.
func (h *Handler) DeleteSelection(c *gin.Context) {
	h.dir.Deselect()
	c.Status(http.StatusNoContent)
}

// Refresh handles the POST /api/refresh request. The refresh is not tied to the
// request's lifetime: once started it runs to completion.
func (h *Handler) Refresh(c *gin.Context) {
	started, err := h.dir.Refresh(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"started": started, "loading": h.dir.Loading()})
}

// GetRefreshStatus handles the GET /api/refresh request.
func (h *Handler) GetRefreshStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"loading": h.dir.Loading()})
}
