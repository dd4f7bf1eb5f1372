package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"laundry-finder-backend/internal/directory"
	"laundry-finder-backend/internal/model"
	"laundry-finder-backend/internal/parse"
)

// ListNotifications handles the GET /api/notifications request.
func (h *Handler) ListNotifications(c *gin.Context) {
	entries := h.notes.List()
	views := make([]notificationView, 0, len(entries))
	for _, e := range entries {
		views = append(views, newNotificationView(e))
	}
	c.JSON(http.StatusOK, views)
}

type addNotificationRequest struct {
	ID            string          `json:"id"`
	ShopID        string          `json:"shopId"`
	ShopName      string          `json:"shopName" binding:"required_without=ShopID"`
	MachineID     string          `json:"machineId" binding:"required"`
	TimeRemaining *int            `json:"timeRemaining" binding:"omitempty,gte=0"`
	Type          model.CycleKind `json:"type" binding:"omitempty,oneof=wash dry"`
	IsActive      *bool           `json:"isActive"`
}

// AddNotification handles the POST /api/notifications request.
// When shopId is given, the shop name and the machine's remaining time are taken from the directory.
func (h *Handler) AddNotification(c *gin.Context) {
	var req addNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := model.NotificationEntry{
		ID:        req.ID,
		ShopName:  req.ShopName,
		MachineID: req.MachineID,
		Kind:      req.Type,
		IsActive:  true,
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}
	if req.TimeRemaining != nil {
		entry.TimeRemainingMinutes = *req.TimeRemaining
	}

	if req.ShopID != "" {
		if err := h.fillFromDirectory(&entry, req.ShopID, req.TimeRemaining == nil); err != nil {
			abortWithError(c, err)
			return
		}
	}

	if entry.Kind == "" {
		parsed, err := parse.ParseMachineID(entry.MachineID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("type is required: %v", err)})
			return
		}
		entry.Kind, _ = model.CycleKindFor(parsed.Kind)
	}

	added, err := h.notes.Add(entry)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newNotificationView(added))
}

func (h *Handler) fillFromDirectory(entry *model.NotificationEntry, shopID string, fillTime bool) error {
	shop, ok := h.dir.Shop(shopID)
	if !ok {
		return fmt.Errorf("notification for shop %q: %w", shopID, directory.ErrNotFound)
	}
	entry.ShopName = shop.Name

	for _, m := range append(append([]model.Machine{}, shop.Washers...), shop.Dryers...) {
		if !sameMachine(m.ID, entry.MachineID) {
			continue
		}
		entry.MachineID = parse.MachineLabel(m.ID)
		if fillTime {
			entry.TimeRemainingMinutes = m.TimeRemainingMinutes
		}
		if entry.Kind == "" {
			entry.Kind, _ = model.CycleKindFor(m.Kind)
		}
		return nil
	}
	return fmt.Errorf("machine %q in shop %q: %w", entry.MachineID, shopID, directory.ErrNotFound)
}

func sameMachine(a, b string) bool {
	return parse.MachineLabel(a) == parse.MachineLabel(b)
}

// DeleteNotification handles the DELETE /api/notifications/{id} request.
// Deleting an unknown id succeeds.
func (h *Handler) DeleteNotification(c *gin.Context) {
	h.notes.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}
