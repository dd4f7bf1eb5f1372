package api

import (
	"laundry-finder-backend/internal/model"
	"laundry-finder-backend/internal/parse"
	"laundry-finder-backend/internal/status"
	"laundry-finder-backend/internal/summary"
)

type machineView struct {
	ID            string              `json:"id"`
	Label         string              `json:"label"`
	Kind          model.MachineKind   `json:"type"`
	Status        model.MachineStatus `json:"status"`
	TimeRemaining int                 `json:"timeRemaining"`
	Capacity      string              `json:"capacity"`
	StatusText    string              `json:"statusText,omitempty"`
	Tone          status.Tone         `json:"tone"`
	Progress      *float64            `json:"progress,omitempty"`
	Error         string              `json:"error,omitempty"`
}

type kindView struct {
	summary.KindSummary
	// ShowNextAvailable is set when nothing of this kind is free but something will be.
	ShowNextAvailable bool `json:"showNextAvailable"`
}

type shopView struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Distance   float64  `json:"distance"`
	Rating     float64  `json:"rating"`
	IsOpen     bool     `json:"isOpen"`
	OpenLabel  string   `json:"openLabel"`
	Washers    kindView `json:"washers"`
	Dryers     kindView `json:"dryers"`
	HasAnyFree bool     `json:"hasAnyFree"`
}

type shopDetailView struct {
	shopView
	WasherMachines []machineView `json:"washerMachines"`
	DryerMachines  []machineView `json:"dryerMachines"`
}

type notificationView struct {
	model.NotificationEntry
	MachineLabel  string `json:"machineLabel"`
	RemainingText string `json:"remainingText"`
}

func newMachineView(m model.Machine) machineView {
	v := machineView{
		ID:            m.ID,
		Label:         parse.MachineLabel(m.ID),
		Kind:          m.Kind,
		Status:        m.Status,
		TimeRemaining: m.TimeRemainingMinutes,
		Capacity:      m.Capacity,
		Tone:          status.ToneOf(m.Status),
	}

	text, err := status.Label(m)
	if err != nil {
		// One malformed machine must not hide the rest of the shop.
		v.Error = err.Error()
		return v
	}
	v.StatusText = text

	if m.Status == model.StatusInUse {
		if p, err := status.ProgressFraction(m); err == nil {
			v.Progress = &p
		}
	}
	return v
}

func newMachineViews(machines []model.Machine) []machineView {
	views := make([]machineView, 0, len(machines))
	for _, m := range machines {
		views = append(views, newMachineView(m))
	}
	return views
}

func newKindView(ks summary.KindSummary) kindView {
	return kindView{
		KindSummary:       ks,
		ShowNextAvailable: ks.Available == 0 && ks.NextAvailable != nil,
	}
}

func newShopView(shop model.LaundryShop) shopView {
	s := summary.Summarize(shop)
	openLabel := "Closed"
	if shop.IsOpen {
		openLabel = "Open"
	}
	return shopView{
		ID:         shop.ID,
		Name:       shop.Name,
		Address:    shop.Address,
		Distance:   shop.DistanceKm,
		Rating:     shop.Rating,
		IsOpen:     shop.IsOpen,
		OpenLabel:  openLabel,
		Washers:    newKindView(s.Washers),
		Dryers:     newKindView(s.Dryers),
		HasAnyFree: s.HasAnyFree,
	}
}

func newShopDetailView(shop model.LaundryShop) shopDetailView {
	return shopDetailView{
		shopView:       newShopView(shop),
		WasherMachines: newMachineViews(shop.Washers),
		DryerMachines:  newMachineViews(shop.Dryers),
	}
}

func newNotificationView(e model.NotificationEntry) notificationView {
	return notificationView{
		NotificationEntry: e,
		MachineLabel:      parse.MachineLabel(e.MachineID),
		RemainingText:     status.FormatMinutes(e.TimeRemainingMinutes),
	}
}
