package service

import "duttmandir/internal/models"

// Sidebar destinations in display order. Donors, Donations and Reports are
// admin-only; everything else is visible to both roles.
var defaultNavItems = []models.NavItem{
	{Title: "Dashboard", Icon: "home", Path: "/dashboard", Visibility: models.VisibilityAll},
	{Title: "Accommodations", Icon: "building", Path: "/accommodations", Visibility: models.VisibilityAll},
	{Title: "Bookings", Icon: "calendar", Path: "/bookings", Visibility: models.VisibilityAll},
	{Title: "Donors", Icon: "users", Path: "/donors", Visibility: models.VisibilityAdmin},
	{Title: "Donations", Icon: "credit-card", Path: "/donations", Visibility: models.VisibilityAdmin},
	{Title: "Reports", Icon: "file-text", Path: "/reports", Visibility: models.VisibilityAdmin},
	{Title: "Settings", Icon: "settings", Path: "/settings", Visibility: models.VisibilityAll},
	{Title: "Help", Icon: "help-circle", Path: "/help", Visibility: models.VisibilityAll},
}

// NavigationService projects the static menu for a role. Pure: no state
// beyond the fixed list, recomputed on every call.
type NavigationService struct {
	items []models.NavItem
}

func NewNavigationService() *NavigationService {
	return &NavigationService{items: defaultNavItems}
}

// MenuFor keeps items visible to everyone or to the given role, preserving
// insertion order.
func (s *NavigationService) MenuFor(role models.Role) []models.NavItem {
	out := make([]models.NavItem, 0, len(s.items))
	for _, item := range s.items {
		if visibleTo(item.Visibility, role) {
			out = append(out, item)
		}
	}
	return out
}

func visibleTo(v models.Visibility, role models.Role) bool {
	switch v {
	case models.VisibilityAll:
		return true
	case models.VisibilityAdmin:
		return role == models.RoleAdmin
	}
	return false
}
