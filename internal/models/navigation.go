package models

// Visibility controls which roles see a navigation item.
type Visibility string

const (
	VisibilityAll   Visibility = "all"
	VisibilityAdmin Visibility = "admin"
)

// NavItem is one sidebar destination descriptor.
type NavItem struct {
	Title      string     `json:"title"`
	Icon       string     `json:"icon"`
	Path       string     `json:"path"`
	Visibility Visibility `json:"-"`
}
