package models

// Session carries the authenticated identity and role for one request.
// It is built by the auth middleware from the JWT claims and passed
// explicitly into every service call; nothing reads ambient auth state.
type Session struct {
	UserID uint
	Admin  bool
}

type Action string

const (
	ActionManageMenu        Action = "menu:manage"
	ActionViewAllOrders     Action = "orders:view_all"
	ActionUpdateOrderStatus Action = "orders:update_status"
)

// Authorize is the single authorization policy. Every admin-gated path
// (menu management, global order view, status writes) consults it instead
// of checking role flags inline.
func Authorize(s *Session, a Action) error {
	if s == nil {
		return ErrAuthRequired
	}
	switch a {
	case ActionManageMenu, ActionViewAllOrders, ActionUpdateOrderStatus:
		if !s.Admin {
			return ErrForbidden
		}
	}
	return nil
}
