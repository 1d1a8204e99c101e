package domain

// Theme is the dashboard colour scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preference keys persisted in client storage. All values are opaque
// strings with no schema versioning, mirroring what the dashboard keeps
// in browser storage.
const (
	PrefTheme            = "theme"
	PrefSidebarCollapsed = "sidebar_collapsed"
	PrefLastVerifyEmail  = "last_verify_email"
	PrefLastResetEmail   = "last_reset_email"
)
