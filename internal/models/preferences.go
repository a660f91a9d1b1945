package models

// Preferences are the display settings of the dashboard shell.
type Preferences struct {
	Notifications bool   `json:"notifications"`
	AutoSave      bool   `json:"auto_save"`
	DarkMode      bool   `json:"dark_mode"`
	Language      string `json:"language"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: true,
		AutoSave:      true,
		Language:      "fr",
	}
}
