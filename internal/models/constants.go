package models

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionExportFile = 0644
)

