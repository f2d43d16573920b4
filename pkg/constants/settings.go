package constants

// Setting groups.
const (
	SettingGroupGeneral = "general"
	SettingGroupTheme   = "theme"
)

// Keys under the "general" group.
const (
	SettingStoragePlatform = "storage_platform"
	SettingSiteName        = "site_name"
)

// Default values applied when a setting row is absent.
const (
	DefaultStoragePlatform = "local"
	DefaultSiteName        = "storefront"
)

// DefaultSettings maps group/key pairs to their default values. The init
// service seeds these rows on first start.
var DefaultSettings = map[string]map[string]string{
	SettingGroupGeneral: {
		SettingStoragePlatform: DefaultStoragePlatform,
		SettingSiteName:        DefaultSiteName,
	},
}

// ProtectedSettings contains setting keys that cannot be deleted.
var ProtectedSettings = map[string]bool{
	SettingStoragePlatform: true,
}

// IsProtectedSetting returns true if the given key is a protected setting.
func IsProtectedSetting(key string) bool {
	return ProtectedSettings[key]
}
