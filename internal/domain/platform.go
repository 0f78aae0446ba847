package domain

import "strings"

// Platform identifies the mobile OS a metric row belongs to. Upstream
// APIs disagree on spelling ("iOS", "PLATFORM_IOS", "ios"), so every
// adapter normalizes to this enum at ingestion.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformUnknown Platform = ""
)

func ParsePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "PLATFORM_")) {
	case "android":
		return PlatformAndroid
	case "ios":
		return PlatformIOS
	}

	// The report API sends the prefix upper-cased; retry after folding.
	switch strings.ToLower(s) {
	case "platform_android":
		return PlatformAndroid
	case "platform_ios":
		return PlatformIOS
	}

	return PlatformUnknown
}
