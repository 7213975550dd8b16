package services

import "strings"

// User-agent strings are multiply-inclusive (a Chrome UA also contains
// "Safari"), so both classifiers check markers in a fixed priority
// order: mobile, tablet, desktop OS, then a generic fallback.

// DeviceNameFromUA derives a human-readable device label from the raw
// user-agent string.
func DeviceNameFromUA(userAgent string) string {
	if userAgent == "" {
		return "Unknown device"
	}

	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "iphone"):
		return "iPhone"
	case strings.Contains(ua, "ipad"):
		return "iPad"
	case strings.Contains(ua, "android") && strings.Contains(ua, "tablet") && !strings.Contains(ua, "mobile"):
		return "Android tablet"
	case strings.Contains(ua, "android"):
		return "Android phone"
	case strings.Contains(ua, "macintosh"):
		return "Mac"
	case strings.Contains(ua, "windows"):
		return "Windows PC"
	case strings.Contains(ua, "linux"):
		return "Linux"
	default:
		return "Desktop"
	}
}

// BrowserNameFromUA derives a browser label from the raw user-agent
// string. Chrome is checked before Safari and with Edge/Opera excluded.
func BrowserNameFromUA(userAgent string) string {
	if userAgent == "" {
		return ""
	}

	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "chrome") && !strings.Contains(ua, "edg") && !strings.Contains(ua, "opr"):
		return "Chrome"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome") && !strings.Contains(ua, "edg"):
		return "Safari"
	case strings.Contains(ua, "edg"):
		return "Edge"
	case strings.Contains(ua, "opr") || strings.Contains(ua, "opera"):
		return "Opera"
	default:
		return "Browser"
	}
}
