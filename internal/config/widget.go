package config

import "time"

const (
	DefaultWidgetAPIURL  = "http://localhost:8001/api/chat"
	DefaultWidgetUserID  = "default_user"
	DefaultGreetingDelay = 600 * time.Millisecond
)

// GetWidgetAPIURL returns the chat endpoint the widget posts to
func GetWidgetAPIURL() string {
	return GetEnvOrDefault("SOULNEST_API_URL", DefaultWidgetAPIURL)
}

func GetWidgetLogFile() string {
	return GetEnvOrDefault("SOULNEST_LOG_FILE", "soulnest-widget.log")
}
