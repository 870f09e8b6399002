package config

var DefaultConfig = Config{
	ListenAddr:  "127.0.0.1:8080",
	WebDir:      "web",
	LogLevel:    "info",
	OpenBrowser: true,
}
