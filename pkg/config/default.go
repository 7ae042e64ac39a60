package config

const (
	DefaultRetries     = 1
	DefaultTimeout     = 10
	DefaultConcurrency = 25
)
