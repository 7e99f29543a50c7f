package cmd

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	PushWebhookURL     string
	SMSEndpointURL     string
	EligibilityBaseURL string
	NotifyTimeoutSecs  int
	NotifyRetryLimit   int
}
