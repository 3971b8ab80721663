package utils

import (
	"os"
	"strings"
)

// IsProductionEnvironment detects if the application is running in production
func IsProductionEnvironment() bool {
	// Check environment variables
	envVars := []string{"TESTMASTER_ENV", "ENVIRONMENT", "GO_ENV"}

	for _, envVar := range envVars {
		value := strings.ToLower(os.Getenv(envVar))
		if value == "production" || value == "prod" {
			return true
		}
	}

	// Standard HTTP ports are only bound in production deployments
	port := os.Getenv("PORT")
	return port == "443" || port == "80"
}
