// Package config contains the configuration of the platform
package config

// DevEnv denotes the enviroment the server is running on
type DevEnv string

const (
	// Prod is the production enviroment
	Prod DevEnv = "PROD"
	// Dev is the development enviroment
	Dev DevEnv = "DEV"
	// Test is the testing enviroment
	Test DevEnv = "TEST"
)

// GetDevEnv returns the enviroment the server is currently running on
func GetDevEnv(env *Env) DevEnv {
	switch env.DevEnv {
	case string(Prod):
		return Prod
	case string(Dev):
		return Dev
	default:
		return Test
	}
}
