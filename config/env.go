package config

import (
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/spf13/viper"
)

// Env is a structure containing the env variables
type Env struct {
	Port                     string        `mapstructure:"PORT" validate:"required,numeric"`
	DatabaseURL              string        `mapstructure:"DATABASE_URL" validate:"required"`
	DatabaseName             string        `mapstructure:"DATABASE_NAME" validate:"required"`
	SessionSecret            string        `mapstructure:"SESSION_SECRET" validate:"required"`
	SessionTokenExpires      time.Duration `mapstructure:"SESSION_TOKEN_EXPIRED_IN" validate:"required"`
	ResendAPIKey             string        `mapstructure:"RESEND_API_KEY" validate:"required"`
	EmailFrom                string        `mapstructure:"EMAIL_FROM" validate:"required,email"`
	RedisRatelimiterUsername string        `mapstructure:"REDIS_RATELIMITER_USERNAME"`
	RedisRatelimiterPassword string        `mapstructure:"REDIS_RATELIMITER_PASSWORD"`
	RedisRatelimiterHost     string        `mapstructure:"REDIS_RATELIMITER_HOST" validate:"required"`
	RedisRatelimiterPort     int           `mapstructure:"REDIS_RATELIMITER_PORT" validate:"required,number"`
	FCMCredentialsFile       string        `mapstructure:"FCM_CREDENTIALS_FILE"`
	DefaultMobileNumber      string        `mapstructure:"DEFAULT_MOBILE_NUMBER"`
	FrontendURL              string        `mapstructure:"FRONTEND_URL" validate:"required,url"`
	DevEnv                   string        `mapstructure:"DEV_ENV" validate:"required,oneof=DEV PROD TEST"`
}

// Load the env variables from the file and the enviroment
func (e *Env) Load(path ...string) {
	if len(path) == 0 {
		viper.AddConfigPath(".")
		viper.SetConfigFile(".env")
	} else {
		viper.AddConfigPath(path[0])
		viper.SetConfigName(".env")
		viper.SetConfigType("env")
	}
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		logger.Error(err)
	}

	err = viper.Unmarshal(&e)
	if err != nil {
		logger.Errorf(err)
	}

	logger.Validatef(e)
}
