package connect

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/thelifesavers/backend/config"
	"google.golang.org/api/option"
)

// InitMessaging is a function that is used to initialize the push notification
// gateway client; the gateway is optional, notification endpoints fail with
// a server error when no credentials are configured
func (c *Connector) InitMessaging(env *config.Env) {
	if env.FCMCredentialsFile == "" {
		logger.Log("No FCM credentials configured, push notifications are disabled")
		return
	}

	ctx := context.Background()

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(env.FCMCredentialsFile))
	if err != nil {
		logger.Error(err)
		return
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		logger.Error(err)
		return
	}

	c.Messaging = client
}
