package utils

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/services"
)

// CheckForDataFixes is a function that checks wether one off data fixes
// should be run against the database instead of serving requests
func CheckForDataFixes(c *connect.Connector, env *config.Env) {
	fixMobileNumbers := flag.Bool("fix-mobile-numbers", false, "Rewrite invalid mobile numbers to the default fallback number")
	flag.Parse()
	if fixMobileNumbers == nil || !*fixMobileNumbers {
		return
	}

	userS := services.User{
		Conn: c,
	}

	modified, err := userS.FixInvalidMobileNumbers(context.Background(), env.DefaultMobileNumber)
	if err != nil {
		logger.Errorf(err)
	}

	logger.Log(fmt.Sprintf("Updated %d users with invalid mobile numbers", modified))
	os.Exit(0)
}
