package middleware

import (
	"crypto/subtle"
	"net/http"

	"innkeep/config"
	"innkeep/infras/jwt"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/transport/http/response"

	"github.com/rs/zerolog/log"
)

// CronToken guards the scheduler-facing endpoints with a shared bearer
// token. An empty configured token disables the endpoints entirely.
func CronToken(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if cfg.Cron.Token == "" {
				log.Warn().Msg("Cron endpoint hit but no cron token is configured")
				response.WithError(writer, failure.Unauthorized("cron endpoints are disabled"))

				return
			}

			token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
			if err != nil {
				response.WithError(writer, failure.Unauthorized("missing cron token"))

				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Cron.Token)) != 1 {
				response.WithError(writer, failure.Unauthorized("invalid cron token"))

				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
