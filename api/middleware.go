package api

import (
	"errors"
	"strings"
	"time"

	"kucukaslan/interactions/domain"
	"kucukaslan/interactions/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

const actorLocalsKey = "actor_id"

// RequestLogger tags every request with an id, exposes a request-scoped logger
// through fiber locals and the user context, and logs the outcome.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		id := strings.Clone(strings.TrimSpace(c.Get(RequestIDHeader)))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)

		l := logger.Log.With().Str("request_id", id).Logger()
		c.Locals(logger.LocalsKey, &l)
		c.SetUserContext(logger.WithRequestID(c.UserContext(), id))

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fErr *fiber.Error
			if errors.As(err, &fErr) {
				status = fErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		event := l.Info()
		if status >= fiber.StatusInternalServerError {
			event = l.Error().Err(err)
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// RequireActor authenticates an HS256 bearer token and stores its subject as
// the acting user. When issuer is set the token's iss claim must match it.
func RequireActor(secret, issuer string) fiber.Handler {
	key := []byte(secret)
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(30 * time.Second),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		raw, ok := strings.CutPrefix(header, "Bearer ")
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			return writeError(c, domain.ErrUnauthorized("missing bearer token"))
		}

		claims := &jwt.RegisteredClaims{}
		if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return key, nil
		}); err != nil {
			logger.FromFiber(c).Debug().Err(err).Msg("bearer token rejected")
			return writeError(c, domain.ErrUnauthorized("invalid bearer token"))
		}

		subject := strings.TrimSpace(claims.Subject)
		if subject == "" {
			return writeError(c, domain.ErrUnauthorized("token has no subject"))
		}
		c.Locals(actorLocalsKey, subject)
		return c.Next()
	}
}

// ActorID returns the authenticated actor of the request, or "".
func ActorID(c *fiber.Ctx) string {
	id, _ := c.Locals(actorLocalsKey).(string)
	return id
}
