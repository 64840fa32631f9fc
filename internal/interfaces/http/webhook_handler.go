package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	svix "github.com/svix/svix-webhooks/go"

	"github.com/vinsa/company-registry/internal/application/auth"
	"github.com/vinsa/company-registry/internal/application/dto"
	"github.com/vinsa/company-registry/internal/domain"
	"github.com/vinsa/company-registry/internal/infrastructure/clerk"
	"github.com/vinsa/company-registry/pkg/logger"
)

// WebhookHandler receives Clerk events signed with Svix.
type WebhookHandler struct {
	sync       *auth.UseCase
	secret     string
	production bool
	log        *logger.Logger
}

func NewWebhookHandler(sync *auth.UseCase, secret string, production bool, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{sync: sync, secret: secret, production: production, log: log}
}

// HandleClerk verifies the Svix signature and applies the event. Webhook
// responses are always 200 once the signature checks out, even when
// applying the event fails, so the provider does not retry forever; the
// failure is logged instead. Without a configured secret the endpoint
// answers 200 without processing in development and refuses to run in
// production.
func (h *WebhookHandler) HandleClerk(c *fiber.Ctx) error {
	if h.secret == "" {
		if h.production {
			return fail(c, fiber.StatusServiceUnavailable, "Webhook secret not configured", nil)
		}
		h.log.Warn().Msg("webhook received without configured secret, skipping processing")
		return ok(c, dto.Envelope{Message: "Webhook endpoint ready (secret not configured for development)"})
	}

	svixID := c.Get("svix-id")
	svixTimestamp := c.Get("svix-timestamp")
	svixSignature := c.Get("svix-signature")
	if svixID == "" || svixTimestamp == "" || svixSignature == "" {
		return fail(c, fiber.StatusBadRequest, "Missing required Svix headers", nil)
	}

	wh, err := svix.NewWebhook(h.secret)
	if err != nil {
		return err
	}
	headers := nethttp.Header{}
	headers.Set("svix-id", svixID)
	headers.Set("svix-timestamp", svixTimestamp)
	headers.Set("svix-signature", svixSignature)
	if err := wh.Verify(c.Body(), headers); err != nil {
		h.log.Warn().Err(err).Str("svix_id", svixID).Msg("webhook signature verification failed")
		return fail(c, fiber.StatusBadRequest, "Webhook verification failed", nil)
	}

	var event clerk.WebhookEvent
	if err := json.Unmarshal(c.Body(), &event); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid webhook payload", nil)
	}

	switch event.Type {
	case clerk.EventUserCreated:
		h.userCreated(c, event.Data)
	case clerk.EventUserUpdated:
		h.userUpdated(c, event.Data)
	case clerk.EventUserDeleted:
		// Deletion policy for owned companies is not decided yet, so the
		// event is acknowledged without touching stored rows.
		h.log.Info().Str("event", event.Type).Msg("user deletion webhook received, no action taken")
	default:
		h.log.Info().Str("event", event.Type).Msg("unhandled webhook event")
	}

	return ok(c, dto.Envelope{Message: "Webhook processed successfully"})
}

func (h *WebhookHandler) userCreated(c *fiber.Ctx, data json.RawMessage) {
	var wu clerk.WebhookUser
	if err := json.Unmarshal(data, &wu); err != nil {
		h.log.Error().Err(err).Msg("malformed user.created payload")
		return
	}
	_, createdNow, err := h.sync.SyncUser(c.UserContext(), wu.Profile())
	if err != nil {
		h.log.Error().Err(err).Str("clerk_id", wu.ID).Msg("webhook user sync failed")
		return
	}
	h.log.Info().Str("clerk_id", wu.ID).Bool("created", createdNow).Msg("webhook user.created applied")
}

func (h *WebhookHandler) userUpdated(c *fiber.Ctx, data json.RawMessage) {
	var wu clerk.WebhookUser
	if err := json.Unmarshal(data, &wu); err != nil {
		h.log.Error().Err(err).Msg("malformed user.updated payload")
		return
	}
	_, err := h.sync.UpdateFromProfile(c.UserContext(), wu.Profile())
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		h.log.Warn().Str("clerk_id", wu.ID).Msg("webhook user.updated for unknown user")
	case err != nil:
		h.log.Error().Err(err).Str("clerk_id", wu.ID).Msg("webhook user update failed")
	default:
		h.log.Info().Str("clerk_id", wu.ID).Msg("webhook user.updated applied")
	}
}
