package handlers

import (
	"html/template"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var authorizeView = template.Must(template.New("authorize").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Vincular cuenta - Pancitos DevC</title>
</head>
<body>
  <h1>Pancitos DevC</h1>
  <p>Confirma para vincular tu cuenta de Messenger.</p>
  <a href="{{.RedirectURI}}">Confirmar</a>
</body>
</html>
`))

type authorizeViewData struct {
	RedirectURI string
}

// HandleAuthorize renders the account linking consent view. The confirm
// link is the caller-supplied redirect URI with a fresh authorization code
// appended, as the linking flow requires.
func (b *Bot) HandleAuthorize(c *fiber.Ctx) error {
	linkingToken := c.Query("account_linking_token")
	redirectURI := c.Query("redirect_uri")

	if linkingToken == "" || redirectURI == "" {
		slog.Warn("Authorize request missing parameters",
			"hasToken", linkingToken != "",
			"hasRedirect", redirectURI != "",
		)
		return c.Status(fiber.StatusBadRequest).SendString("missing account_linking_token or redirect_uri")
	}

	authCode := uuid.NewString()
	slog.Info("Rendering account linking view",
		"serverURL", b.cfg.ServerURL,
		"linkingToken", linkingToken,
		"authorizationCode", authCode,
	)

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return authorizeView.Execute(c, authorizeViewData{
		RedirectURI: redirectURI + "&authorization_code=" + authCode,
	})
}
