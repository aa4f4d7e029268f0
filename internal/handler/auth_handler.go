package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fernandarrocha/AV2-faculdade/internal/session"
)

// LoginPageData feeds the login template.
type LoginPageData struct {
	Username string
	Error    string
}

// AuthHandler serves the login screen and the logout action.
type AuthHandler struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(sessions *session.Manager, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{sessions: sessions, logger: logger}
}

// LoginPage renders the login form. Signed-in users go straight to the
// student screen.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if h.sessions.IsAuthenticated(c.Request) {
		c.Redirect(http.StatusSeeOther, "/alunos")
		return
	}
	c.HTML(http.StatusOK, "login.html", LoginPageData{})
}

// Login validates the submitted credentials against the backend. On
// failure the form is re-rendered with the typed username retained.
func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "login.html", LoginPageData{
			Username: username,
			Error:    "Informe usuário e senha",
		})
		return
	}

	if !h.sessions.Login(c.Request.Context(), c.Request, c.Writer, username, password) {
		c.HTML(http.StatusUnauthorized, "login.html", LoginPageData{
			Username: username,
			Error:    "Usuário ou senha inválidos",
		})
		return
	}

	h.logger.Info("user signed in", zap.String("username", username))
	c.Redirect(http.StatusSeeOther, "/alunos")
}

// Logout clears the session and returns to the login screen.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c.Request, c.Writer)
	c.Redirect(http.StatusSeeOther, "/login")
}
