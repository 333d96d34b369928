package main

import (
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/config"
	"admin.townguide.app/cmd/console/internal/dtos"
	"admin.townguide.app/internal/models"
)

func (app *Application) authRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("POST /%s/auth/magiclink", prefix),
		app.magicLinkHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/auth/verify", prefix),
		app.verifyHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/auth/signout", prefix),
		app.services.Auth.Access(app.signOutHandler),
	)
}

// magicLinkHandler mails a one-time sign-in link to the given address.
func (app *Application) magicLinkHandler(w http.ResponseWriter, r *http.Request) {
	var magicLinkDto dtos.MagicLinkDto

	err := httptools.ReadForm(r, &magicLinkDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	if ok, errs := magicLinkDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	err = app.services.Auth.SendMagicLink(magicLinkDto.Email)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// verifyHandler is the target of the mailed link. It exchanges the one-time
// token for a session and sets the cookies.
func (app *Application) verifyHandler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	accessToken, refreshToken, err := app.services.Auth.VerifyMagicLink(token)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	secure := app.config.Env == config.ProdEnv
	accessTokenCookie, err := app.services.Auth.CreateCookie(
		models.AccessScope,
		*accessToken,
		app.config.AccessExpiry,
		secure,
	)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	http.SetCookie(w, accessTokenCookie)

	refreshTokenCookie, err := app.services.Auth.CreateCookie(
		models.RefreshScope,
		*refreshToken,
		app.config.RefreshExpiry,
		secure,
	)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	http.SetCookie(w, refreshTokenCookie)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *Application) signOutHandler(w http.ResponseWriter, r *http.Request) {
	accessToken, _ := r.Cookie("accessToken")
	refreshToken, _ := r.Cookie("refreshToken")

	secure := app.config.Env == config.ProdEnv
	deleteAccessTokenCookie, deleteRefreshTokenCookie, err := app.services.Auth.SignOut(
		accessToken.Value,
		secure,
	)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, deleteAccessTokenCookie)

	if refreshToken != nil {
		http.SetCookie(w, deleteRefreshTokenCookie)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
