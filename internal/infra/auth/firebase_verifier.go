package auth

import (
	"context"
	"log/slog"
	"strings"

	"profilecard/config"
	"profilecard/internal/domain/entity"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// adminClaim is the Firebase custom claim that marks an admin account.
const adminClaim = "admin"

// idTokenVerifier is the part of the Firebase auth client the verifier needs.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseVerifier accepts Firebase ID tokens of users that either carry the
// admin custom claim or whose email is listed in auth.admins.
type firebaseVerifier struct {
	client      idTokenVerifier
	adminEmails map[string]struct{}
	logger      *slog.Logger
}

// NewFirebaseVerifier initialises the Firebase app from a service account file.
func NewFirebaseVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firebaseVerifier, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase is not configured")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return newFirebaseVerifier(client, cfg.Auth, logger), nil
}

func newFirebaseVerifier(client idTokenVerifier, authCfg *config.AuthConfig, logger *slog.Logger) *firebaseVerifier {
	emails := make(map[string]struct{})
	if authCfg != nil {
		for _, admin := range authCfg.Admins {
			emails[strings.ToLower(admin.Email)] = struct{}{}
		}
	}

	return &firebaseVerifier{
		client:      client,
		adminEmails: emails,
		logger:      logger,
	}
}

// VerifyAdmin verifies the ID token with Firebase and checks admin rights.
func (v *firebaseVerifier) VerifyAdmin(ctx context.Context, bearerToken string) (*entity.AdminIdentity, error) {
	token, err := v.client.VerifyIDToken(ctx, bearerToken)
	if err != nil {
		v.logger.Debug("Firebase ID token rejected", slog.Any("error", err))

		return nil, ErrInvalidToken
	}

	email, _ := token.Claims["email"].(string)
	isAdmin, _ := token.Claims[adminClaim].(bool)
	if !isAdmin {
		_, isAdmin = v.adminEmails[strings.ToLower(email)]
	}
	if !isAdmin {
		return nil, ErrNotAdmin
	}

	return &entity.AdminIdentity{
		Subject: token.UID,
		Email:   email,
		Roles:   entity.Roles{entity.RoleAdmin},
	}, nil
}
