package auth

import (
	"context"
	"errors"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"github.com/knsalim/paanshop-api/configs"
)

// NewApp builds the Firebase app shared by the token verifier and the
// Firestore client. Credentials are the raw service-account JSON from the
// environment, no file on disk.
func NewApp(ctx context.Context, cfg configs.Config) (*firebase.App, error) {
	if cfg.FirebaseCredentialsJSON == "" {
		return nil, errors.New("FIREBASE_CREDENTIALS_JSON must be set")
	}
	if cfg.FirebaseProjectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON))
	config := &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	return firebase.NewApp(ctx, config, opt)
}

// Identity is what the identity provider vouches for after verifying an ID
// token.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// Verifier checks a client-supplied ID token and returns the identity it
// carries. Tests substitute a stub; production uses Firebase.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (Identity, error)
}

type firebaseVerifier struct {
	client    *fbauth.Client
	projectID string
}

func NewFirebaseVerifier(ctx context.Context, app *firebase.App, projectID string) (Verifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &firebaseVerifier{client: client, projectID: projectID}, nil
}

// Verify validates the token and checks it has not been revoked, then
// double-checks the audience against our project.
func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (Identity, error) {
	token, err := v.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return Identity{}, err
	}
	if token.Audience != v.projectID {
		return Identity{}, errors.New("invalid token audience")
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	return Identity{UID: token.UID, Email: email, Name: name}, nil
}
