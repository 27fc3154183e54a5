// Package constants holds shared string constants used across layers.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"
	// EnvProduction marks the production environment.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// AuthSchemeApplePass is the bearer scheme the wallet web-service protocol
// defines for Apple passes: "Authorization: ApplePass <token>".
const AuthSchemeApplePass = "ApplePass"

// AuthSchemeAndroidPass appears in the protocol surface of some clients but
// its token semantics are unspecified; requests using it are rejected as
// unsupported rather than guessed at.
const AuthSchemeAndroidPass = "AndroidPass"
