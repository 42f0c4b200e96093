package lookup

import "context"

// Field names as they appear in the configuration document.
const (
	FieldAppID           = "AppID"
	FieldAppKey          = "AppKey"
	FieldBaseURL         = "BaseURL"
	FieldModel           = "Model"
	FieldDefaultDuration = "DefaultDuration"
)

// Logical keys accepted on the command line.
const (
	KeyAPIKey   = "api_key"
	KeyBaseURL  = "base_url"
	KeyModel    = "model"
	KeyAppID    = "app_id"
	KeyAppKey   = "app_key"
	KeyDuration = "duration"
)

// DefaultConfigFile is consulted when no document path is given.
const DefaultConfigFile = "video_generation_config.yaml"

// Resolver describes the behaviour required to turn a logical key into its value.
type Resolver interface {
	Resolve(ctx context.Context, key string) (string, error)
}
