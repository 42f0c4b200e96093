package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/read-config/internal/document"
	"github.com/eugenenazirov/read-config/internal/source"
)

// binding maps a logical key to the fields it is composed from.
type binding struct {
	key    string
	fields []string
}

// bindings is kept in the order keys are listed to users.
var bindings = []binding{
	{key: KeyAPIKey, fields: []string{FieldAppID, FieldAppKey}},
	{key: KeyBaseURL, fields: []string{FieldBaseURL}},
	{key: KeyModel, fields: []string{FieldModel}},
	{key: KeyAppID, fields: []string{FieldAppID}},
	{key: KeyAppKey, fields: []string{FieldAppKey}},
	{key: KeyDuration, fields: []string{FieldDefaultDuration}},
}

// credentialSeparator joins AppID and AppKey for the api_key lookup.
const credentialSeparator = ":"

type documentResolver struct {
	source source.Source
	logger *zap.Logger
}

// New creates a Resolver reading fields from src.
func New(src source.Source, logger *zap.Logger) Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &documentResolver{
		source: src,
		logger: logger,
	}
}

// Keys returns the supported logical keys.
func Keys() []string {
	keys := make([]string, 0, len(bindings))
	for _, b := range bindings {
		keys = append(keys, b.key)
	}
	return keys
}

// SupportedKeys returns the supported keys as a comma-separated list.
func SupportedKeys() string {
	return strings.Join(Keys(), ", ")
}

// Resolve checks the document exists, validates key, then reads and composes the value.
// Fields missing from the document resolve to empty strings.
func (r *documentResolver) Resolve(ctx context.Context, key string) (string, error) {
	if err := r.source.Exists(); err != nil {
		return "", wrapSourceError(r.source.Location(), err)
	}

	b, ok := findBinding(key)
	if !ok {
		return "", fmt.Errorf("%w %q (supported keys: %s)", ErrUnsupportedKey, key, SupportedKeys())
	}

	data, err := r.source.Read(ctx)
	if err != nil {
		return "", wrapSourceError(r.source.Location(), err)
	}

	doc := document.Parse(data)
	if doc.Mode() == document.ModeLineScan {
		r.logger.Debug("document is not valid YAML, using line scan",
			zap.String("path", r.source.Location()),
			zap.Error(doc.DecodeError()),
		)
	}

	values := make([]string, 0, len(b.fields))
	for _, field := range b.fields {
		value, present := doc.Field(field)
		if !present {
			r.logger.Debug("field not declared",
				zap.String("key", key),
				zap.String("field", field),
			)
		}
		values = append(values, value)
	}

	return strings.Join(values, credentialSeparator), nil
}

func findBinding(key string) (binding, bool) {
	for _, b := range bindings {
		if b.key == key {
			return b, true
		}
	}
	return binding{}, false
}

func wrapSourceError(location string, err error) error {
	if errors.Is(err, source.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrConfigFileNotFound, location)
	}
	return fmt.Errorf("read %s: %w", location, err)
}
