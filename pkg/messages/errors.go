package messages

import "errors"

var (
	ErrFailedToParseYAML   = errors.New("failed to parse YAML catalog")
	ErrInvalidCatalog      = errors.New("invalid message catalog")
	ErrFailedToReadCatalog = errors.New("failed to read embedded catalog")
	ErrUnsupportedLanguage = errors.New("language not supported")
)
