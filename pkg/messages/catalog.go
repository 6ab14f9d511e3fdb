package messages

import (
	"embed"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/buildmat/pkg/logger"
)

// DefaultLanguage is used when no option overrides it.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var localesFS embed.FS

// Catalog holds the loaded translations and the language matcher.
type Catalog struct {
	translations map[string]map[string]any
	defaultLang  string
	languages    []string
	matcher      language.Matcher
	logger       *slog.Logger
	overrides    map[string]map[string]any
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a requested language or key
// is not available.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang = strings.ToLower(strings.TrimSpace(lang)); lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the logger used to report missing translations.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTranslations merges extra translations over the built-in catalog.
// The outer map is keyed by language code; new languages may be added.
func WithTranslations(translations map[string]map[string]any) Option {
	return func(c *Catalog) {
		if c.overrides == nil {
			c.overrides = make(map[string]map[string]any, len(translations))
		}
		for lang, trans := range translations {
			lang = strings.ToLower(lang)
			if existing, ok := c.overrides[lang]; ok {
				mergeTranslations(existing, trans)
				continue
			}
			c.overrides[lang] = cloneTranslations(trans)
		}
	}
}

// New loads the built-in catalog and applies the options.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		defaultLang: DefaultLanguage,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	translations, err := loadFS(localesFS, "locales")
	if err != nil {
		return nil, err
	}
	for lang, trans := range c.overrides {
		if existing, ok := translations[lang]; ok {
			mergeTranslations(existing, trans)
			continue
		}
		translations[lang] = trans
	}
	c.overrides = nil

	if _, ok := translations[c.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: default language %q", ErrUnsupportedLanguage, c.defaultLang)
	}

	c.translations = translations
	c.languages = sortedLanguages(translations, c.defaultLang)

	tags := make([]language.Tag, 0, len(c.languages))
	for _, lang := range c.languages {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCatalog, lang, err)
		}
		tags = append(tags, tag)
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

// DefaultLanguage returns the fallback language code.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Languages returns the supported language codes, default language first.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.languages)
}

// Has reports whether key is translated for lang, without fallback.
func (c *Catalog) Has(lang, key string) bool {
	_, ok := c.get(strings.ToLower(lang), key)
	return ok
}

// T translates key for lang. Arguments are key/value pairs filling %{name}
// placeholders; an odd trailing argument is ignored. Missing keys fall back
// to the default language and then to the key itself.
//
//	catalog.T("fr", "validation.too_long", "field", "Nom", "max", "100")
func (c *Catalog) T(lang, key string, args ...string) string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	tmpl, ok := c.lookup(lang, key)
	if !ok {
		return namedSprintf(key, params)
	}
	return namedSprintf(tmpl, params)
}

// lookup finds key in lang and then in the default language, logging misses.
func (c *Catalog) lookup(lang, key string) (string, bool) {
	if s, ok := c.resolve(lang, key); ok {
		return s, true
	}
	c.logger.Debug("translation not found", slog.String("lang", lang), slog.String("key", key))
	return "", false
}

func (c *Catalog) resolve(lang, key string) (string, bool) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if s, ok := c.get(lang, key); ok {
		return s, true
	}
	if lang != c.defaultLang {
		return c.get(c.defaultLang, key)
	}
	return "", false
}

func (c *Catalog) get(lang, key string) (string, bool) {
	langMap, ok := c.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := getTranslation(langMap, key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// getTranslation traverses a nested map using dot-separated keys.
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}

		current, ok = next.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf substitutes %{name} placeholders; unknown names are kept.
func namedSprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func sortedLanguages(translations map[string]map[string]any, defaultLang string) []string {
	langs := make([]string, 0, len(translations))
	for lang := range translations {
		if lang != defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	return append([]string{defaultLang}, langs...)
}

func cloneTranslations(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	mergeTranslations(dst, src)
	return dst
}
