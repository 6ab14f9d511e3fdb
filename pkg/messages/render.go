package messages

import (
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/dmitrymomot/buildmat/pkg/validator"
)

// Outcome renders a field outcome in lang. Accepted outcomes render as "".
func (c *Catalog) Outcome(lang string, o validator.Outcome) string {
	if o.Accepted {
		return ""
	}
	field := o.Params["field"]
	if field == "" {
		field = o.Field
	}
	return c.render(lang, field, o.Reason, o.Params, o.Message)
}

// Image renders an image outcome in lang. Accepted outcomes render as "".
func (c *Catalog) Image(lang string, o validator.ImageOutcome) string {
	if o.Accepted {
		return ""
	}
	return c.render(lang, "", o.Reason, o.Params, o.Message)
}

// ValidationError renders a composite validation error in lang.
func (c *Catalog) ValidationError(lang string, e validator.ValidationError) string {
	params := make(map[string]string, len(e.TranslationValues))
	for k, v := range e.TranslationValues {
		params[k] = fmt.Sprint(v)
	}
	return c.render(lang, e.Field, e.Reason, params, e.Message)
}

// ValidationErrors renders every error in errs, grouped by field.
func (c *Catalog) ValidationErrors(lang string, errs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		out[e.Field] = append(out[e.Field], c.ValidationError(lang, e))
	}
	return out
}

func (c *Catalog) render(lang, field string, reason validator.Reason, params map[string]string, fallback string) string {
	tmpl, ok := c.reasonTemplate(strings.ToLower(strings.TrimSpace(lang)), field, reason)
	if !ok {
		c.logger.Debug("translation not found",
			slog.String("lang", lang),
			slog.String("key", reason.TranslationKey()),
		)
		return fallback
	}

	p := maps.Clone(params)
	if p == nil {
		p = make(map[string]string, 1)
	}
	if field != "" {
		if label, ok := c.resolve(lang, "fields."+field); ok {
			p["field"] = label
		}
	}
	return namedSprintf(tmpl, p)
}

// reasonTemplate prefers a field-specific template over the generic one in
// the requested language before trying the default language.
func (c *Catalog) reasonTemplate(lang, field string, reason validator.Reason) (string, bool) {
	langs := []string{lang}
	if lang != c.defaultLang {
		langs = append(langs, c.defaultLang)
	}
	for _, l := range langs {
		if field != "" {
			if s, ok := c.get(l, "validation."+field+"."+string(reason)); ok {
				return s, true
			}
		}
		if s, ok := c.get(l, reason.TranslationKey()); ok {
			return s, true
		}
	}
	return "", false
}
