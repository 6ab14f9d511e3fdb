package messages

import (
	"strings"

	"golang.org/x/text/language"
)

// Match picks the best supported language for the given preferences. Each
// argument may be a single tag ("es-MX") or an Accept-Language header value
// ("fr-CA,fr;q=0.9,en;q=0.5"). Unparseable input is skipped; with no usable
// preference the default language is returned.
func (c *Catalog) Match(prefs ...string) string {
	var tags []language.Tag
	for _, pref := range prefs {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return c.defaultLang
	}

	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return c.defaultLang
	}
	return c.languages[index]
}
