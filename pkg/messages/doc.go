// Package messages renders validation outcomes into localized display text.
//
// Validators in pkg/validator report stable reason tags (for example
// "too_long") together with template parameters. The Catalog maps those tags
// to translated messages at the UI boundary, so validation logic never deals
// with presentation.
//
// The built-in catalog ships English, Spanish and French translations from
// embedded YAML files. Each file holds one language:
//
//	es:
//	  fields:
//	    price: "Precio"
//	  validation:
//	    negative_value: "%{field} no puede ser negativo"
//
// Keys are dot-separated paths. Placeholders use the %{name} form and are
// filled from the outcome parameters; the "field" parameter is replaced with
// the translated field label from "fields.<field>". A reason can be
// overridden per field with "validation.<field>.<reason>".
//
// # Usage
//
//	catalog, err := messages.New(messages.WithDefaultLanguage("es"))
//	if err != nil {
//		return err
//	}
//
//	lang := catalog.Match(r.Header.Get("Accept-Language"))
//	out := validator.ValidatePrice(input)
//	if !out.Accepted {
//		fmt.Println(catalog.Outcome(lang, out))
//	}
//
// When a key is missing in the requested language the default language is
// tried; when it is missing there too, the English message carried by the
// outcome is returned unchanged.
//
// A Catalog is immutable after New and safe for concurrent use.
package messages
