// Package buildmat validates user input for a construction-materials
// management application before it reaches storage or display.
//
// The validators live in pkg/validator and are usable on their own. This
// package wires them to the rest of the kit from a single configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	kit, err := buildmat.New(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out := validator.ValidateProjectName(form.Name)
//	if !out.Accepted {
//		lang := kit.Messages.Match(r.Header.Get("Accept-Language"))
//		showError(kit.Messages.Outcome(lang, out))
//	}
//
//	img := kit.ValidateImage(ctx, form.ImageRef)
//
// Image references are resolved through a content.Router: with the local
// storage driver plain paths and "file://" references are read below
// STORAGE_LOCAL_DIR; with the s3 driver plain keys and "s3://" references are
// read from STORAGE_S3_BUCKET.
package buildmat
