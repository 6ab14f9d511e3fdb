// Package content resolves opaque content references (the handles a file picker
// hands back) into readable streams and metadata.
//
// Validation code only depends on the narrow Resolver interface:
//
//	type Resolver interface {
//	    Open(ctx context.Context, ref string) (io.ReadCloser, error)
//	    Size(ctx context.Context, ref string) (int64, error)
//	    MIMEType(ctx context.Context, ref string) (string, error)
//	}
//
// Three implementations are provided:
//   - LocalResolver: references are paths confined to a base directory; the MIME
//     type is sniffed from the file's leading bytes.
//   - S3Resolver: references are object keys in one bucket of AWS S3 or an
//     S3-compatible service (MinIO, Wasabi, ...); size and MIME type come from
//     the object's metadata.
//   - Router: dispatches "scheme://rest" references to the resolver registered
//     for the scheme, e.g. "file://photos/slab.jpg" or "s3://projects/42/slab.jpg".
//
// # Errors
//
// Resolvers classify failures into the sentinel errors in errors.go so callers
// can branch with errors.Is without knowing the backend:
//
//	rc, err := resolver.Open(ctx, ref)
//	switch {
//	case errors.Is(err, content.ErrPermissionDenied):
//	    // ask the user for access again
//	case errors.Is(err, content.ErrNotFound):
//	    // reference went stale
//	}
//
// ExtensionForMIMEType maps a declared MIME type to a file extension using a
// fixed table, so results do not depend on the host's mime.types files.
package content
