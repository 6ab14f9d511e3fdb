package content

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Router dispatches references of the form "scheme://rest" to the resolver
// registered for scheme, passing rest as the reference. References without a
// scheme go to the fallback resolver.
type Router struct {
	fallback Resolver
	routes   map[string]Resolver
}

// NewRouter creates a router. fallback may be nil, in which case references
// without a scheme are rejected with ErrUnsupportedScheme. Scheme names are
// matched case-insensitively.
func NewRouter(fallback Resolver, routes map[string]Resolver) *Router {
	r := &Router{
		fallback: fallback,
		routes:   make(map[string]Resolver, len(routes)),
	}
	for scheme, resolver := range routes {
		if resolver != nil {
			r.routes[strings.ToLower(scheme)] = resolver
		}
	}
	return r
}

// Open implements Resolver.
func (r *Router) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	resolver, rest, err := r.route(ref)
	if err != nil {
		return nil, err
	}
	return resolver.Open(ctx, rest)
}

// Size implements Resolver.
func (r *Router) Size(ctx context.Context, ref string) (int64, error) {
	resolver, rest, err := r.route(ref)
	if err != nil {
		return 0, err
	}
	return resolver.Size(ctx, rest)
}

// MIMEType implements Resolver.
func (r *Router) MIMEType(ctx context.Context, ref string) (string, error) {
	resolver, rest, err := r.route(ref)
	if err != nil {
		return "", err
	}
	return resolver.MIMEType(ctx, rest)
}

func (r *Router) route(ref string) (Resolver, string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, "", ErrInvalidRef
	}

	scheme, rest, found := strings.Cut(ref, "://")
	if !found {
		if r.fallback == nil {
			return nil, "", fmt.Errorf("%w: reference %q has no scheme", ErrUnsupportedScheme, ref)
		}
		return r.fallback, ref, nil
	}

	resolver, ok := r.routes[strings.ToLower(scheme)]
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
	return resolver, rest, nil
}
