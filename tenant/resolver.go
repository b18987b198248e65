package tenant

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Resolver extracts a tenant identifier from an HTTP request.
type Resolver interface {
	// Resolve returns the tenant identifier found in the request, or an
	// empty string when the request carries none. An error means the
	// request was malformed, not that the identifier was absent.
	Resolve(r *http.Request) (string, error)
}

// ResolverFunc adapts an ordinary function to the Resolver interface.
type ResolverFunc func(r *http.Request) (string, error)

func (f ResolverFunc) Resolve(r *http.Request) (string, error) {
	return f(r)
}

// SubdomainResolver extracts the tenant identifier from the request host,
// e.g. "acme" from "acme.example.com".
type SubdomainResolver struct {
	// Suffix is the base domain to strip, including the leading dot
	// (e.g. ".example.com"). When empty, the first host label is used as
	// long as the host has at least three labels.
	Suffix string
}

// NewSubdomainResolver creates a subdomain resolver for the given suffix.
func NewSubdomainResolver(suffix string) *SubdomainResolver {
	return &SubdomainResolver{Suffix: suffix}
}

func (sr *SubdomainResolver) Resolve(req *http.Request) (string, error) {
	host := req.Host
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	// A bare domain or domain.tld has no subdomain to extract.
	if strings.Count(host, ".") < 2 {
		return "", nil
	}

	if sr.Suffix != "" {
		if !strings.HasSuffix(host, sr.Suffix) {
			return "", nil
		}
		host = strings.TrimSuffix(host, sr.Suffix)
	}

	label, _, _ := strings.Cut(host, ".")
	if label == "www" || label == "" {
		return "", nil
	}
	return label, nil
}

// HeaderResolver reads the tenant identifier from an HTTP header.
type HeaderResolver struct {
	HeaderName string
}

// NewHeaderResolver creates a header resolver; defaults to "X-Tenant-ID".
func NewHeaderResolver(headerName string) *HeaderResolver {
	if headerName == "" {
		headerName = "X-Tenant-ID"
	}
	return &HeaderResolver{HeaderName: headerName}
}

func (hr *HeaderResolver) Resolve(req *http.Request) (string, error) {
	return req.Header.Get(hr.HeaderName), nil
}

// PathResolver extracts the tenant identifier from a URL path segment,
// e.g. position 2 yields "acme" from "/tenants/acme/dashboard".
type PathResolver struct {
	// Position is 1-based.
	Position int
}

// NewPathResolver creates a path resolver for the given 1-based position.
func NewPathResolver(position int) *PathResolver {
	return &PathResolver{Position: position}
}

func (pr *PathResolver) Resolve(req *http.Request) (string, error) {
	if pr.Position < 1 {
		return "", errors.New("tenant: invalid path position")
	}

	path := strings.Trim(req.URL.Path, "/")
	if path == "" {
		return "", nil
	}

	parts := strings.Split(path, "/")
	if pr.Position > len(parts) {
		return "", nil
	}
	return parts[pr.Position-1], nil
}

// QueryResolver reads the tenant identifier from a URL query parameter.
// Useful for webhook endpoints where headers and subdomains are not under
// the caller's control.
type QueryResolver struct {
	Param string
}

// NewQueryResolver creates a query resolver; defaults to "tenant".
func NewQueryResolver(param string) *QueryResolver {
	if param == "" {
		param = "tenant"
	}
	return &QueryResolver{Param: param}
}

func (qr *QueryResolver) Resolve(req *http.Request) (string, error) {
	return req.URL.Query().Get(qr.Param), nil
}

// CompositeResolver tries multiple resolvers in order and returns the first
// non-empty identifier.
type CompositeResolver struct {
	Resolvers []Resolver
}

// NewCompositeResolver creates a composite resolver over the given resolvers.
func NewCompositeResolver(resolvers ...Resolver) *CompositeResolver {
	return &CompositeResolver{Resolvers: resolvers}
}

func (cr *CompositeResolver) Resolve(r *http.Request) (string, error) {
	var errs []error
	for _, resolver := range cr.Resolvers {
		id, err := resolver.Resolve(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if id != "" {
			return id, nil
		}
	}
	if len(errs) > 0 {
		return "", fmt.Errorf("tenant: composite resolver: %w", errors.Join(errs...))
	}
	return "", nil
}
