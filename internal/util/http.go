package util

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"
)

// MaxDownloadBytes caps the size of a fetched body.
const MaxDownloadBytes = 32 << 20

var (
	// ErrBodyTooLarge is returned when a response body exceeds the read limit.
	ErrBodyTooLarge = errors.New("response body too large")
	// ErrForbiddenURL is returned for non-http(s) URLs and, on a public
	// getter, for addresses that are not publicly routable.
	ErrForbiddenURL = errors.New("url not allowed")
)

// Getter fetches remote resources with a size cap.
type Getter struct {
	client   *http.Client
	maxBytes int64
}

// NewGetter returns a Getter reading at most maxBytes per body. Unless
// allowPrivate is set, connections to loopback, private, link-local and
// unspecified addresses are refused at dial time.
func NewGetter(allowPrivate bool, maxBytes int64) *Getter {
	dialer := &net.Dialer{Timeout: 5 * time.Second}
	if !allowPrivate {
		dialer.Control = publicOnly
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	transport.Proxy = nil
	return &Getter{
		client:   &http.Client{Timeout: 12 * time.Second, Transport: transport},
		maxBytes: maxBytes,
	}
}

var defaultGetter = NewGetter(true, MaxDownloadBytes)

// GetBytes fetches rawURL without address restrictions.
func GetBytes(ctx context.Context, rawURL string) ([]byte, error) {
	return defaultGetter.Get(ctx, rawURL)
}

// Get performs a GET and returns the body of a 200 response.
func (g *Getter) Get(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrForbiddenURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: only http and https URLs are supported", ErrForbiddenURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	if resp.ContentLength > g.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, resp.ContentLength)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, g.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > g.maxBytes {
		return nil, fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, g.maxBytes)
	}
	return b, nil
}

func publicOnly(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip := net.ParseIP(host)
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsMulticast() {
		return fmt.Errorf("%w: %s", ErrForbiddenURL, host)
	}
	return nil
}
