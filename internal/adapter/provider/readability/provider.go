// Package readability extracts the headline of a news page with
// go-readability.
package readability

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/heartmarshall/newsqa-backend/internal/config"
)

// ErrNoTitle is returned when the page parsed but carried no usable title.
var ErrNoTitle = errors.New("readability: page has no title")

// ErrTooLarge is returned when the page body exceeds the configured limit.
var ErrTooLarge = errors.New("readability: page too large")

// ErrBlockedAddress is returned when the page host resolves to an address
// outside the public internet.
var ErrBlockedAddress = errors.New("readability: address not allowed")

const maxRedirects = 5

// sharedAddressSpace is the carrier-grade NAT range (RFC 6598), which
// netip does not treat as private.
var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

// Provider fetches article pages and extracts their titles.
type Provider struct {
	httpClient   *http.Client
	userAgent    string
	maxBodyBytes int64
	retryDelay   time.Duration
	log          *slog.Logger
}

// NewProvider creates a Provider from FetcherConfig.
func NewProvider(cfg config.FetcherConfig, logger *slog.Logger) *Provider {
	return &Provider{
		httpClient:   newHTTPClient(cfg),
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
		retryDelay:   500 * time.Millisecond,
		log:          logger.With("adapter", "readability"),
	}
}

// newHTTPClient checks every dialed address, so hosts that resolve to
// internal addresses and redirects into them are refused alike.
func newHTTPClient(cfg config.FetcherConfig) *http.Client {
	dialer := &net.Dialer{Timeout: cfg.Timeout}
	if !cfg.AllowPrivate {
		dialer.Control = checkDialAddress
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("readability: stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}

// checkDialAddress runs after DNS resolution with the concrete ip:port.
func checkDialAddress(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, address)
	}
	ip, err := netip.ParseAddr(host)
	if err != nil || !isPublicAddr(ip) {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, host)
	}
	return nil
}

func isPublicAddr(ip netip.Addr) bool {
	ip = ip.Unmap()
	switch {
	case !ip.IsValid(),
		ip.IsUnspecified(),
		ip.IsLoopback(),
		ip.IsPrivate(),
		ip.IsLinkLocalUnicast(),
		ip.IsLinkLocalMulticast(),
		ip.IsInterfaceLocalMulticast(),
		ip.IsMulticast(),
		sharedAddressSpace.Contains(ip):
		return false
	}
	return true
}

// FetchTitle downloads rawURL and returns the readable title of the page.
func (p *Provider) FetchTitle(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("readability: parse url: %w", err)
	}

	p.log.DebugContext(ctx, "readability request", slog.String("url", rawURL))

	body, err := p.fetch(ctx, rawURL)
	if err != nil {
		p.log.WarnContext(ctx, "readability request failed", slog.String("url", rawURL), slog.String("error", err.Error()))
		return "", err
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		return "", fmt.Errorf("readability: extract: %w", err)
	}

	title := strings.Join(strings.Fields(article.Title), " ")
	if title == "" {
		return "", ErrNoTitle
	}

	p.log.DebugContext(ctx, "readability title", slog.String("url", rawURL), slog.String("title", title))
	return title, nil
}

func (p *Provider) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("readability: create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := p.doWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("readability: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("readability: unexpected status %d", resp.StatusCode)
	}

	if resp.ContentLength > p.maxBodyBytes {
		return nil, ErrTooLarge
	}

	// One extra byte tells a body of exactly the limit from a truncated one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("readability: read body: %w", err)
	}
	if int64(len(body)) > p.maxBodyBytes {
		return nil, ErrTooLarge
	}

	return body, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	if errors.Is(err, ErrBlockedAddress) {
		return nil, err
	}

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "readability retry", slog.String("url", req.URL.String()), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.httpClient.Do(req)
}
