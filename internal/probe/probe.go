package probe

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/projectdiscovery/fastdialer/fastdialer"
	"github.com/projectdiscovery/gcache"
	"github.com/projectdiscovery/retryablehttp-go"

	"github.com/slicingmelon/weburl"
	"github.com/slicingmelon/weburl/internal/logger"
)

// Result is the reachability snapshot for a single host: DNS records plus
// which of the ports it tried answered, and over which scheme. Grounded on
// urlprobe.go's ProbeResult, keeping its Schemes/Ports bookkeeping.
type Result struct {
	Hostname   string
	Ports      map[string]string
	Schemes    []string
	IPv4       []string
	IPv6       []string
	CNAMEs     []string
	StatusCode int
}

// Cache memoizes Results per hostname. Grounded on urlprobe.go's
// ProbeResultsCache/gcache.New[string, *ProbeResult](1000).LRU().Build().
type Cache struct {
	sync.RWMutex
	hostResults gcache.Cache[string, *Result]
}

func NewCache() *Cache {
	return &Cache{
		hostResults: gcache.New[string, *Result](1000).
			LRU().
			Build(),
	}
}

func (c *Cache) Get(host string) (*Result, bool) {
	c.RLock()
	defer c.RUnlock()
	result, err := c.hostResults.Get(host)
	return result, err == nil
}

func (c *Cache) Store(host string, result *Result) error {
	c.Lock()
	defer c.Unlock()
	return c.hostResults.Set(host, result)
}

// Prober dials each of a URL's hostnames to confirm reachability and
// classify which scheme answered, using fastdialer the way urlprobe.go
// does (DNS lookup, then TLS-first/TCP-fallback dial per candidate port).
type Prober struct {
	dialer *fastdialer.Dialer
	client *retryablehttp.Client
	cache  *Cache
}

// NewProber builds a Prober with the same fastdialer options urlprobe.go
// configures: fallback enabled, a bounded retry count, and a small fixed
// resolver set. The HTTP confirmation step reuses request.go's
// retryablehttp.Options shape, pared down to the couple of fields a
// single status-code check needs.
func NewProber() (*Prober, error) {
	opts := fastdialer.DefaultOptions
	opts.EnableFallback = true
	opts.DialerTimeout = 10 * time.Second
	opts.DialerKeepAlive = 10 * time.Second
	opts.MaxRetries = 3
	opts.BaseResolvers = []string{
		"1.1.1.1:53", "1.0.0.1:53",
		"8.8.8.8:53", "8.8.4.4:53",
	}
	opts.WithDialerHistory = true
	opts.WithTLSData = true
	opts.OnDialCallback = func(hostname, ip string) {
		logger.Verbose().Msgf("dialer connected to %s (%s)", hostname, ip)
	}

	dialer, err := fastdialer.NewDialer(opts)
	if err != nil {
		return nil, err
	}

	retryOpts := retryablehttp.Options{
		RetryWaitMin: 1 * time.Second,
		RetryWaitMax: 5 * time.Second,
		RetryMax:     2,
		Timeout:      10 * time.Second,
		KillIdleConn: true,
		HttpClient: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}

	return &Prober{
		dialer: dialer,
		client: retryablehttp.NewClient(retryOpts),
		cache:  NewCache(),
	}, nil
}

func (p *Prober) Close() {
	p.client.HTTPClient.CloseIdleConnections()
	p.dialer.Close()
}

// Probe reports reachability for u's host. The URL's own port (if any) is
// tried exclusively; otherwise 443 then 80 are tried in turn.
func (p *Prober) Probe(ctx context.Context, u *weburl.URL) (*Result, error) {
	hostname, ok := u.Hostname()
	if !ok || hostname == "" {
		return nil, errNoHostname
	}
	if cached, ok := p.cache.Get(hostname); ok {
		return cached, nil
	}

	result := &Result{
		Hostname: hostname,
		Ports:    make(map[string]string),
		Schemes:  make([]string, 0),
	}

	if dnsData, err := p.dialer.GetDNSData(hostname); err == nil {
		result.IPv4 = dnsData.A
		result.IPv6 = dnsData.AAAA
		result.CNAMEs = dnsData.CNAME
	}

	portsToTry := []string{"443", "80"}
	if port, ok := u.Port(); ok && port != "" {
		portsToTry = []string{port}
	}

	for _, port := range portsToTry {
		hostPort := net.JoinHostPort(hostname, port)

		if conn, err := p.dialer.DialTLS(ctx, "tcp", hostPort); err == nil {
			conn.Close()
			result.Ports[port] = "https"
			addSchemeOnce(&result.Schemes, "https")
			continue
		}
		if conn, err := p.dialer.Dial(ctx, "tcp", hostPort); err == nil {
			conn.Close()
			result.Ports[port] = "http"
			addSchemeOnce(&result.Schemes, "http")
		}
	}

	if len(result.Schemes) > 0 {
		if code, err := p.confirmHTTP(ctx, u); err == nil {
			result.StatusCode = code
		} else {
			logger.Verbose().Msgf("HTTP confirmation failed for %s: %v", u.String(), err)
		}
	}

	if err := p.cache.Store(hostname, result); err != nil {
		logger.Warning().Msgf("failed to cache probe result for %s: %v", hostname, err)
	}
	return result, nil
}

// confirmHTTP issues a HEAD request against u, the same way request.go's
// NewRawRequestFromURLWithContext builds a retryablehttp.Request from a
// target URL, and reports the response status code without following
// redirects.
func (p *Prober) confirmHTTP(ctx context.Context, u *weburl.URL) (int, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodHead, u.String(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func addSchemeOnce(schemes *[]string, scheme string) {
	for _, s := range *schemes {
		if s == scheme {
			return
		}
	}
	*schemes = append(*schemes, scheme)
}

var errNoHostname = probeError("URL has no hostname to probe")

type probeError string

func (e probeError) Error() string { return string(e) }
