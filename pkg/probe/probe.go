// Package probe answers one question before content discovery starts:
// does anything actually speak HTTP on the ports nmap flagged. The
// verdicts only annotate the review listing; the port set itself is
// never filtered on the probe's say-so.
package probe

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/zan8in/retryablehttp"
	"github.com/zan8in/scanflow/pkg/config"
	"github.com/zan8in/scanflow/pkg/utils"
	"golang.org/x/net/context"
	"golang.org/x/net/proxy"
)

const maxDefaultBody = 2 * 1024 * 1024

type Options struct {
	Proxy       string // http(s) proxy URL
	ProxySocks  string // socks5 proxy URL
	Timeout     int    // seconds
	Retries     int
	Concurrency int
}

type Prober struct {
	options *Options
	client  *retryablehttp.Client
}

// Result is the liveness verdict for a single port.
type Result struct {
	Port       int
	URL        string
	StatusCode int
	Alive      bool
}

// Verdict renders the short annotation shown next to a review line.
func (r Result) Verdict() string {
	if r.Alive {
		return fmt.Sprintf("alive, status %d", r.StatusCode)
	}
	return "no response"
}

func New(opt *Options) (*Prober, error) {
	if opt.Timeout <= 0 {
		opt.Timeout = config.DefaultTimeout
	}
	if opt.Retries <= 0 {
		opt.Retries = config.DefaultRetries
	}
	if opt.Concurrency <= 0 {
		opt.Concurrency = config.DefaultConcurrency
	}

	po := &retryablehttp.DefaultPoolOptions
	po.Proxy = opt.Proxy
	po.Timeout = opt.Timeout
	po.Retries = opt.Retries
	po.DisableRedirects = true

	retryablehttp.InitClientPool(po)
	client, err := retryablehttp.GetPool(po)
	if err != nil {
		return nil, err
	}

	p := &Prober{options: opt, client: client}

	// 连接池不解析 socks 代理，拿到客户端后手动设置 http.Transport
	if opt.ProxySocks != "" {
		if err := p.applySocksProxy(opt.ProxySocks); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Prober) applySocksProxy(socksProxy string) error {
	socksURL, err := url.Parse(socksProxy)
	if err != nil {
		return err
	}

	dialer, err := proxy.FromURL(socksURL, proxy.Direct)
	if err != nil {
		return err
	}

	dc := dialer.(interface {
		DialContext(ctx context.Context, network, addr string) (net.Conn, error)
	})

	tlsConfig := &tls.Config{
		Renegotiation:      tls.RenegotiateOnceAsClient,
		InsecureSkipVerify: true,
		MinVersion:         tls.VersionTLS10,
	}

	p.client.HTTPClient.Transport = &http.Transport{
		DialContext:     dc.DialContext,
		TLSClientConfig: tlsConfig,
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			// upgrade proxy connection to tls
			conn, err := dc.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			return tls.Client(conn, tlsConfig), nil
		},
	}
	return nil
}

// Probe checks the discovered ports concurrently and reports liveness
// keyed by port. Each port is probed with the protocol rule content
// discovery will use: https for 443, http for everything else.
func (p *Prober) Probe(target string, ports []int) map[int]Result {
	results := make(map[int]Result, len(ports))

	var m sync.Mutex
	var wg sync.WaitGroup

	pool, _ := ants.NewPoolWithFunc(p.options.Concurrency, func(i interface{}) {
		defer wg.Done()

		port := i.(int)
		result := p.checkPort(target, port)

		m.Lock()
		results[port] = result
		m.Unlock()
	})
	defer pool.Release()

	for _, port := range ports {
		wg.Add(1)
		_ = pool.Invoke(port)
	}
	wg.Wait()

	return results
}

func (p *Prober) checkPort(target string, port int) Result {
	protocol := "http"
	if port == 443 {
		protocol = "https"
	}
	probeURL := fmt.Sprintf("%s://%s:%d", protocol, target, port)

	statusCode, err := p.get(probeURL)
	if err != nil {
		return Result{Port: port, URL: probeURL, StatusCode: -1}
	}
	return Result{Port: port, URL: probeURL, StatusCode: statusCode, Alive: true}
}

func (p *Prober) get(target string) (int, error) {
	req, err := retryablehttp.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return 0, err
	}

	req.Header.Add("User-Agent", utils.RandomUA())

	resp, err := p.client.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return 0, err
	}
	defer resp.Body.Close()

	// drain so the pooled connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDefaultBody))

	return resp.StatusCode, nil
}
