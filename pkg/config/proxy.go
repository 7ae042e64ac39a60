package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/zan8in/fileutil"
	"github.com/zan8in/gologger"
	"github.com/zan8in/scanflow/pkg/utils"
)

const (
	SOCKS5 = "socks5"
	HTTP   = "http"
	HTTPS  = "https"
)

var (
	// ProxyURL is the URL for the proxy server
	ProxyURL string
	// ProxySocksURL is the URL for the proxy socks server
	ProxySocksURL string
)

// LoadProxyServers loads proxy servers from a comma separated list or a
// file with one proxy per line. The first reachable proxy wins.
func LoadProxyServers(options *Options) error {
	proxy := options.Proxy
	if len(proxy) == 0 && options.Config != nil {
		proxy = options.Config.Probe.Proxy
	}
	if len(proxy) == 0 {
		return nil
	}

	var proxyURLList []url.URL

	if fileutil.FileExists(proxy) {
		lines, err := utils.ReadFileLineByLine(proxy)
		if err != nil {
			return errors.Wrap(err, "could not read proxy file")
		}
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			proxyURL, err := validateProxyURL(line)
			if err != nil {
				return err
			}
			proxyURLList = append(proxyURLList, proxyURL)
		}
	} else {
		for _, p := range strings.Split(proxy, ",") {
			if strings.TrimSpace(p) == "" {
				continue
			}
			proxyURL, err := validateProxyURL(strings.TrimSpace(p))
			if err != nil {
				return err
			}
			proxyURLList = append(proxyURLList, proxyURL)
		}
	}

	if len(proxyURLList) == 0 {
		return errors.New("could not find any valid proxy")
	}

	timeout := options.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	for _, proxyURL := range proxyURLList {
		if err := testProxyConnection(proxyURL, timeout); err != nil {
			continue
		}
		assignProxyURL(proxyURL)
		return nil
	}

	return errors.New("no reachable proxy found")
}

func testProxyConnection(proxyURL url.URL, timeoutDelay int) error {
	timeout := time.Duration(timeoutDelay) * time.Second
	_, err := net.DialTimeout("tcp", fmt.Sprintf("%s:%s", proxyURL.Hostname(), proxyURL.Port()), timeout)
	return err
}

func assignProxyURL(proxyURL url.URL) {
	if proxyURL.Scheme == HTTP || proxyURL.Scheme == HTTPS {
		ProxyURL = proxyURL.String()
		ProxySocksURL = ""
		gologger.Info().Msgf("Using %s as proxy server", proxyURL.String())
	} else if proxyURL.Scheme == SOCKS5 {
		ProxyURL = ""
		ProxySocksURL = proxyURL.String()
		gologger.Info().Msgf("Using %s as socket proxy server", proxyURL.String())
	}
}

func validateProxyURL(proxy string) (url.URL, error) {
	if url, err := url.Parse(proxy); err == nil && isSupportedProtocol(url.Scheme) {
		return *url, nil
	}
	return url.URL{}, errors.New("invalid proxy format (It should be http[s]/socks5://[username:password@]host:port), ProxyURL: " + proxy)
}

// isSupportedProtocol checks given protocols are supported
func isSupportedProtocol(value string) bool {
	return value == HTTP || value == HTTPS || value == SOCKS5
}
