// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsprobe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPort is assumed whenever the target omits an explicit port.
const DefaultPort uint16 = 443

var (
	// ErrInvalidTarget indicates an endpoint string no parse rule accepted.
	ErrInvalidTarget = errors.New("tlsprobe: invalid target")

	// ErrNoAddresses indicates a hostname that resolved to zero addresses.
	ErrNoAddresses = errors.New("tlsprobe: hostname resolved to no addresses")
)

// Target is a parsed endpoint: a hostname or literal IP plus a port.
type Target struct {
	Host string
	Port uint16
}

// Addr renders the target as a dialable host:port string.
func (t Target) Addr() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(int(t.Port)))
}

// IsIP reports whether the host is a literal IP address.
func (t Target) IsIP() bool {
	_, err := netip.ParseAddr(t.Host)
	return err == nil
}

// ParseTarget interprets an endpoint string. Rules apply in order, first
// match wins:
//
//  1. a literal address:port (including bracketed IPv6) is taken as-is
//  2. a URL with a scheme contributes its hostname and port, defaulting
//     to [DefaultPort] when the URL has none
//  3. otherwise the string splits on the last colon into host and port,
//     or stands alone as a hostname on [DefaultPort]
//
// No network I/O happens here; resolution is a separate step.
func ParseTarget(input string) (Target, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Target{}, fmt.Errorf("%w: empty input", ErrInvalidTarget)
	}

	if ap, err := netip.ParseAddrPort(input); err == nil {
		return Target{Host: ap.Addr().String(), Port: ap.Port()}, nil
	}

	if u, err := url.Parse(input); err == nil && u.Scheme != "" && u.Host != "" {
		port := DefaultPort
		if p := u.Port(); p != "" {
			n, err := strconv.ParseUint(p, 10, 16)
			if err != nil {
				return Target{}, fmt.Errorf("%w: bad port %q", ErrInvalidTarget, p)
			}
			port = uint16(n)
		}
		return Target{Host: u.Hostname(), Port: port}, nil
	}

	if host, p, err := net.SplitHostPort(input); err == nil {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Target{}, fmt.Errorf("%w: bad port %q", ErrInvalidTarget, p)
		}
		return Target{Host: host, Port: uint16(n)}, nil
	}

	if strings.ContainsAny(input, "/ ") {
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, input)
	}

	return Target{Host: input, Port: DefaultPort}, nil
}

// Resolve looks up the target host and returns the first address. Literal
// IP hosts short-circuit without a lookup.
func Resolve(ctx context.Context, host string) (string, error) {
	if addr, err := netip.ParseAddr(host); err == nil {
		return addr.String(), nil
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return "", fmt.Errorf("tlsprobe: resolving %q: %w", host, err)
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoAddresses, host)
	}
	return addrs[0].IP.String(), nil
}
