package jwtx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	// WellKnownJWKSPath is where issuers publish their key set.
	WellKnownJWKSPath = "/.well-known/jwks.json"

	// DefaultFetchTimeout bounds the JWKS fetch; it sits on the critical
	// path of every first request after a cold start.
	DefaultFetchTimeout = 5 * time.Second

	// DefaultRefreshInterval is the minimum gap between re-fetches
	// triggered by an unknown kid.
	DefaultRefreshInterval = time.Minute
)

var (
	// ErrUnknownKID reports a kid that is not in the issuer's key set.
	ErrUnknownKID = errors.New("jwtx: unknown kid")

	// ErrKeyFetch wraps transient JWKS fetch failures (network, HTTP
	// status, malformed payload). Callers should surface it as a
	// service-unavailable condition rather than an auth failure.
	ErrKeyFetch = errors.New("jwtx: jwks fetch failed")
)

// JWKSURLForIssuer derives the published key-set URL from an issuer.
func JWKSURLForIssuer(issuer string) string {
	return strings.TrimRight(issuer, "/") + WellKnownJWKSPath
}

// KeyCacheOptions configures a KeyCache. Zero values get sane defaults.
type KeyCacheOptions struct {
	// JWKSURL is the key-set endpoint. Required.
	JWKSURL string

	// HTTPClient performs the fetch. Defaults to a client with
	// DefaultFetchTimeout.
	HTTPClient *http.Client

	// RefreshInterval rate-limits re-fetches caused by unknown kids, so a
	// flood of bogus tokens cannot hammer the issuer. Defaults to
	// DefaultRefreshInterval.
	RefreshInterval time.Duration
}

// KeyCache fetches and memoizes the issuer's public signing keys.
//
// The set is fetched lazily on first use; concurrent callers arriving before
// the cache is populated share a single in-flight fetch. Once populated, the
// set is held for the process lifetime, except that a lookup for an unknown
// kid triggers one rate-limited re-fetch before failing. That re-fetch is
// what recovers from provider key rotation without a restart.
//
// The mutex covers only the map read/swap, never the network call.
type KeyCache struct {
	url     string
	client  *http.Client
	group   singleflight.Group
	refresh *rate.Limiter

	mu   sync.RWMutex
	keys map[string]any // kid -> *rsa.PublicKey | *ecdsa.PublicKey; nil until first fetch
}

// NewKeyCache returns an empty cache for the given options.
func NewKeyCache(opts KeyCacheOptions) *KeyCache {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}

	interval := opts.RefreshInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return &KeyCache{
		url:     opts.JWKSURL,
		client:  client,
		refresh: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Lookup resolves a public key by its kid, fetching the key set first if the
// cache is empty. An unknown kid in a populated cache re-fetches at most once
// per refresh interval before returning ErrUnknownKID.
func (c *KeyCache) Lookup(ctx context.Context, kid string) (any, error) {
	key, found, populated := c.get(kid)
	if found {
		return key, nil
	}

	if populated {
		// Possibly a rotated key we have not seen. Tokens signed by a
		// key we will never know also land here, hence the limiter.
		if !c.refresh.Allow() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKID, kid)
		}
	}

	if err := c.fetch(ctx); err != nil {
		return nil, err
	}

	if key, found, _ := c.get(kid); found {
		return key, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKID, kid)
}

// Refresh forces a fetch of the key set. Used at startup to fail fast on
// unreachable or misconfigured issuers.
func (c *KeyCache) Refresh(ctx context.Context) error {
	return c.fetch(ctx)
}

// Ready reports whether a key set has been fetched and holds at least one key.
func (c *KeyCache) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys) > 0
}

func (c *KeyCache) get(kid string) (key any, found, populated bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.keys == nil {
		return nil, false, false
	}
	key, found = c.keys[kid]
	return key, found, true
}

// fetch performs one JWKS fetch shared across concurrent callers and swaps
// the parsed result in under the lock.
func (c *KeyCache) fetch(ctx context.Context) error {
	_, err, _ := c.group.Do("jwks", func() (any, error) {
		jwks, err := c.download(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyFetch, err)
		}

		parsed := make(map[string]any, len(jwks.Keys))
		for _, j := range jwks.Keys {
			key, err := publicKeyFromJWK(j)
			if err != nil {
				return nil, fmt.Errorf("%w: parsing jwk %q: %v", ErrKeyFetch, j.Kid, err)
			}
			parsed[j.Kid] = key
		}

		c.mu.Lock()
		c.keys = parsed
		c.mu.Unlock()
		return nil, nil
	})
	return err
}

func (c *KeyCache) download(ctx context.Context) (JWKS, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return JWKS{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return JWKS{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return JWKS{}, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return JWKS{}, err
	}

	var jwks JWKS
	if err := json.Unmarshal(body, &jwks); err != nil {
		return JWKS{}, fmt.Errorf("decoding jwks payload: %v", err)
	}
	if jwks.Keys == nil {
		return JWKS{}, errors.New("jwks payload has no keys list")
	}
	return jwks, nil
}
