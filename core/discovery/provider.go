package discovery

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/stellarlog/relay/core/logger"
)

// Getter is the consumer-side view of the dispatch client's synchronous
// GET path.
type Getter interface {
	SyncGet(ctx context.Context, url string, params, headers map[string]string) (any, int, error)
}

// Provider is one external read-only lookup service. Lookup reports
// whether the provider knows the system; every failure mode reads as
// false.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, systemName string, systemAddress int64) bool
}

// edsmProvider queries the system-by-name endpoint. A system is confirmed
// when the response is an object carrying a non-empty name field; an
// empty object or null body means unknown.
type edsmProvider struct {
	url    string
	getter Getter
	logger *slog.Logger
}

// NewEDSMProvider creates the by-name lookup provider.
func NewEDSMProvider(url string, getter Getter, log *slog.Logger) Provider {
	if log == nil {
		log = logger.Discard()
	}
	return &edsmProvider{url: url, getter: getter, logger: log}
}

func (p *edsmProvider) Name() string { return "EDSM" }

func (p *edsmProvider) Lookup(ctx context.Context, systemName string, _ int64) bool {
	if systemName == "" {
		return false
	}

	params := map[string]string{
		"systemName":      systemName,
		"showInformation": "1",
		"showPrimaryStar": "1",
	}

	body, _, err := p.getter.SyncGet(ctx, p.url, params, nil)
	if err != nil {
		p.logger.DebugContext(ctx, "EDSM query failed",
			logger.System(systemName),
			logger.Error(err))
		return false
	}

	obj, ok := body.(map[string]any)
	if !ok || len(obj) == 0 {
		return false
	}
	name, _ := obj["name"].(string)
	return name != ""
}

// spanshProvider queries the system-by-address endpoint, with the address
// as a path segment. Confirmed when the response object carries a system
// or record key, depending on the API version.
type spanshProvider struct {
	url    string
	getter Getter
	logger *slog.Logger
}

// NewSpanshProvider creates the by-address path-segment lookup provider.
func NewSpanshProvider(url string, getter Getter, log *slog.Logger) Provider {
	if log == nil {
		log = logger.Discard()
	}
	return &spanshProvider{url: url, getter: getter, logger: log}
}

func (p *spanshProvider) Name() string { return "Spansh" }

func (p *spanshProvider) Lookup(ctx context.Context, _ string, systemAddress int64) bool {
	if systemAddress == 0 {
		return false
	}

	url := p.url + "/" + strconv.FormatInt(systemAddress, 10)

	body, _, err := p.getter.SyncGet(ctx, url, nil, nil)
	if err != nil {
		p.logger.DebugContext(ctx, "Spansh query failed",
			logger.ID("system_address", systemAddress),
			logger.Error(err))
		return false
	}

	obj, ok := body.(map[string]any)
	if !ok {
		return false
	}
	return nonEmpty(obj["system"]) || nonEmpty(obj["record"])
}

// edastroProvider queries the system-by-address endpoint with the address
// as a query parameter. Confirmed on an object carrying a system key or a
// non-empty list response.
type edastroProvider struct {
	url    string
	getter Getter
	logger *slog.Logger
}

// NewEdastroProvider creates the by-address query-parameter lookup provider.
func NewEdastroProvider(url string, getter Getter, log *slog.Logger) Provider {
	if log == nil {
		log = logger.Discard()
	}
	return &edastroProvider{url: url, getter: getter, logger: log}
}

func (p *edastroProvider) Name() string { return "Edastro" }

func (p *edastroProvider) Lookup(ctx context.Context, _ string, systemAddress int64) bool {
	if systemAddress == 0 {
		return false
	}

	params := map[string]string{"q": strconv.FormatInt(systemAddress, 10)}

	body, _, err := p.getter.SyncGet(ctx, p.url, params, nil)
	if err != nil {
		p.logger.DebugContext(ctx, "Edastro query failed",
			logger.ID("system_address", systemAddress),
			logger.Error(err))
		return false
	}

	switch v := body.(type) {
	case map[string]any:
		return nonEmpty(v["system"])
	case []any:
		return len(v) > 0
	default:
		return false
	}
}

// nonEmpty reports whether a decoded JSON value carries data: non-nil,
// non-empty object/array/string, and not false/0.
func nonEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}
