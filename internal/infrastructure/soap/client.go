// Package soap is the RPC channel to the Egopay SOAP services.
package soap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/config"
	"github.com/DanielPopoola/egopay-gateway/internal/domain"
)

// maxFaultBody caps how much of an unexpected reply ends up in an error.
const maxFaultBody = 512

var ErrUnknownOperation = errors.New("operation is not declared in the service description")

// Dialer builds channels from a WSDL file and an endpoint. Parsed service
// descriptions are cached by path.
type Dialer struct {
	httpClient *http.Client
	userAgent  string

	mu    sync.Mutex
	cache map[string]*serviceDescription
}

func NewDialer(cfg config.SoapConfig) *Dialer {
	return &Dialer{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		cache:      make(map[string]*serviceDescription),
	}
}

var _ application.Dialer = (*Dialer)(nil)

func (d *Dialer) Dial(ctx context.Context, cfg application.ChannelConfig) (application.Channel, error) {
	if cfg.Endpoint == "" {
		return nil, domain.NewEndpointNotConfiguredError()
	}

	desc, err := d.describe(cfg.WSDL)
	if err != nil {
		return nil, err
	}

	return &channel{
		dialer:   d,
		desc:     desc,
		endpoint: cfg.Endpoint,
		user:     cfg.User,
		password: cfg.Password,
	}, nil
}

func (d *Dialer) describe(path string) (*serviceDescription, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if desc, ok := d.cache[path]; ok {
		return desc, nil
	}

	desc, err := loadServiceDescription(path)
	if err != nil {
		if path == "" || errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewWsdlNotFoundError(path)
		}
		return nil, domain.NewInvalidConfigurationError("wsdl", err)
	}

	d.cache[path] = desc
	return desc, nil
}

type channel struct {
	dialer   *Dialer
	desc     *serviceDescription
	endpoint string
	user     string
	password string
}

func (c *channel) Call(ctx context.Context, operation string, payload map[string]any) (application.RawResult, error) {
	op, ok := c.desc.operations[operation]
	if !ok {
		return application.RawResult{}, c.transportError(operation, 0, ErrUnknownOperation)
	}

	body, err := encodeEnvelope(c.desc.namespace, op, payload)
	if err != nil {
		return application.RawResult{}, c.transportError(operation, 0, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return application.RawResult{}, c.transportError(operation, 0, fmt.Errorf("error creating request: %w", err))
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", fmt.Sprintf("%q", op.action))
	if c.dialer.userAgent != "" {
		req.Header.Set("User-Agent", c.dialer.userAgent)
	}
	if c.user != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.dialer.httpClient.Do(req)
	if err != nil {
		return application.RawResult{}, c.transportError(operation, 0, fmt.Errorf("error making request: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return application.RawResult{}, c.transportError(operation, resp.StatusCode, fmt.Errorf("error reading response: %w", err))
	}

	// A Fault envelope is a completed call. SOAP 1.1 servers send it with
	// status 500, so it is checked before the status code.
	response, fault, decodeErr := decodeEnvelope(raw)
	if fault != nil {
		return application.FaultResult(fault.message()), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return application.RawResult{}, c.transportError(operation, resp.StatusCode,
			fmt.Errorf("processor returned status %d: %s", resp.StatusCode, truncate(raw)))
	}
	if decodeErr != nil {
		return application.RawResult{}, c.transportError(operation, resp.StatusCode, decodeErr)
	}

	rv := returnValue(response)
	if rv == nil {
		return application.RawResult{}, c.transportError(operation, resp.StatusCode,
			fmt.Errorf("%s response carries no return value", operation))
	}

	switch v := rv.value().(type) {
	case map[string]any:
		return application.SuccessResult(v), nil
	case []any:
		return application.SuccessResult(map[string]any{listItemElement: v}), nil
	case string:
		return application.FaultResult(v), nil
	}
	// xsi:nil return value
	return application.FaultResult(""), nil
}

func (c *channel) transportError(operation string, status int, err error) *application.TransportError {
	return &application.TransportError{
		Operation:  operation,
		Endpoint:   c.endpoint,
		StatusCode: status,
		Err:        err,
	}
}

func truncate(raw []byte) string {
	if len(raw) > maxFaultBody {
		return string(raw[:maxFaultBody]) + "..."
	}
	return string(raw)
}
