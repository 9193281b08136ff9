package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/naveenspark/lottery-wheel/pkg/domain"
)

// codeOK is the only success value of the response code field.
const codeOK = 200

// Default page used by GetPrizes.
const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
)

// TokenSource supplies the bearer token for authenticated calls.
type TokenSource interface {
	Token() string
}

// Client is the admin API client.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a new API client. tokens is read on every authenticated call,
// so a later login is picked up without rebuilding the client.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the response wrapper of every endpoint. Table endpoints may put
// rows and total next to code instead of inside data.
type envelope struct {
	Code  int             `json:"code"`
	Msg   string          `json:"msg"`
	Data  json.RawMessage `json:"data"`
	Rows  json.RawMessage `json:"rows"`
	Total int             `json:"total"`
}

// Login exchanges credentials for a bearer token. captchaID identifies the
// captcha that code answers; a fresh one is generated when it is empty. The
// session is left untouched.
func (c *Client) Login(ctx context.Context, username, password, code, captchaID string) (string, error) {
	if captchaID == "" {
		captchaID = uuid.NewString()
	}
	req := domain.LoginRequest{
		Username: username,
		Password: password,
		Code:     code,
		UUID:     captchaID,
	}
	env, err := c.doRequest(ctx, http.MethodPost, "/login", req, "", "login failed")
	if err != nil {
		return "", fmt.Errorf("client.Login: %w", err)
	}
	var data domain.LoginData
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return "", fmt.Errorf("client.Login: decode data: %w", err)
		}
	}
	return data.Token, nil
}

// GetPrizes returns the first page of prizes.
func (c *Client) GetPrizes(ctx context.Context) ([]domain.Prize, error) {
	page, err := c.ListPrizes(ctx, DefaultPageNum, DefaultPageSize)
	if err != nil {
		return nil, err
	}
	return page.Rows, nil
}

// ListPrizes fetches one page of the prize list. Failures are logged before
// they are returned.
func (c *Client) ListPrizes(ctx context.Context, pageNum, pageSize int) (page *domain.PrizePage, err error) {
	defer func() {
		if err != nil {
			c.logger.Error("fetch prizes", "page", pageNum, "size", pageSize, "error", err)
		}
	}()

	token := c.token()
	if token == "" {
		return nil, fmt.Errorf("client.ListPrizes: %w", ErrNotLoggedIn)
	}

	params := url.Values{}
	params.Set("pageNum", strconv.Itoa(pageNum))
	params.Set("pageSize", strconv.Itoa(pageSize))

	env, err := c.doRequest(ctx, http.MethodGet, "/system/prize/list?"+params.Encode(), nil, token, "failed to fetch prizes")
	if err != nil {
		return nil, fmt.Errorf("client.ListPrizes: %w", err)
	}

	page = &domain.PrizePage{}
	if hasValue(env.Data) {
		if err := json.Unmarshal(env.Data, page); err != nil {
			return nil, fmt.Errorf("client.ListPrizes: decode data: %w", err)
		}
		return page, nil
	}
	page.Total = env.Total
	if hasValue(env.Rows) {
		if err := json.Unmarshal(env.Rows, &page.Rows); err != nil {
			return nil, fmt.Errorf("client.ListPrizes: decode rows: %w", err)
		}
	}
	return page, nil
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func hasValue(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, token, fallbackMsg string) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		msg := strings.TrimSpace(string(respBody))
		if readErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Message: msg}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if env.Code != codeOK {
		msg := env.Msg
		if msg == "" {
			msg = fallbackMsg
		}
		return nil, &APIError{Code: env.Code, Msg: msg}
	}
	return &env, nil
}
