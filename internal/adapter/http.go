package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-calorie-keeper/internal/config"
	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
	"github.com/MKhiriev/go-calorie-keeper/models"
)

const hashHeader = "HashSHA256"

type httpAPIClient struct {
	client *resty.Client

	// hasher signs request bodies; nil when no hash key is configured.
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs a REST implementation of [APIClient]. The base
// URL is normalised from cfg.HTTPAddress; a bare host:port gets http://.
func NewHTTPAPIClient(cfg config.SeedAdapter, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	c := &httpAPIClient{client: client, logger: logger}
	if cfg.HashKey != "" {
		c.hasher = utils.NewHasher(cfg.HashKey)
	}

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpAPIClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpAPIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *httpAPIClient) Register(ctx context.Context, credentials models.UserCredentials) (models.User, error) {
	req, err := c.jsonRequest(ctx, credentials)
	if err != nil {
		return models.User{}, err
	}

	var registered models.User
	resp, err := req.SetResult(&registered).Post("/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return registered, nil
}

// Login posts the OAuth2 password form the server expects and stores the
// returned access token.
func (c *httpAPIClient) Login(ctx context.Context, credentials models.UserCredentials) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": credentials.Email,
			"password": credentials.Password,
		}).
		SetResult(&token).
		Post("/auth/jwt/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	if token.AccessToken == "" {
		// fall back to the Authorization header
		token.AccessToken, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.TokenResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		token.TokenType = models.TokenTypeBearer
	}

	c.SetToken(token.AccessToken)
	c.logger.Debug().Str("email", credentials.Email).Msg("logged in")
	return token, nil
}

func (c *httpAPIClient) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := c.authedRequest(ctx).SetResult(&user).Get("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (c *httpAPIClient) CreateMeal(ctx context.Context, meal models.MealCreate) (models.Meal, error) {
	req, err := c.jsonRequest(ctx, meal)
	if err != nil {
		return models.Meal{}, err
	}

	var created models.Meal
	resp, err := c.withToken(req).SetResult(&created).Post("/meals/")
	if err != nil {
		return models.Meal{}, fmt.Errorf("create meal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Meal{}, err
	}

	return created, nil
}

func (c *httpAPIClient) ListMeals(ctx context.Context, dateFilter string) ([]models.Meal, error) {
	req := c.authedRequest(ctx)
	if dateFilter != "" {
		req.SetQueryParam("date_filter", dateFilter)
	}

	var meals []models.Meal
	resp, err := req.SetResult(&meals).Get("/meals/")
	if err != nil {
		return nil, fmt.Errorf("list meals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return meals, nil
}

func (c *httpAPIClient) DeleteMeal(ctx context.Context, mealID int64) error {
	resp, err := c.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(mealID, 10)).
		Delete("/meals/{id}")
	if err != nil {
		return fmt.Errorf("delete meal request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpAPIClient) DailyStats(ctx context.Context, dateFilter string) (models.DailyStats, error) {
	req := c.authedRequest(ctx)
	if dateFilter != "" {
		req.SetQueryParam("date_filter", dateFilter)
	}

	var stats models.DailyStats
	resp, err := req.SetResult(&stats).Get("/meals/stats/daily")
	if err != nil {
		return models.DailyStats{}, fmt.Errorf("daily stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DailyStats{}, err
	}

	return stats, nil
}

// jsonRequest marshals body once so that the exact bytes sent can be signed.
func (c *httpAPIClient) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if c.hasher != nil {
		req.SetHeader(hashHeader, c.hasher.SumHex(payload))
	}

	return req, nil
}

func (c *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	return c.withToken(c.client.R().SetContext(ctx))
}

func (c *httpAPIClient) withToken(req *resty.Request) *resty.Request {
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
