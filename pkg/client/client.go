// Package client provides a typed Go client for the pawsitter REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client talks to a pawsitter API server. The zero value is not usable,
// construct one with New.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken sets the bearer token used for authenticated endpoints.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken updates the bearer token, typically after Login or Register.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location *string   `json:"location,omitempty"`
}

// UserProfile is the view of another user; contact details are only present
// on the caller's own User record.
type UserProfile struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location *string   `json:"location,omitempty"`
	Role     string    `json:"role"`
}

type Pet struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Name      string    `json:"name"`
	Breed     *string   `json:"breed,omitempty"`
	Size      string    `json:"size"`
	Age       *int      `json:"age,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Provider struct {
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"userId"`
	Bio              *string          `json:"bio,omitempty"`
	Photos           []string         `json:"photos,omitempty"`
	ServicesOffered  string           `json:"servicesOffered"`
	DailyRate        *decimal.Decimal `json:"dailyRate,omitempty"`
	HourlyRate       *decimal.Decimal `json:"hourlyRate,omitempty"`
	BoardingCapacity *int             `json:"boardingCapacity,omitempty"`
	WalkingRadius    *float64         `json:"walkingRadius,omitempty"`
	User             UserSummary      `json:"user"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

type Review struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"bookingId"`
	AuthorID  uuid.UUID `json:"authorId"`
	Rating    int       `json:"rating"`
	Text      *string   `json:"text,omitempty"`
	Author    *struct {
		Name string `json:"name"`
	} `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProviderDetail struct {
	Provider
	Reviews   []Review `json:"reviews"`
	AvgRating *float64 `json:"avgRating"`
}

type Booking struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"ownerId"`
	ProviderID  uuid.UUID       `json:"providerId"`
	PetID       uuid.UUID       `json:"petId"`
	ServiceType string          `json:"serviceType"`
	Status      string          `json:"status"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	WalkDate    *time.Time      `json:"walkDate,omitempty"`
	WalkTime    *string         `json:"walkTime,omitempty"`
	Duration    *int            `json:"duration,omitempty"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	Notes       *string         `json:"notes,omitempty"`
	Pet         *Pet            `json:"pet,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
}

type CreatePetRequest struct {
	Name  string  `json:"name"`
	Breed *string `json:"breed,omitempty"`
	Size  string  `json:"size"`
	Age   *int    `json:"age,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

type UpsertProfileRequest struct {
	Bio              *string          `json:"bio,omitempty"`
	Photos           []string         `json:"photos,omitempty"`
	ServicesOffered  string           `json:"servicesOffered"`
	DailyRate        *decimal.Decimal `json:"dailyRate,omitempty"`
	HourlyRate       *decimal.Decimal `json:"hourlyRate,omitempty"`
	BoardingCapacity *int             `json:"boardingCapacity,omitempty"`
	WalkingRadius    *float64         `json:"walkingRadius,omitempty"`
}

// SearchProvidersParams filters the provider search. Zero values are omitted.
type SearchProvidersParams struct {
	Location string
	Service  string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

type CreateBookingRequest struct {
	ProviderID  uuid.UUID `json:"providerId"`
	PetID       uuid.UUID `json:"petId"`
	ServiceType string    `json:"serviceType"`
	StartDate   *string   `json:"startDate,omitempty"`
	EndDate     *string   `json:"endDate,omitempty"`
	WalkDate    *string   `json:"walkDate,omitempty"`
	WalkTime    *string   `json:"walkTime,omitempty"`
	Duration    *int      `json:"duration,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

type AddReviewRequest struct {
	Rating int     `json:"rating"`
	Text   *string `json:"text,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, userID uuid.UUID) (*UserProfile, error) {
	var profile UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/users/"+userID.String(), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateUser(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+userID.String(), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListPets(ctx context.Context, ownerID uuid.UUID) ([]Pet, error) {
	var pets []Pet
	if err := c.do(ctx, http.MethodGet, "/api/users/"+ownerID.String()+"/pets", nil, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (c *Client) CreatePet(ctx context.Context, ownerID uuid.UUID, req CreatePetRequest) (*Pet, error) {
	var pet Pet
	if err := c.do(ctx, http.MethodPost, "/api/users/"+ownerID.String()+"/pets", req, &pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (c *Client) ListProviders(ctx context.Context) ([]Provider, error) {
	var providers []Provider
	if err := c.do(ctx, http.MethodGet, "/api/providers", nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (c *Client) SearchProviders(ctx context.Context, params SearchProvidersParams) ([]Provider, error) {
	query := url.Values{}
	if params.Location != "" {
		query.Set("location", params.Location)
	}
	if params.Service != "" {
		query.Set("service", params.Service)
	}
	if params.MinPrice != nil {
		query.Set("minPrice", params.MinPrice.String())
	}
	if params.MaxPrice != nil {
		query.Set("maxPrice", params.MaxPrice.String())
	}

	path := "/api/providers/search"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var providers []Provider
	if err := c.do(ctx, http.MethodGet, path, nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (c *Client) GetProvider(ctx context.Context, userID uuid.UUID) (*ProviderDetail, error) {
	var provider ProviderDetail
	if err := c.do(ctx, http.MethodGet, "/api/providers/"+userID.String(), nil, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (c *Client) ListProviderReviews(ctx context.Context, userID uuid.UUID) ([]Review, error) {
	var reviews []Review
	if err := c.do(ctx, http.MethodGet, "/api/providers/"+userID.String()+"/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) UpsertProviderProfile(
	ctx context.Context,
	userID uuid.UUID,
	req UpsertProfileRequest,
) (*Provider, error) {
	var provider Provider
	if err := c.do(ctx, http.MethodPut, "/api/providers/"+userID.String(), req, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	var booking Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookings lists the caller's bookings. Pass role "provider" to list the
// provider side, anything else lists the owner side.
func (c *Client) ListBookings(ctx context.Context, role string) ([]Booking, error) {
	path := "/api/bookings"
	if role != "" {
		path += "?role=" + url.QueryEscape(role)
	}

	var bookings []Booking
	if err := c.do(ctx, http.MethodGet, path, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	var booking Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/"+bookingID.String(), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) UpdateBookingStatus(
	ctx context.Context,
	bookingID uuid.UUID,
	status string,
) (*Booking, error) {
	req := UpdateBookingStatusRequest{Status: status}

	var booking Booking
	if err := c.do(ctx, http.MethodPut, "/api/bookings/"+bookingID.String()+"/status", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) AddReview(
	ctx context.Context,
	bookingID uuid.UUID,
	req AddReviewRequest,
) (*Review, error) {
	var review Review
	if err := c.do(ctx, http.MethodPost, "/api/bookings/"+bookingID.String()+"/review", req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
