package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/frogworks/frogworks/internal/models"
)

// Ping checks backend reachability. The response body is returned as-is
// so the CLI can print whatever the server reports.
func (c *Client) Ping(ctx context.Context) (json.RawMessage, error) {
	data, err := c.doForm(ctx, http.MethodGet, "/api/ping", nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// RequestEmailVerification asks the backend to email a verification code.
func (c *Client) RequestEmailVerification(ctx context.Context, emailAddress string) error {
	form := url.Values{}
	form.Set("email_address", emailAddress)
	_, err := c.doForm(ctx, http.MethodPost, "/api/email-verification/request", form)
	return err
}

// CheckEmailVerification reports whether the given code verifies the address.
func (c *Client) CheckEmailVerification(ctx context.Context, emailAddress string, verificationCode int) (bool, error) {
	form := url.Values{}
	form.Set("email_address", emailAddress)
	form.Set("verification_code", strconv.Itoa(verificationCode))

	var result struct {
		Verified bool `json:"verified"`
	}
	if err := c.getJSON(ctx, "/api/email-verification/check", form, &result); err != nil {
		return false, err
	}
	return result.Verified, nil
}

// Register creates a new account. The email address must already have been
// verified via RequestEmailVerification / CheckEmailVerification.
func (c *Client) Register(ctx context.Context, username, name, emailAddress, password string, emailVerificationCode int) (*models.User, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("name", name)
	form.Set("email_address", emailAddress)
	form.Set("password", password)
	form.Set("email_verification_code", strconv.Itoa(emailVerificationCode))

	var user models.User
	if err := c.postJSON(ctx, "/api/register", form, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a session id. The device identity rides
// along so the backend can show where the account is signed in.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	identity := localIdentity()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("hostname", identity.Hostname)
	form.Set("mac_address", identity.MACAddress)
	form.Set("platform", identity.Platform)

	var result struct {
		SessionID string `json:"session_id"`
	}
	if err := c.postJSON(ctx, "/api/login", form, &result); err != nil {
		return "", err
	}
	if result.SessionID == "" {
		return "", fmt.Errorf("api: login response missing session_id")
	}
	return result.SessionID, nil
}

// AuthenticateSession validates the configured session id and returns the
// session it resolves to.
func (c *Client) AuthenticateSession(ctx context.Context) (*models.Session, error) {
	identity := localIdentity()

	form := url.Values{}
	form.Set("hostname", identity.Hostname)
	form.Set("mac_address", identity.MACAddress)
	form.Set("platform", identity.Platform)

	var session models.Session
	if err := c.postJSON(ctx, "/api/session/authenticate", form, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession logs out the current session.
func (c *Client) DeleteSession(ctx context.Context) error {
	_, err := c.doForm(ctx, http.MethodDelete, "/api/session", nil)
	return err
}

// DeleteSpecificSession logs out another session belonging to this user.
func (c *Client) DeleteSpecificSession(ctx context.Context, sessionID int) error {
	form := url.Values{}
	form.Set("id", strconv.Itoa(sessionID))
	_, err := c.doForm(ctx, http.MethodDelete, "/api/session", form)
	return err
}

// GetUser looks up a user. identifierType selects how identifier is
// interpreted: "identifier", "username", or "id".
func (c *Client) GetUser(ctx context.Context, identifier, identifierType string) (*models.User, error) {
	form := url.Values{}
	form.Set("identifier", identifier)
	form.Set("identifier_type", identifierType)

	var user models.User
	if err := c.getJSON(ctx, "/api/user", form, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateApplicationParams are the fields for a new store listing.
type CreateApplicationParams struct {
	Name               string
	PackageName        string
	Type               string
	Description        string
	ReleaseDate        string
	EarlyAccess        bool
	SupportedPlatforms []string
	Genres             []string
	Tags               []string
	BasePrice          float64
}

// CreateApplication registers a new application. Requires a developer account.
func (c *Client) CreateApplication(ctx context.Context, params CreateApplicationParams) (*models.Application, error) {
	form := url.Values{}
	form.Set("name", params.Name)
	form.Set("package_name", params.PackageName)
	form.Set("type", params.Type)
	form.Set("description", params.Description)
	form.Set("release_date", params.ReleaseDate)
	form.Set("early_access", strconv.FormatBool(params.EarlyAccess))
	for _, platform := range params.SupportedPlatforms {
		form.Add("supported_platforms", platform)
	}
	for _, genre := range params.Genres {
		form.Add("genres", genre)
	}
	for _, tag := range params.Tags {
		form.Add("tags", tag)
	}
	form.Set("base_price", strconv.FormatFloat(params.BasePrice, 'f', -1, 64))

	var app models.Application
	if err := c.postJSON(ctx, "/api/application/create", form, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetApplication fetches a store listing by id.
func (c *Client) GetApplication(ctx context.Context, applicationID int) (*models.Application, error) {
	form := url.Values{}
	form.Set("application_id", strconv.Itoa(applicationID))

	var app models.Application
	if err := c.getJSON(ctx, "/api/application", form, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetApplicationVersions lists released builds of an application for a
// platform. An empty platform lists all builds.
func (c *Client) GetApplicationVersions(ctx context.Context, applicationID int, platform string) ([]models.ApplicationVersion, error) {
	form := url.Values{}
	form.Set("application_id", strconv.Itoa(applicationID))
	if platform != "" {
		form.Set("platform", platform)
	}

	var versions []models.ApplicationVersion
	if err := c.getJSON(ctx, "/api/application/versions", form, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// GetActiveSale returns the currently running sale for an application, or
// ErrNotFound if there is none.
func (c *Client) GetActiveSale(ctx context.Context, applicationID int) (*models.Sale, error) {
	form := url.Values{}
	form.Set("application_id", strconv.Itoa(applicationID))

	var sale models.Sale
	if err := c.getJSON(ctx, "/api/sale/active", form, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// GetPurchases lists the authenticated user's purchases.
func (c *Client) GetPurchases(ctx context.Context) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := c.getJSON(ctx, "/api/purchases", nil, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

// GetTransactions lists the authenticated user's transaction ledger.
func (c *Client) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := c.getJSON(ctx, "/api/transactions", nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetDeposits lists the authenticated user's balance deposits.
func (c *Client) GetDeposits(ctx context.Context) ([]models.Deposit, error) {
	var deposits []models.Deposit
	if err := c.getJSON(ctx, "/api/deposits", nil, &deposits); err != nil {
		return nil, err
	}
	return deposits, nil
}

// GetFriends lists the authenticated user's friends.
func (c *Client) GetFriends(ctx context.Context) ([]models.Friend, error) {
	var friends []models.Friend
	if err := c.getJSON(ctx, "/api/friends", nil, &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

// GetFriendRequests lists pending friend requests for the authenticated user.
func (c *Client) GetFriendRequests(ctx context.Context) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := c.getJSON(ctx, "/api/friend-requests", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// SendFriendRequest sends a friend request to another user.
func (c *Client) SendFriendRequest(ctx context.Context, userID int) error {
	form := url.Values{}
	form.Set("user_id", strconv.Itoa(userID))
	_, err := c.doForm(ctx, http.MethodPost, "/api/friend-requests/send", form)
	return err
}

// AcceptFriendRequest accepts a pending friend request.
func (c *Client) AcceptFriendRequest(ctx context.Context, requestID int) error {
	form := url.Values{}
	form.Set("request_id", strconv.Itoa(requestID))
	_, err := c.doForm(ctx, http.MethodPost, "/api/friend-requests/accept", form)
	return err
}

// GetInvites lists pending game invites for the authenticated user.
func (c *Client) GetInvites(ctx context.Context) ([]models.Invite, error) {
	var invites []models.Invite
	if err := c.getJSON(ctx, "/api/invites", nil, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

// GetIAPs lists the in-application purchases defined for an application.
func (c *Client) GetIAPs(ctx context.Context, applicationID int) ([]models.IAP, error) {
	form := url.Values{}
	form.Set("application_id", strconv.Itoa(applicationID))

	var iaps []models.IAP
	if err := c.getJSON(ctx, "/api/iaps", form, &iaps); err != nil {
		return nil, err
	}
	return iaps, nil
}

// GetIAPRecords lists the authenticated user's IAP records for an application.
func (c *Client) GetIAPRecords(ctx context.Context, applicationID int) ([]models.IAPRecord, error) {
	form := url.Values{}
	form.Set("application_id", strconv.Itoa(applicationID))

	var records []models.IAPRecord
	if err := c.getJSON(ctx, "/api/iap-records", form, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AcknowledgeIAPRecord marks an IAP record as consumed by the application.
func (c *Client) AcknowledgeIAPRecord(ctx context.Context, recordID int) error {
	form := url.Values{}
	form.Set("record_id", strconv.Itoa(recordID))
	_, err := c.doForm(ctx, http.MethodPost, "/api/iap-records/acknowledge", form)
	return err
}

// GetCloudData fetches the user's saved cloud data for an application.
func (c *Client) GetCloudData(ctx context.Context, applicationID int) (*models.CloudData, error) {
	form := url.Values{}
	form.Set("application_id", strconv.Itoa(applicationID))

	var data models.CloudData
	if err := c.getJSON(ctx, "/api/cloud-data", form, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SetCloudData replaces the user's saved cloud data for an application.
func (c *Client) SetCloudData(ctx context.Context, applicationID int, data json.RawMessage) error {
	form := url.Values{}
	form.Set("application_id", strconv.Itoa(applicationID))
	form.Set("data", string(data))
	_, err := c.doForm(ctx, http.MethodPost, "/api/cloud-data", form)
	return err
}
