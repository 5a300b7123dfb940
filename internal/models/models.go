// Package models defines the Frogworks platform data model returned by the
// REST API.
package models

import "encoding/json"

// User represents a Frogworks account.
type User struct {
	ID             int      `json:"id"`
	Identifier     string   `json:"identifier"`
	Username       string   `json:"username"`
	Name           string   `json:"name"`
	EmailAddress   *string  `json:"email_address,omitempty"`
	Password       *string  `json:"password,omitempty"`
	Joined         string   `json:"joined"`
	Balance        float64  `json:"balance"`
	ProfilePhotoID int      `json:"profile_photo_id"`
	Activity       Activity `json:"activity"`
	Developer      bool     `json:"developer"`
	Administrator  bool     `json:"administrator"`
	Verified       bool     `json:"verified"`
}

// Activity is a user's current in-application presence.
type Activity struct {
	ApplicationID int             `json:"application_id"`
	Description   string          `json:"description"`
	Details       json.RawMessage `json:"details"`
}

// Session represents a logged-in device session.
type Session struct {
	ID           int    `json:"id"`
	Identifier   string `json:"identifier"`
	UserID       int    `json:"user_id"`
	Hostname     string `json:"hostname"`
	MACAddress   string `json:"mac_address"`
	Platform     string `json:"platform"`
	StartDate    string `json:"start_date"`
	LastActivity string `json:"last_activity"`
}

// Application is a store listing.
type Application struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	PackageName        string   `json:"package_name"`
	Type               string   `json:"type"`
	Description        string   `json:"description"`
	ReleaseDate        string   `json:"release_date"`
	EarlyAccess        bool     `json:"early_access"`
	LatestVersion      string   `json:"latest_version"`
	SupportedPlatforms []string `json:"supported_platforms"`
	Genres             []string `json:"genres"`
	Tags               []string `json:"tags"`
	BasePrice          float64  `json:"base_price"`
	Owners             []int    `json:"owners"`
}

// ApplicationVersion is a released build of an application for one platform.
type ApplicationVersion struct {
	ID            int    `json:"id"`
	ApplicationID int    `json:"application_id"`
	Name          string `json:"name"`
	Platform      string `json:"platform"`
	ReleaseDate   string `json:"release_date"`
	Filename      string `json:"filename"`
	Executable    string `json:"executable"`
}

// ApplicationKey is a redeemable product key.
type ApplicationKey struct {
	ID            int    `json:"id"`
	ApplicationID int    `json:"application_id"`
	Key           string `json:"key"`
	Type          string `json:"type"`
	Redeemed      bool   `json:"redeemed"`
	UserID        int    `json:"user_id"`
}

// ApplicationSession records time spent in an application.
type ApplicationSession struct {
	ID            int    `json:"id"`
	UserID        int    `json:"user_id"`
	ApplicationID int    `json:"application_id"`
	Date          string `json:"date"`
	Length        int    `json:"length"`
}

// Sale is a time-limited discount on an application.
type Sale struct {
	ID            int     `json:"id"`
	ApplicationID int     `json:"application_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
}

// Purchase records a bought application or IAP.
type Purchase struct {
	ID            int     `json:"id"`
	ApplicationID int     `json:"application_id"`
	IAPID         int     `json:"iap_id"`
	UserID        int     `json:"user_id"`
	Type          string  `json:"type"`
	Source        string  `json:"source"`
	Price         float64 `json:"price"`
	Key           string  `json:"key"`
	Date          string  `json:"date"`
}

// Transaction is a ledger entry referencing a purchase or deposit.
type Transaction struct {
	ID            int    `json:"id"`
	UserID        int    `json:"user_id"`
	TransactionID int    `json:"transaction_id"`
	Type          string `json:"type"`
	Date          string `json:"date"`
}

// Deposit is money added to a user's balance.
type Deposit struct {
	ID     int     `json:"id"`
	UserID int     `json:"user_id"`
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
	Date   string  `json:"date"`
}

// IAP is an in-application purchase definition.
type IAP struct {
	ID            int             `json:"id"`
	ApplicationID int             `json:"application_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         float64         `json:"price"`
	Data          json.RawMessage `json:"data"`
}

// IAPRecord is a user's pending or acknowledged IAP.
type IAPRecord struct {
	ID            int    `json:"id"`
	IAPID         int    `json:"iap_id"`
	UserID        int    `json:"user_id"`
	ApplicationID int    `json:"application_id"`
	Date          string `json:"date"`
	Acknowledged  bool   `json:"acknowledged"`
}

// Invite is a game invite sent between friends.
type Invite struct {
	ID            int             `json:"id"`
	UserID        int             `json:"user_id"`
	FromUserID    int             `json:"from_user_id"`
	ApplicationID int             `json:"application_id"`
	Details       json.RawMessage `json:"details"`
	Date          string          `json:"date"`
}

// Friend is a confirmed friendship edge.
type Friend struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	OtherUserID int    `json:"other_user_id"`
	Date        string `json:"date"`
}

// FriendRequest is a pending friendship request.
type FriendRequest struct {
	ID         int    `json:"id"`
	UserID     int    `json:"user_id"`
	FromUserID int    `json:"from_user_id"`
	Date       string `json:"date"`
}

// Photo is an uploaded image (profile photos, store assets).
type Photo struct {
	ID        int    `json:"id"`
	Filename  string `json:"filename"`
	Subfolder string `json:"subfolder"`
	CreatedAt string `json:"created_at"`
}

// CloudData is per-user, per-application saved data.
type CloudData struct {
	ID            int             `json:"id"`
	UserID        int             `json:"user_id"`
	ApplicationID int             `json:"application_id"`
	Data          json.RawMessage `json:"data"`
	Date          string          `json:"date"`
}
