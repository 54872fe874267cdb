package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrClientNotFound = errors.New("client not found")
var ErrUsernameTaken = errors.New("username already taken")
var ErrStoreUnavailable = errors.New("record store unavailable")
var ErrSessionNotFound = errors.New("session not found")
var ErrSessionCorrupted = errors.New("client session has no record")
var ErrForbidden = errors.New("access forbidden")
var ErrEmptyMessage = errors.New("empty chat message")
var ErrChatBusy = errors.New("assistant request already in flight")

// Client is a row of the "clients" collection: one portal user and the link
// to their externally hosted document folder.
//
// Password is stored and transmitted in clear on the admin surface because
// the administrator must be able to read and re-issue client credentials.
// It is always stripped before a record is attached to a client session.
type Client struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Username    string `json:"username" bson:"username"`
	Password    string `json:"password,omitempty" bson:"password"`
	FullName    string `json:"full_name" bson:"full_name"`
	CompanyName string `json:"company_name" bson:"company_name"`
	OneDriveURL string `json:"onedrive_url" bson:"onedrive_url"`
}

// Sanitized returns a copy of the record with the password cleared, suitable
// for session state and client-facing responses.
func (c Client) Sanitized() Client {
	c.Password = ""
	return c
}
