// Package domain contains core concepts of the chat system.
// No runtime, network, or storage logic should be added here.
package domain

// Identity is the authenticated subject carried by a bearer credential.
type Identity struct {
	UserID   string
	Email    string
	Username string
}
