package tui

import "github.com/dmaraujo/gymkeeper/models"

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the destination page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult finishes the login flow; on success RootModel quits the
// pre-session program.
type AuthResult struct {
	User models.User
	Err  error
}

// RegisterSuccessNotice is shown on the menu after a completed registration.
type RegisterSuccessNotice struct {
	Email string
}

type statusLoadedMsg struct {
	status models.Status
	err    error
}

type listLoadedMsg struct {
	rows []resourceRow
	err  error
}

type detailLoadedMsg struct {
	lines []string
	err   error
}

type itemDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type loggedOutMsg struct {
	err error
}
