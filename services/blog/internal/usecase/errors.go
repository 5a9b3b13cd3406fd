package usecase

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrBlogNotFound       = errors.New("blog not found")
	ErrForbidden          = errors.New("forbidden")
)

// Policy holds authorization switches shared by the blog and like use cases.
type Policy struct {
	// EnforceOwnership restricts update/delete to the blog owner and forbids
	// toggling likes on behalf of another user.
	EnforceOwnership bool
}
