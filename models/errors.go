package models

import "github.com/pkg/errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("operation not permitted")
)

// CannotPostMessage is shown when a company without posting privilege tries to publish.
const CannotPostMessage = "Your company must verify its email and be approved by an administrator before posting."
