package middleware

import "errors"

var (
	errMissingAuthHeader = errors.New("missing Authorization header")
	errInvalidAuthHeader = errors.New("invalid Authorization header format")
	errUnknownTokenUser  = errors.New("token user no longer exists")
)
