package repository

import "errors"

var (
	ErrNoFilter = errors.New("no filter given")
)
