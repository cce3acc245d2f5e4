package client

import (
	"errors"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/common"
)

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = common.ErrUnauthorized
	ErrInvalidAnswer = errors.New("unexpected server response")
)
