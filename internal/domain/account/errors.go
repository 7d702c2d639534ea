package account

import "errors"

var (
	ErrUnknownRole         = errors.New("unknown account role")
	ErrUnknownProfileField = errors.New("unknown profile field")
	ErrInvalidFieldValue   = errors.New("invalid value for field")
	ErrUnknownSetting      = errors.New("unknown setting")
	ErrInvalidSetting      = errors.New("invalid setting value")
)
