package settings

import "errors"

var ErrSettingsNotFound = errors.New("account settings not found")
