package api

import (
	"adultease/config"
)

// SafeErrorMessage avoids leaking internal error details to clients in
// release mode.
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
