package aws

import (
	"errors"

	"github.com/aws/smithy-go"

	"github.com/n8nup/n8nup/internal/util/retry"
)

var notFoundCodes = map[string]bool{
	"InvalidGroup.NotFound":         true,
	"InvalidInstanceID.NotFound":    true,
	"InvalidAllocationID.NotFound":  true,
	"InvalidAssociationID.NotFound": true,
	"InvalidKeyPair.NotFound":       true,
	"InvalidAMIID.NotFound":         true,
}

var throttleCodes = map[string]bool{
	"RequestLimitExceeded": true,
	"Throttling":           true,
	"ThrottlingException":  true,
	"RequestThrottled":     true,
}

var fatalCodes = map[string]bool{
	"InvalidParameterValue":       true,
	"InvalidParameterCombination": true,
	"MissingParameter":            true,
	"UnauthorizedOperation":       true,
	"AuthFailure":                 true,
	"OptInRequired":               true,
}

func apiErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsNotFound reports whether err is an EC2 API error indicating the
// referenced resource does not exist.
func IsNotFound(err error) bool {
	return notFoundCodes[apiErrorCode(err)]
}

func isThrottled(err error) bool {
	return throttleCodes[apiErrorCode(err)]
}

// isDependencyViolation matches the error EC2 returns when a resource is
// still referenced by another, e.g. deleting a security group while an
// instance that uses it is shutting down. These resolve themselves, so they
// are retried.
func isDependencyViolation(err error) bool {
	return apiErrorCode(err) == "DependencyViolation"
}

// classify wraps err so the retry loop stops immediately on errors that
// will never succeed on retry.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if fatalCodes[apiErrorCode(err)] {
		return retry.Fatal(err)
	}
	return err
}
