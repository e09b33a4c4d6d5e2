// Package retry provides exponential backoff retry logic for transient failures.
//
// [WithExponentialBackoff] retries an operation with configurable max attempts,
// initial delay, and maximum delay. It is used for AWS API calls that may be
// throttled or fail transiently. Errors wrapped with [Fatal] stop the retry
// loop immediately.
package retry
