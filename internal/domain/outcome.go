package domain

import (
	"net/url"
	"strings"
)

// ResultCode is the processor's reported status for a payment or
// payment-details submission.
type ResultCode string

// Result codes the classifier maps explicitly. The processor may report
// codes outside this set; those degrade to BucketError rather than fail.
const (
	ResultAuthorised ResultCode = "Authorised"
	ResultPending    ResultCode = "Pending"
	ResultReceived   ResultCode = "Received"
	ResultRefused    ResultCode = "Refused"
)

// OutcomeBucket is one of the four terminal outcomes a checkout attempt
// resolves to.
type OutcomeBucket string

const (
	BucketSuccess OutcomeBucket = "success"
	BucketPending OutcomeBucket = "pending"
	BucketFailed  OutcomeBucket = "failed"
	BucketError   OutcomeBucket = "error"
)

// Outcome pairs the bucket with the original processor code, which is
// always surfaced for diagnostics even when the code was unrecognized.
type Outcome struct {
	Bucket      OutcomeBucket
	DisplayCode ResultCode
}

// Classification is case-insensitive: the processor's docs use
// "Authorised" but redirect query params arrive in varying casing.
var bucketByCode = map[string]OutcomeBucket{
	"authorised": BucketSuccess,
	"pending":    BucketPending,
	"received":   BucketPending,
	"refused":    BucketFailed,
}

// Classify maps a result code to its outcome bucket. The function is
// total: unmapped codes classify to BucketError with the code preserved.
func Classify(code ResultCode) Outcome {
	bucket, ok := bucketByCode[strings.ToLower(string(code))]
	if !ok {
		bucket = BucketError
	}
	return Outcome{Bucket: bucket, DisplayCode: code}
}

// RedirectPath is the storefront path the shopper lands on after the
// outcome is known, with the processor code attached for diagnostics.
func (o Outcome) RedirectPath() string {
	return "/result/" + string(o.Bucket) + "?reason=" + url.QueryEscape(string(o.DisplayCode))
}
