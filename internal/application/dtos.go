package application

import "encoding/json"

// Wire shapes for the checkout processor API. Field names follow the
// processor's camelCase JSON contract.

type Amount struct {
	Currency string `json:"currency"`
	Value    int64  `json:"value"`
}

type PaymentMethodsRequest struct {
	MerchantAccount string  `json:"merchantAccount"`
	Channel         string  `json:"channel,omitempty"`
	CountryCode     string  `json:"countryCode,omitempty"`
	Amount          *Amount `json:"amount,omitempty"`
}

// PaymentMethodsResponse is passed through to the storefront untouched;
// the drop-in UI consumes it directly.
type PaymentMethodsResponse struct {
	PaymentMethods []json.RawMessage `json:"paymentMethods"`
}

type AuthenticationData struct {
	AttemptAuthentication string `json:"attemptAuthentication,omitempty"`
}

type BrowserInfo struct {
	AcceptHeader      string `json:"acceptHeader,omitempty"`
	ColorDepth        int    `json:"colorDepth,omitempty"`
	JavaEnabled       bool   `json:"javaEnabled"`
	Language          string `json:"language,omitempty"`
	ScreenHeight      int    `json:"screenHeight,omitempty"`
	ScreenWidth       int    `json:"screenWidth,omitempty"`
	TimeZoneOffset    int    `json:"timeZoneOffset,omitempty"`
	UserAgent         string `json:"userAgent,omitempty"`
	JavaScriptEnabled bool   `json:"javaScriptEnabled"`
}

type BillingAddress struct {
	City              string `json:"city,omitempty"`
	Country           string `json:"country,omitempty"`
	PostalCode        string `json:"postalCode,omitempty"`
	Street            string `json:"street,omitempty"`
	HouseNumberOrName string `json:"houseNumberOrName,omitempty"`
}

type PaymentRequest struct {
	Amount             Amount              `json:"amount"`
	MerchantAccount    string              `json:"merchantAccount"`
	Channel            string              `json:"channel,omitempty"`
	Reference          string              `json:"reference"`
	ReturnURL          string              `json:"returnUrl"`
	AuthenticationData *AuthenticationData `json:"authenticationData,omitempty"`
	Origin             string              `json:"origin,omitempty"`
	BrowserInfo        *BrowserInfo        `json:"browserInfo,omitempty"`
	ShopperIP          string              `json:"shopperIP,omitempty"`
	PaymentMethod      json.RawMessage     `json:"paymentMethod,omitempty"`
	BillingAddress     *BillingAddress     `json:"billingAddress,omitempty"`
	CountryCode        string              `json:"countryCode,omitempty"`
	ShopperEmail       string              `json:"shopperEmail,omitempty"`
}

// PaymentAction carries the challenge the shopper must complete before
// the payment outcome is final (e.g. a 3-D Secure redirect).
type PaymentAction struct {
	Type              string            `json:"type"`
	URL               string            `json:"url,omitempty"`
	Method            string            `json:"method,omitempty"`
	PaymentMethodType string            `json:"paymentMethodType,omitempty"`
	Data              map[string]string `json:"data,omitempty"`
}

type PaymentResponse struct {
	ResultCode    string         `json:"resultCode,omitempty"`
	PspReference  string         `json:"pspReference,omitempty"`
	RefusalReason string         `json:"refusalReason,omitempty"`
	Action        *PaymentAction `json:"action,omitempty"`
}

// PaymentCompletionDetails wraps whichever token came back from the
// redirect: redirectResult or payload, never both.
type PaymentCompletionDetails struct {
	RedirectResult string `json:"redirectResult,omitempty"`
	Payload        string `json:"payload,omitempty"`
}

type PaymentDetailsRequest struct {
	Details PaymentCompletionDetails `json:"details"`
}

type PaymentDetailsResponse struct {
	ResultCode    string `json:"resultCode,omitempty"`
	PspReference  string `json:"pspReference,omitempty"`
	RefusalReason string `json:"refusalReason,omitempty"`
}

type RefundRequest struct {
	Amount          Amount `json:"amount"`
	MerchantAccount string `json:"merchantAccount"`
	Reference       string `json:"reference"`
}

// RefundResponse is the processor's acknowledgement. Refunds settle
// asynchronously; Status confirms acceptance only.
type RefundResponse struct {
	MerchantAccount     string `json:"merchantAccount"`
	PspReference        string `json:"pspReference"`
	PaymentPspReference string `json:"paymentPspReference"`
	Reference           string `json:"reference,omitempty"`
	Status              string `json:"status"`
	Amount              Amount `json:"amount"`
}
