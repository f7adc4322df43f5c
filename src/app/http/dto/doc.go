// Package dto holds the JSON shapes of the HTTP API.
//
// Requests are bound by gin and converted to domain calls; responses are
// built from domain values with the *FromDomain helpers. An account's
// balance only ever appears in responses. SetAgeRequest keeps the raw age
// so a string or a float still reaches the domain's type check instead of
// failing at bind time.
package dto
