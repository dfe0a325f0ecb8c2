// Package handler orchestrates the help-request relay pipeline.
//
// One invocation runs four stages strictly forward: decode the submission
// body into a payload, resolve envelope addressing from configuration,
// compose the fixed plaintext message, and hand it to the configured
// transport. The outcome is translated into an API Gateway response:
// 200 with {"message":"Success"} on delivery, 500 carrying the failure text
// otherwise.
//
// The boundary policy is a single configurable decision: by default every
// stage failure is caught here and rendered as a 500; WithErrorPropagation
// returns failures to the invoking runtime uncaught instead.
package handler
