// Package http implements the REST transport of the PhoneNotify gateway.
//
// Every upstream operation is exposed as one route under its group
// (/Notify, /StatusReport, /Cancelling, /ListMember, /Sound, /Script,
// /License, /Info, /IncomingNumbers). Requests run through a shared
// pipeline: license key check, JSON or query binding, validation and the
// service call. Failures are answered with a models.ErrorDetail body.
// Trace IDs, access logging and gzip are handled by middleware.
package http
