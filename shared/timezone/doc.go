// Package timezone keeps every timestamp in the hotel's configured zone (APP_TIMEZONE).
//
// Booking dates are calendar dates. They are kept as midnight UTC so that a stored DATE, a parsed
// "2006-01-02" and Today compare equal regardless of the server's zone.
package timezone
