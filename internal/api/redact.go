package api

import (
	"errors"
	"net/url"
)

const redacted = "REDACTED"

// RedactURL renders u with the API key masked. Use it for every URL that
// ends up in a log line or an error.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	clean := *u
	query := clean.Query()
	if query.Has(apiKeyParam) {
		query.Set(apiKeyParam, redacted)
		clean.RawQuery = query.Encode()
	}
	return clean.String()
}

// scrub rewrites the URL inside a *url.Error, net/http puts the full
// request URL there.
func scrub(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	u, perr := url.Parse(uerr.URL)
	if perr != nil {
		return &url.Error{Op: uerr.Op, URL: redacted, Err: uerr.Err}
	}
	return &url.Error{Op: uerr.Op, URL: RedactURL(u), Err: uerr.Err}
}
