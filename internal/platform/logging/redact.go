package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
	"github.com/samber/lo"
)

// sensitiveFields are attribute and struct field names whose values are
// always masked. The FDC key shows up as api_key in query strings and
// config dumps, and as X-Api-Key when set as a header.
var sensitiveFields = []string{
	"api_key", "apiKey", "apikey", "fdc_api_key", "x-api-key", "X-Api-Key",
	"authorization", "Authorization", "password", "secret", "token",
	"credential", "credentials", "cookie",
}

var sensitiveValues = []*regexp.Regexp{
	// api.data.gov keys.
	regexp.MustCompile(`^[A-Za-z0-9]{40}$`),
	regexp.MustCompile(`(?i)^(basic|bearer)\s+\S+$`),
	regexp.MustCompile(`^eyJ[\w-]*\.eyJ[\w-]*\.[\w-]*$`),
}

// DefaultRedactOptions returns the masq options applied by every handler.
func DefaultRedactOptions() []masq.Option {
	opts := lo.Map(sensitiveFields, func(name string, _ int) masq.Option {
		return masq.WithFieldName(name)
	})
	opts = append(opts, masq.WithFieldPrefix("secret"))

	return append(opts, lo.Map(sensitiveValues, func(re *regexp.Regexp, _ int) masq.Option {
		return masq.WithRegex(re)
	})...)
}

// NewReplaceAttr returns a slog ReplaceAttr that masks secrets using
// DefaultRedactOptions plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
