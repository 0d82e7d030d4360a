package paste

import (
	"github.com/tombowditch/patisserie/client"
)

// Paste converts the options into the client's paste description, with the
// language and title resolved.
func (o *Options) Paste() client.Paste {
	var title *string
	if t, ok := o.ResolvedTitle(); ok {
		title = &t
	}
	return client.Paste{
		APIKey:   o.APIKey,
		Duration: uint32(o.Duration),
		Language: o.ResolvedLanguage(),
		Title:    title,
		MaxViews: o.MaxViews,
		Content:  o.Content,
	}
}

// Request validates the options and builds the request to send to endpoint.
func (o *Options) Request(endpoint string) (*client.Request, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return client.NewRequest(endpoint, o.Paste())
}
