package mock

import "github.com/fwojciec/vitae"

var _ vitae.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of vitae.Renderer.
type Renderer struct {
	RenderFn func(profile *vitae.Profile, settings vitae.Settings) ([]byte, error)
	ExtFn    func() string
}

func (r *Renderer) Render(profile *vitae.Profile, settings vitae.Settings) ([]byte, error) {
	return r.RenderFn(profile, settings)
}

func (r *Renderer) Ext() string {
	return r.ExtFn()
}
