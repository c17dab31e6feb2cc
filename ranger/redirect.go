package ranger

import (
	"errors"
	"fmt"
	"os"

	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/router"
	"gopkg.in/yaml.v3"
)

// A Redirect sends requests to From, with any method, to To.
type Redirect struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Code int    `yaml:"code"`
}

// LoadRedirects reads the YAML list of Redirects in the file at path:
//
//	- from: /old
//	  to: /new
//	  code: 301
//
// A missing code falls back to http.StatusFound when registered.
func LoadRedirects(path string) ([]Redirect, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading redirects: %s", trailhead.ErrBadConfig, err)
	}

	var rs []Redirect
	if err := yaml.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("%w: parsing redirects in %s: %s", trailhead.ErrBadConfig, path, err)
	}

	for i, r := range rs {
		if r.From == "" || r.To == "" {
			return nil, fmt.Errorf("%w: redirect %d in %s needs from and to", trailhead.ErrMissingData, i, path)
		}
	}

	return rs, nil
}

// registerRedirects adds each of rs to r, collecting every failure.
func registerRedirects(r *router.Router, rs []Redirect) error {
	var errs []error
	for _, rd := range rs {
		if _, err := r.Add(router.RedirectRoute(rd.From, rd.To, rd.Code)); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
