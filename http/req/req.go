package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/flow"
)

type Parser struct {
	valuesDecoder valuesDecoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		valuesDecoder: newValuesDecoder(),
		validator:     newValidator(),
	}
}

// ParseBody decodes into a pointer to a struct the JSON data in *http.Request.Body.
// If successful, ParseBody runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
//
// ParseBody reads the entire r.Body and can't be read from again.
// Use a [io.TeeReader] if r.Body needs to be reused after calling ParseBody.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("trailhead/http/req: %w: ParseBody called with non-pointer: %s", trailhead.ErrBadAny, err)
	}

	if err != nil {
		return fmt.Errorf("trailhead/http/req: %w: failed decoding request body: %s", trailhead.ErrBadFormat, err)
	}

	if err := p.validate(structPtr, Body); err != nil {
		return fmt.Errorf("trailhead/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseQueryParams decodes into a pointer to a struct the query param data in *http.Request.URL.Query.
// If successful, ParseQueryParams runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := p.valuesDecoder.decode(structPtr, params, Query); err != nil {
		return fmt.Errorf("trailhead/http/req: failed decoding request query params: %w", err)
	}

	if err := p.validate(structPtr, Query); err != nil {
		return fmt.Errorf("trailhead/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParsePathParams decodes into a pointer to a struct the values routers captured from the request path.
// Values a param hook converted are formatted with fmt.Sprint before decoding.
// If successful, ParsePathParams runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParsePathParams(params flow.Params, structPtr any) error {
	vals := make(url.Values, len(params))
	for k, v := range params {
		vals.Set(k, fmt.Sprint(v))
	}

	if err := p.valuesDecoder.decode(structPtr, vals, Path); err != nil {
		return fmt.Errorf("trailhead/http/req: failed decoding path params: %w", err)
	}

	if err := p.validate(structPtr, Path); err != nil {
		return fmt.Errorf("trailhead/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}
