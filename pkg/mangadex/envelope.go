package mangadex

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ResultType is the "result" discriminator of every envelope.
type ResultType string

const (
	ResultOK    ResultType = "ok"
	ResultError ResultType = "error"
)

// ResponseType tells entity envelopes from collection envelopes.
type ResponseType string

const (
	ResponseEntity     ResponseType = "entity"
	ResponseCollection ResponseType = "collection"
)

// Relationship links an object to another resource. Attributes is only filled
// when the related type was requested through includes.
type Relationship struct {
	ID         uuid.UUID              `json:"id"                   yaml:"id"`
	Type       RelationshipType       `json:"type"                 yaml:"type"`
	Related    string                 `json:"related,omitempty"    yaml:"related,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Object is a typed API resource.
type Object[A any] struct {
	ID            uuid.UUID        `json:"id"            yaml:"id"`
	Type          RelationshipType `json:"type"          yaml:"type"`
	Attributes    A                `json:"attributes"    yaml:"attributes"`
	Relationships []Relationship   `json:"relationships" yaml:"relationships"`
}

// EntityResponse is an envelope holding a single object.
type EntityResponse[A any] struct {
	Result   ResultType   `json:"result"   yaml:"result"`
	Response ResponseType `json:"response" yaml:"response"`
	Data     Object[A]    `json:"data"     yaml:"data"`
}

type entityAlias[A any] EntityResponse[A]

// UnmarshalJSON requires the data member to be present.
func (r *EntityResponse[A]) UnmarshalJSON(b []byte) error {
	if err := requireMember(b, "data"); err != nil {
		return err
	}

	return json.Unmarshal(b, (*entityAlias[A])(r))
}

// CollectionResponse is an envelope holding a page of objects.
type CollectionResponse[A any] struct {
	Result   ResultType   `json:"result"   yaml:"result"`
	Response ResponseType `json:"response" yaml:"response"`
	Data     []Object[A]  `json:"data"     yaml:"data"`
	Limit    int          `json:"limit"    yaml:"limit"`
	Offset   int          `json:"offset"   yaml:"offset"`
	Total    int          `json:"total"    yaml:"total"`
}

type collectionAlias[A any] CollectionResponse[A]

// UnmarshalJSON requires the data member to be present.
func (r *CollectionResponse[A]) UnmarshalJSON(b []byte) error {
	if err := requireMember(b, "data"); err != nil {
		return err
	}

	return json.Unmarshal(b, (*collectionAlias[A])(r))
}

// NoDataResponse is the envelope of calls that only report success.
type NoDataResponse struct {
	Result ResultType `json:"result" yaml:"result"`
}

func requireMember(b []byte, name string) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(b, &members); err != nil {
		return err
	}

	if _, ok := members[name]; !ok {
		return ErrMissingData
	}

	return nil
}

type discriminator struct {
	Result *ResultType `json:"result"`
}

// DecodeResponse decodes an envelope body. An "ok" envelope is unmarshalled into
// out; an "error" envelope is returned as *ErrorResponse; anything else is a
// *DecodeError.
func DecodeResponse(body []byte, out any) error {
	var probe discriminator
	if err := json.Unmarshal(body, &probe); err != nil {
		return &DecodeError{Err: err}
	}

	if probe.Result == nil {
		return &DecodeError{Err: ErrMissingDiscriminator}
	}

	switch *probe.Result {
	case ResultOK:
		if out == nil {
			return nil
		}

		if err := json.Unmarshal(body, out); err != nil {
			return &DecodeError{Err: err}
		}

		return nil
	case ResultError:
		errResp, err := ParseErrorResponse(body)
		if err != nil {
			return &DecodeError{Err: err}
		}

		return errResp
	default:
		return &DecodeError{Err: fmt.Errorf("%w: %q", ErrUnknownDiscriminator, *probe.Result)}
	}
}

// ClassifyResponse turns a raw response into a decoded value or an error.
// Any 5xx is a *ServerError carrying the body untouched.
func ClassifyResponse(raw *RawResponse, out any) error {
	if raw.StatusCode >= http.StatusInternalServerError {
		return &ServerError{StatusCode: raw.StatusCode, Body: raw.Text()}
	}

	return DecodeResponse(raw.Body, out)
}

// FollowStatus interprets the reply of a follow-check call, where the answer is
// carried by the status code: 200 means following, 404 means not following
// unless the body lists errors.
func FollowStatus(raw *RawResponse) (bool, error) {
	switch raw.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		var envelope struct {
			Errors []APIError `json:"errors"`
		}

		if len(raw.Body) > 0 {
			if err := json.Unmarshal(raw.Body, &envelope); err != nil {
				return false, &DecodeError{Err: err}
			}
		}

		if len(envelope.Errors) > 0 {
			return false, &ErrorResponse{Result: ResultError, Errors: envelope.Errors}
		}

		return false, nil
	default:
		return false, &ServerError{StatusCode: raw.StatusCode, Body: raw.Text()}
	}
}
