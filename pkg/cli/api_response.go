package cli

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/pretty"
)

type APIResponse interface {
	Print(w io.Writer, color bool) error
	Err() error
	OK() bool
}

var _ APIResponse = &CommonAPIResponse{}

type CommonAPIResponse struct {
	StatusCode  int    `json:"statusCode"`
	Body        string `json:"body"`
	Error       error  `json:"error"`
	contentType string
}

func NewAPIResponse(resp *http.Response, err error) APIResponse {
	apiRes := &CommonAPIResponse{
		Error: err,
	}
	if resp == nil {
		return apiRes
	}
	defer resp.Body.Close()

	apiRes.StatusCode = resp.StatusCode
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("failed to read response body: %s", err.Error())
		apiRes.Error = errors.Wrap(err, "failed to read response body")
		return apiRes
	}
	apiRes.Body = string(out)
	apiRes.contentType = resp.Header.Get("Content-Type")

	if resp.StatusCode == http.StatusNotFound || (resp.StatusCode >= http.StatusInternalServerError && !apiRes.isJSON()) {
		apiRes.Error = errors.Errorf("server responded with %d: %s", resp.StatusCode, strings.TrimSpace(apiRes.Body))
	}
	return apiRes
}

func (resp *CommonAPIResponse) isJSON() bool {
	return strings.HasPrefix(resp.contentType, "application/json")
}

func (resp *CommonAPIResponse) Err() error {
	return resp.Error
}

// OK reports whether the server saw every requested probe pass.
func (resp *CommonAPIResponse) OK() bool {
	return resp.Error == nil && resp.StatusCode == http.StatusOK
}

func (resp *CommonAPIResponse) Print(w io.Writer, color bool) error {
	if resp.Error != nil {
		return resp.Error
	}
	if len(resp.Body) == 0 {
		return nil
	}

	out := []byte(resp.Body)
	if resp.isJSON() {
		out = pretty.PrettyOptions(out, &pretty.Options{Width: 80, Indent: "  "})
		if color {
			out = pretty.Color(out, nil)
		}
	}

	_, err := fmt.Fprint(w, strings.TrimRight(string(out), "\n")+"\n")
	return err
}
