package sas

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/mxpv/ooyala/pkg/delivery"
	"github.com/mxpv/ooyala/pkg/model"
)

// Normalize turns authorization data into playable sources. protocol is the
// page protocol ("http:" or "https:") the decoded URLs are rewritten to.
// Unauthorized entries are passed through with the provider code and message,
// classification happens when the source is set. An entry that can't be
// normalized, or a requested embed code missing from data, is kept with Err
// set so the rest of a batch is still usable.
func Normalize(data map[string]Authorization, protocol string, embedCodes ...string) map[string]*model.Source {
	out := make(map[string]*model.Source, len(data))

	for embedCode, auth := range data {
		if !auth.Authorized {
			out[embedCode] = &model.Source{
				Authorized: false,
				Code:       auth.Code,
				Message:    auth.Message,
			}
			continue
		}

		source, err := normalizeStream(auth, protocol)
		if err != nil {
			out[embedCode] = &model.Source{
				Authorized: true,
				Err:        errors.Wrapf(err, "failed to normalize %q", embedCode),
			}
			continue
		}

		out[embedCode] = source
	}

	for _, embedCode := range embedCodes {
		if _, ok := out[embedCode]; !ok {
			out[embedCode] = &model.Source{
				Err: errors.Wrapf(model.ErrNotFound, "embed code %q", embedCode),
			}
		}
	}

	return out
}

func normalizeStream(auth Authorization, protocol string) (*model.Source, error) {
	// Multiple renditions are not disambiguated, the first one wins
	if len(auth.Streams) == 0 {
		return nil, ErrNoStreams
	}

	raw := auth.Streams[0]

	var stream Stream
	if err := json.Unmarshal(raw, &stream); err != nil {
		return nil, errors.Wrap(err, "failed to decode stream")
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to decode stream fields")
	}

	decoded, err := decodeURL(stream.URL.Data)
	if err != nil {
		return nil, err
	}

	src := protocol + stripProtocol(decoded)
	kind := delivery.Detect(stream.DeliveryType, src)

	// MP4 is always served over plain HTTP
	if kind == model.MediaMP4 {
		src = "http:" + stripProtocol(src)
	}

	return &model.Source{
		Authorized:   true,
		Type:         kind,
		Src:          src,
		DeliveryType: stream.DeliveryType,
		Fields:       fields,
	}, nil
}

func decodeURL(data string) (string, error) {
	if data == "" {
		return "", errors.New("stream url is empty")
	}

	out, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		out, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "="))
		if err != nil {
			return "", errors.Wrap(err, "failed to decode stream url")
		}
	}

	return string(out), nil
}

func stripProtocol(src string) string {
	for _, prefix := range []string{"http:", "https:"} {
		if strings.HasPrefix(src, prefix) {
			return strings.TrimPrefix(src, prefix)
		}
	}
	return src
}
