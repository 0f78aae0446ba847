package utils

import (
	"bytes"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// PrettyJson indents a JSON payload for debug logging. Non-byte values
// are marshalled first; an unparseable payload comes back as-is so the
// log line still shows something.
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		marshalled, err := json.Marshal(in)
		if err != nil {
			logrus.WithError(err).Debug("utils: value is not json encodable")
			return ""
		}
		raw = marshalled
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		logrus.WithError(err).Debug("utils: payload is not valid json")
		return string(raw)
	}

	return out.String()
}
