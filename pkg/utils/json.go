package utils

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// PrettyJson serializa in com indentação, para saída de operador
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(in)
		if err != nil {
			logrus.WithError(err).Warn("utils: failed to marshal value")
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "  "); err != nil {
		logrus.WithError(err).Warn("utils: failed to indent json")
		return string(buffer)
	}

	return out.String()
}
