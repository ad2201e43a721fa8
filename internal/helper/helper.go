package helper

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ResolveEnv replaces values of the form "ENV:NAME" with the content of
// the environment variable NAME.
func ResolveEnv(in string) string {
	if strings.HasPrefix(in, "ENV:") {
		return os.Getenv(in[4:])
	}
	return in
}

func ResolveEnvAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, ResolveEnv(v))
	}
	return out
}

func SetDefaultStringIfEmpty(value, defaultValue, field, block string) string {
	if len(value) == 0 {
		log.WithFields(log.Fields{"kind": "config", "block": block, "field": field}).Debugf("no value specified, assuming default %q", defaultValue)
		return defaultValue
	}
	return value
}

func SetDefaultStringsIfEmpty(values, defaultValues []string, field, block string) []string {
	if len(values) == 0 {
		log.WithFields(log.Fields{"kind": "config", "block": block, "field": field}).Debugf("no value specified, assuming default %q", defaultValues)
		return append([]string(nil), defaultValues...)
	}
	return values
}
