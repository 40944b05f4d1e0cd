package common

type Authentication struct {
	Principal   Principal
	Authorities []string
	// Details as populated by the authentication source, e.g.
	// {"tokenValue": "<raw bearer token>"}
	Details map[string]any
}

// DetailString returns the string stored under key in the details.
func (a *Authentication) DetailString(key string) (string, bool) {
	if a == nil || a.Details == nil {
		return "", false
	}
	s, ok := a.Details[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
