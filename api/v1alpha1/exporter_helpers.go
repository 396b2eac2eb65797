package v1alpha1

import "strings"

// InternalSubject is the stable canonical name the internal token signer
// encodes as the JWT subject for this Exporter.
func (e *Exporter) InternalSubject() string {
	return strings.Join([]string{"exporter", e.Namespace, e.Name, string(e.UID)}, ":")
}

// Usernames returns every subject string that authorizes as this Exporter:
// the internal subject (prefixed per the authenticator's configured prefix)
// plus an optional operator-assigned override.
func (e *Exporter) Usernames(prefix string) []string {
	usernames := []string{prefix + e.InternalSubject()}

	if e.Spec.Username != nil {
		usernames = append(usernames, *e.Spec.Username)
	}

	return usernames
}
