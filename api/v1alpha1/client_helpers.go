package v1alpha1

import "strings"

// InternalSubject is the stable canonical name the internal token signer
// encodes as the JWT subject for this Client.
func (c *Client) InternalSubject() string {
	return strings.Join([]string{"client", c.Namespace, c.Name, string(c.UID)}, ":")
}

// Usernames returns every subject string that authorizes as this Client:
// the internal subject (prefixed per the authenticator's configured prefix)
// plus an optional operator-assigned override.
func (c *Client) Usernames(prefix string) []string {
	usernames := []string{prefix + c.InternalSubject()}

	if c.Spec.Username != nil {
		usernames = append(usernames, *c.Spec.Username)
	}

	return usernames
}
