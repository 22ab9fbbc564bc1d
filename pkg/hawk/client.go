package hawk

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-secure-stdlib/base62"
)

const nonceLength = 8

func NewNonce() (string, error) {
	nonce, err := base62.Random(nonceLength)
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	return nonce, nil
}

// Sign returns the Authorization header value for req. Timestamp and Nonce are
// taken from art, ID and MAC are filled from creds.
func Sign(creds Credentials, req Request, art Artifacts) (string, error) {
	art.ID = creds.ID
	mac, err := calculateMAC(creds, req, art)
	if err != nil {
		return "", err
	}

	art.MAC = mac
	return art.header(), nil
}

// SignHTTPRequest sets a freshly signed Authorization header on r.
func SignHTTPRequest(creds Credentials, r *http.Request, now time.Time) error {
	nonce, err := NewNonce()
	if err != nil {
		return err
	}

	header, err := Sign(creds, NewClientRequest(r), Artifacts{
		Timestamp: now.Unix(),
		Nonce:     nonce,
	})
	if err != nil {
		return fmt.Errorf("sign request: %w", err)
	}

	r.Header.Set(HeaderAuthorization, header)
	return nil
}
